package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the evacuation service.
//
// Values come from an optional YAML file named by EXODUS_CONFIG, overridden by EXODUS_*
// environment variables where "." in a key becomes "_" (geocoder.type is EXODUS_GEOCODER_TYPE).
type Config struct {
	Env       string          // Env is the current environment: local, dev, prod.
	Port      int             // Port is the monitoring server port.
	Workers   int             // Workers is the size of the planning worker pool.
	Interval  time.Duration   // Interval is the time between alert polling cycles.
	Geocoder  GeocoderConfig  // Geocoder selects the remote geocoding provider.
	Router    RouterConfig    // Router selects the live routing provider.
	Overpass  OverpassConfig  // Overpass configures the shelter search.
	Incidents IncidentsConfig // Incidents configures the traffic incident feed.
	Cache     CacheConfig     // Cache selects the memoization backend.
	Redis     RedisConfig     // Redis is used when Cache.Backend is "redis".
	Kafka     KafkaConfig     // Kafka receives published alert plans.
	Fetch     FetchConfig     // Fetch tunes store paging and chunking.
	Tables    TablesConfig    // Tables names the store tables.
	Database  PostgresConfig  // Database holds the postgres database configuration.
}

// GeocoderConfig selects the remote geocoding provider.
type GeocoderConfig struct {
	Type      string
	APIKey    string
	RateLimit int
}

// RouterConfig selects the live routing provider.
type RouterConfig struct {
	Type    string // osrm or google
	BaseURL string
	Timeout time.Duration
}

// OverpassConfig configures the shelter search.
type OverpassConfig struct {
	Endpoints []string
	RadiusM   int
	Timeout   time.Duration
}

// IncidentsConfig configures the traffic incident feed.
type IncidentsConfig struct {
	BaseURL string
	Timeout time.Duration
	TTL     time.Duration
}

// CacheConfig selects the memoization backend.
type CacheConfig struct {
	Backend string // memory or redis
	TTL     time.Duration
}

// RedisConfig holds the redis connection details.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds the alert plan topic.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FetchConfig tunes store paging and chunking.
type FetchConfig struct {
	PageSize    int
	MaxRows     int
	TopEvents   int
	ChunkLadder []int
}

// TablesConfig names the store tables read by the alert service.
type TablesConfig struct {
	GeoEvents string
	EvacMap   string
	EvacZones string
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

//nolint:gochecknoglobals // defaults applied before the file and environment
var defaults = map[string]any{
	"env":                 "production",
	"port":                "8080",
	"workers":             "10",
	"interval":            "10m",
	"geocoder.type":       "nominatim",
	"geocoder.rate_limit": "1",
	"router.type":         "osrm",
	"router.base_url":     "https://router.project-osrm.org",
	"router.timeout":      "15s",
	"overpass.endpoints":  "https://overpass-api.de/api/interpreter,https://api.letsopen.de/api/interpreter",
	"overpass.radius_m":   "15000",
	"overpass.timeout":    "12s",
	"incidents.base_url":  "https://eapps.ncdot.gov/services/traffic-prod/v1",
	"incidents.timeout":   "10s",
	"incidents.ttl":       "2m",
	"cache.backend":       "memory",
	"cache.ttl":           "5m",
	"redis.addr":          "localhost:6379",
	"redis.db":            "0",
	"kafka.topic":         "evacuation-plans",
	"fetch.page_size":     "1000",
	"fetch.max_rows":      "1000",
	"fetch.top_events":    "300",
	"fetch.chunk_ladder":  "200,100,50,25,10",
	"tables.geo_events":   "geo_events_geoevent",
	"tables.evac_map":     "evac_zone_status_geo_event_map",
	"tables.evac_zones":   "evac_zones_gis_evaczone",
}

// MustLoad loads the configuration and panics on any invalid value.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("EXODUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := os.Getenv("EXODUS_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if filepath.Ext(file) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			panic(fmt.Sprintf("failed to read configuration file %s: %v", file, err))
		}
	}

	cfg := &Config{
		Env:      v.GetString("env"),
		Port:     mustInt(v, "port", "failed to parse port for monitoring server from configuration"),
		Workers:  mustInt(v, "workers", "failed to parse workers from configuration, must be an integer types"),
		Interval: mustDuration(v, "interval", "failed to parse interval from configuration"),
		Geocoder: GeocoderConfig{
			Type:      strings.ToLower(v.GetString("geocoder.type")),
			APIKey:    v.GetString("geocoder.api_key"),
			RateLimit: mustInt(v, "geocoder.rate_limit", "failed to parse geocoder rate limit from configuration"),
		},
		Router: RouterConfig{
			Type:    strings.ToLower(v.GetString("router.type")),
			BaseURL: v.GetString("router.base_url"),
			Timeout: mustDuration(v, "router.timeout", "failed to parse router timeout from configuration"),
		},
		Overpass: OverpassConfig{
			Endpoints: stringList(v, "overpass.endpoints"),
			RadiusM:   mustInt(v, "overpass.radius_m", "failed to parse overpass radius from configuration"),
			Timeout:   mustDuration(v, "overpass.timeout", "failed to parse overpass timeout from configuration"),
		},
		Incidents: IncidentsConfig{
			BaseURL: v.GetString("incidents.base_url"),
			Timeout: mustDuration(v, "incidents.timeout", "failed to parse incidents timeout from configuration"),
			TTL:     mustDuration(v, "incidents.ttl", "failed to parse incidents ttl from configuration"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(v.GetString("cache.backend")),
			TTL:     mustDuration(v, "cache.ttl", "failed to parse cache ttl from configuration"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       mustInt(v, "redis.db", "failed to parse redis db from configuration"),
		},
		Kafka: KafkaConfig{
			Brokers: stringList(v, "kafka.brokers"),
			Topic:   v.GetString("kafka.topic"),
		},
		Fetch: FetchConfig{
			PageSize:    mustInt(v, "fetch.page_size", "failed to parse fetch page size from configuration"),
			MaxRows:     mustInt(v, "fetch.max_rows", "failed to parse fetch max rows from configuration"),
			TopEvents:   mustInt(v, "fetch.top_events", "failed to parse fetch top events from configuration"),
			ChunkLadder: mustLadder(v),
		},
		Tables: TablesConfig{
			GeoEvents: v.GetString("tables.geo_events"),
			EvacMap:   v.GetString("tables.evac_map"),
			EvacZones: v.GetString("tables.evac_zones"),
		},
		Database: PostgresConfig{
			Host:     firstSet(v.GetString("postgres.host"), "DB_HOST"),
			Port:     firstSet(v.GetString("postgres.port"), "DB_PORT", "5432"),
			User:     firstSet(v.GetString("postgres.user"), "DB_USERNAME"),
			Password: firstSet(v.GetString("postgres.password"), "DB_PASSWORD"),
			Name:     firstSet(v.GetString("postgres.db_name"), "DB_NAME"),
		},
	}

	if !slices.Contains([]string{"google", "nominatim", "census"}, cfg.Geocoder.Type) {
		panic("unsupported geocoder type: " + cfg.Geocoder.Type)
	}
	if !slices.Contains([]string{"osrm", "google"}, cfg.Router.Type) {
		panic("unsupported router type: " + cfg.Router.Type)
	}
	if !slices.Contains([]string{"memory", "redis"}, cfg.Cache.Backend) {
		panic("unsupported cache backend: " + cfg.Cache.Backend)
	}
	if cfg.Workers <= 0 {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	return cfg
}

func mustInt(v *viper.Viper, key, msg string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		panic(msg)
	}

	return n
}

func mustDuration(v *viper.Viper, key, msg string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		panic(msg)
	}

	return d
}

// mustLadder reads strictly decreasing positive chunk sizes.
func mustLadder(v *viper.Viper) []int {
	const msg = "failed to parse fetch chunk ladder from configuration, must be decreasing positive integers"

	raw := stringList(v, "fetch.chunk_ladder")
	ladder := make([]int, 0, len(raw))
	for _, item := range raw {
		n, err := strconv.Atoi(item)
		if err != nil || n <= 0 || (len(ladder) > 0 && n >= ladder[len(ladder)-1]) {
			panic(msg)
		}
		ladder = append(ladder, n)
	}
	if len(ladder) == 0 {
		panic(msg)
	}

	return ladder
}

// stringList accepts a YAML list or a comma-separated string.
func stringList(v *viper.Viper, key string) []string {
	var items []string
	switch raw := v.Get(key).(type) {
	case string:
		items = strings.Split(raw, ",")
	default:
		items = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// firstSet returns value, or the named environment variable, or fallback.
func firstSet(value, env string, fallback ...string) string {
	if value != "" {
		return value
	}
	if env != "" {
		if fromEnv := os.Getenv(env); fromEnv != "" {
			return fromEnv
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}

	return ""
}
