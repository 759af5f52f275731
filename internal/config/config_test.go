package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/exodus/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MustLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, "nominatim", cfg.Geocoder.Type)
	assert.Equal(t, "osrm", cfg.Router.Type)
	assert.Equal(t, 15*time.Second, cfg.Router.Timeout)
	assert.Len(t, cfg.Overpass.Endpoints, 2)
	assert.Equal(t, 15000, cfg.Overpass.RadiusM)
	assert.Equal(t, 2*time.Minute, cfg.Incidents.TTL)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, []int{200, 100, 50, 25, 10}, cfg.Fetch.ChunkLadder)
	assert.Equal(t, "geo_events_geoevent", cfg.Tables.GeoEvents)
	assert.Empty(t, cfg.Kafka.Brokers)

	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
}

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("EXODUS_ENV", "local")
	t.Setenv("EXODUS_INTERVAL", "30s")
	t.Setenv("EXODUS_GEOCODER_TYPE", "Google")
	t.Setenv("EXODUS_GEOCODER_API_KEY", "testAPIKey")
	t.Setenv("EXODUS_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("EXODUS_FETCH_CHUNK_LADDER", "100,20")
	t.Setenv("EXODUS_POSTGRES_HOST", "fromExodus")
	t.Setenv("DB_HOST", "fromDB")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, "google", cfg.Geocoder.Type)
	assert.Equal(t, "testAPIKey", cfg.Geocoder.APIKey)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []int{100, 20}, cfg.Fetch.ChunkLadder)
	assert.Equal(t, "fromExodus", cfg.Database.Host)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: dev
workers: 4
router:
  type: google
  timeout: 5s
cache:
  backend: redis
redis:
  addr: redis:6379
  db: 2
kafka:
  brokers:
    - kafka:9092
  topic: plans
fetch:
  chunk_ladder: [150, 75]
postgres:
  host: pg
`)
	t.Setenv("EXODUS_CONFIG", file.Name())
	t.Setenv("EXODUS_WORKERS", "6")

	cfg := config.MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 6, cfg.Workers, "environment overrides the file")
	assert.Equal(t, "google", cfg.Router.Type)
	assert.Equal(t, 5*time.Second, cfg.Router.Timeout)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "plans", cfg.Kafka.Topic)
	assert.Equal(t, []int{150, 75}, cfg.Fetch.ChunkLadder)
	assert.Equal(t, "pg", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("EXODUS_CONFIG", "/nonexistent/exodus.yaml")

	assert.Panics(t, func() { config.MustLoad() })
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("EXODUS_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("EXODUS_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	for _, value := range []string{"error_value", "0"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("EXODUS_WORKERS", value)

			assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer types", func() {
				config.MustLoad()
			})
		})
	}
}

func TestMustLoad_UnsupportedProviders(t *testing.T) {
	tests := map[string]string{
		"EXODUS_GEOCODER_TYPE": "unsupported geocoder type: visicom",
		"EXODUS_ROUTER_TYPE":   "unsupported router type: visicom",
		"EXODUS_CACHE_BACKEND": "unsupported cache backend: visicom",
	}

	for env, want := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "visicom")

			assert.PanicsWithValue(t, want, func() { config.MustLoad() })
		})
	}
}

func TestMustLoad_LadderError(t *testing.T) {
	for _, value := range []string{"100,200", "abc", "50,0", " , "} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("EXODUS_FETCH_CHUNK_LADDER", value)

			require.Panics(t, func() { config.MustLoad() })
		})
	}
}
