package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/config"
	"github.com/UnknownOlympus/exodus/internal/fetch"
	"github.com/UnknownOlympus/exodus/internal/geocoding"
	"github.com/UnknownOlympus/exodus/internal/incidents"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/planner"
	"github.com/UnknownOlympus/exodus/internal/publisher"
	"github.com/UnknownOlympus/exodus/internal/registry"
	"github.com/UnknownOlympus/exodus/internal/repository"
	"github.com/UnknownOlympus/exodus/internal/routing"
	"github.com/UnknownOlympus/exodus/internal/service"
	"github.com/UnknownOlympus/exodus/internal/shelter"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// app holds the wired components shared by the alert service and the trip command.
type app struct {
	db     *pgxpool.Pool
	alerts *service.AlertService
	trips  *planner.TripPlanner
	close  func()
}

// main is the entry point of the application. With the arguments `trip <address>` it plans a
// single trip and prints it; otherwise it runs the alert service until interrupted.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

// run loads the configuration, wires the components and executes the command in args.
func run(ctx context.Context, args []string, out io.Writer) error {
	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	application, err := wire(ctx, cfg, logger, appMetrics)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return execute(ctx, application, cfg, logger, reg, args, out)
}

// execute runs the trip command or the alert service. The application is closed on every
// return path.
func execute(
	ctx context.Context,
	application *app,
	cfg *config.Config,
	logger *slog.Logger,
	reg *prometheus.Registry,
	args []string,
	out io.Writer,
) error {
	defer application.close()

	if len(args) > 0 && args[0] == "trip" {
		if err := runTrip(ctx, application, logger, args[1:], out); err != nil {
			return fmt.Errorf("trip planning failed: %w", err)
		}
		return nil
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("kafka brokers are required to run the alert service")
	}

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the monitoring server in a goroutine to allow main to listen for signals.
	go startMonitoringServer(ctx, logger, reg, application.db, cfg.Port)

	alertsDone := make(chan struct{})
	go func() {
		application.alerts.Run(ctx)
		close(alertsDone)
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Let an in-flight polling cycle finish before the publisher and pool are closed.
	<-alertsDone

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")

	return nil
}

// wire builds every component from the configuration.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*app, error) {
	dtb, err := repository.NewDatabase(
		ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	closers := []func(){dtb.Close}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store, closeStore, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		closeAll()
		return nil, err
	}
	closers = append(closers, closeStore)
	memo := cache.NewMemo(store, cfg.Cache.TTL, logger, m)

	repo := repository.NewRepository(dtb, logger)
	fetcher := fetch.NewCachedFetcher(fetch.NewFetcher(repo, logger, m, 0, 0), memo)

	geocoder, err := newGeocoder(cfg, logger, m)
	if err != nil {
		closeAll()
		return nil, err
	}

	router, err := newRouter(cfg, logger)
	if err != nil {
		closeAll()
		return nil, err
	}
	resolver := routing.NewResolver(router, cfg.Router.Type, cfg.Router.Timeout, logger, m)

	overpass := shelter.NewOverpassClient(cfg.Overpass.Endpoints, cfg.Overpass.Timeout, logger)
	shelters := shelter.NewAggregator(overpass, shelter.DefaultCurated(), cfg.Overpass.RadiusM, memo, logger, m)

	ncdot := incidents.NewNCDOTClient(cfg.Incidents.BaseURL, cfg.Incidents.Timeout, logger)
	feed := incidents.NewFeed(ncdot, memo, cfg.Incidents.TTL, logger)

	zones := registry.DefaultSafeZones()
	evacPlanner := planner.NewPlanner(zones, registry.DefaultHighways(), logger, m)
	trips := planner.NewTripPlanner(geocoder, zones, shelters, resolver, feed, logger)

	// Publishing is only needed by the alert service.
	var plans service.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafka := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		closers = append(closers, func() {
			if closeErr := kafka.Close(); closeErr != nil {
				logger.Error("Failed to close kafka publisher", "error", closeErr)
			}
		})
		plans = kafka
	}

	alerts := service.NewAlertService(
		logger,
		fetcher,
		evacPlanner,
		plans,
		m,
		clockwork.NewRealClock(),
		service.Tables{
			GeoEvents: cfg.Tables.GeoEvents,
			EvacMap:   cfg.Tables.EvacMap,
			EvacZones: cfg.Tables.EvacZones,
		},
		service.Options{
			Workers:      cfg.Workers,
			PollInterval: cfg.Interval,
			MaxEvents:    cfg.Fetch.MaxRows,
			TopEvents:    cfg.Fetch.TopEvents,
			EventType:    "wildfire",
			PageSize:     cfg.Fetch.PageSize,
			ChunkSize:    cfg.Fetch.ChunkLadder[0],
			Ladder:       cfg.Fetch.ChunkLadder,
		},
	)

	logger.InfoContext(ctx, "Components initialized",
		"geocoder", cfg.Geocoder.Type, "router", cfg.Router.Type, "cache", cfg.Cache.Backend)

	return &app{db: dtb, alerts: alerts, trips: trips, close: closeAll}, nil
}

// newCacheStore selects the memoization backend.
func newCacheStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Store, func(), error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryStore(clockwork.NewRealClock()), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	logger.InfoContext(ctx, "Using redis cache", "addr", cfg.Redis.Addr)

	return cache.NewRedisStore(client), func() { _ = client.Close() }, nil
}

// newGeocoder tries the local gazetteer before the configured remote provider.
func newGeocoder(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*geocoding.Chain, error) {
	remote, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.Geocoder.Type),
		APIKey:    cfg.Geocoder.APIKey,
		RateLimit: cfg.Geocoder.RateLimit,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding provider: %w", err)
	}

	return geocoding.NewChain(
		logger,
		geocoding.NewLocalProvider(registry.DefaultSafeZones()),
		geocoding.NewInstrumented(remote, cfg.Geocoder.Type, m),
	), nil
}

// newRouter selects the live routing provider. Google directions share the geocoding API key.
func newRouter(cfg *config.Config, logger *slog.Logger) (routing.Router, error) {
	if cfg.Router.Type != "google" {
		return routing.NewOSRMRouter(cfg.Router.BaseURL, cfg.Router.Timeout, logger), nil
	}

	if cfg.Geocoder.APIKey == "" {
		return nil, errors.New("API key is required for Google router")
	}
	client, err := geocoding.NewGoogleClient(cfg.Geocoder.APIKey, cfg.Geocoder.RateLimit)
	if err != nil {
		return nil, err
	}

	return routing.NewGoogleRouter(client, logger), nil
}

// startMonitoringServer starts an HTTP server that provides health check and metrics endpoints.
// It listens on the specified port and logs the server's status and any errors encountered.
func startMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	dtb *pgxpool.Pool,
	port int,
) {
	http.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if err := dtb.Ping(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		_, err := writer.Write([]byte(body))
		if err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", status)
	})
	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      http.DefaultServeMux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(readTimeout)*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
