package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/UnknownOlympus/exodus/internal/fetch"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/planner"
	"github.com/UnknownOlympus/exodus/internal/publisher"
	"github.com/jonboulle/clockwork"
)

// PlanBuilder computes a single evacuation plan.
type PlanBuilder interface {
	Plan(ctx context.Context, req planner.Request) (*planner.Plan, error)
}

// Publisher delivers alert plans downstream.
type Publisher interface {
	Publish(ctx context.Context, plans []publisher.AlertPlan) error
}

// Tables names the store tables read by the alert service.
type Tables struct {
	GeoEvents string
	EvacMap   string
	EvacZones string
}

// DefaultTables returns the production table names.
func DefaultTables() Tables {
	return Tables{
		GeoEvents: "geo_events_geoevent",
		EvacMap:   "evac_zone_status_geo_event_map",
		EvacZones: "evac_zones_gis_evaczone",
	}
}

// Options tunes a polling cycle.
type Options struct {
	Workers      int
	PollInterval time.Duration
	MaxEvents    int    // rows paged from the event table per cycle
	TopEvents    int    // most recent matching events planned per cycle
	EventType    string // "" keeps every type
	PageSize     int
	ChunkSize    int
	Ladder       []int
}

// AlertService periodically turns active geo events and their evacuation zones into published
// evacuation plans.
type AlertService struct {
	log       *slog.Logger
	fetcher   fetch.Interface
	planner   PlanBuilder
	publisher Publisher
	metrics   *metrics.Metrics
	clock     clockwork.Clock
	tables    Tables
	opts      Options
}

type job struct {
	event models.GeoEvent
	zone  models.EvacZone
}

// NewAlertService creates an AlertService. A nil clock uses the real clock; nil metrics
// disables instrumentation.
func NewAlertService(
	log *slog.Logger,
	fetcher fetch.Interface,
	builder PlanBuilder,
	pub Publisher,
	m *metrics.Metrics,
	clock clockwork.Clock,
	tables Tables,
	opts Options,
) *AlertService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Minute
	}
	if opts.PageSize <= 0 {
		opts.PageSize = fetch.DefaultPageSize
	}
	if opts.MaxEvents <= 0 {
		opts.MaxEvents = opts.PageSize
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = fetch.DefaultChunkSize
	}
	if len(opts.Ladder) == 0 {
		opts.Ladder = fetch.Ladder(opts.ChunkSize)
	}

	return &AlertService{
		log:       log,
		fetcher:   fetcher,
		planner:   builder,
		publisher: pub,
		metrics:   m,
		clock:     clock,
		tables:    tables,
		opts:      opts,
	}
}

// Run polls until ctx is cancelled.
func (as *AlertService) Run(ctx context.Context) {
	ticker := as.clock.NewTicker(as.opts.PollInterval)
	defer ticker.Stop()

	as.log.InfoContext(ctx, "Alert service started", "interval", as.opts.PollInterval, "workers", as.opts.Workers)

	for {
		select {
		case <-ctx.Done():
			as.log.InfoContext(ctx, "Alert service stopped")
			return
		case <-ticker.Chan():
			as.log.InfoContext(ctx, "Polling for active geo events")
			as.processBatch(ctx)
		}
	}
}

// processBatch runs one polling cycle: events, zone mapping, zones, plans, publish.
func (as *AlertService) processBatch(ctx context.Context) {
	events, err := as.loadEvents(ctx)
	if err != nil {
		as.log.ErrorContext(ctx, "Failed to fetch geo events", "error", err)
		return
	}
	if len(events) == 0 {
		as.log.InfoContext(ctx, "No active geo events")
		return
	}

	zoneEvents, err := as.loadZoneMap(ctx, events)
	if err != nil {
		as.log.ErrorContext(ctx, "Failed to fetch evacuation zone mapping", "error", err)
		return
	}
	if len(zoneEvents) == 0 {
		as.log.InfoContext(ctx, "No evacuation zones linked to active events", "events", len(events))
		return
	}

	zones, err := as.loadZones(ctx, zoneEvents)
	if err != nil {
		as.log.ErrorContext(ctx, "Failed to fetch evacuation zones at every chunk size", "error", err)
		return
	}

	byID := make(map[int64]models.GeoEvent, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	var jobs []job
	for _, zone := range zones {
		for _, eventID := range zoneEvents[zone.UID] {
			if event, ok := byID[eventID]; ok {
				jobs = append(jobs, job{event: event, zone: zone})
			}
		}
	}
	if len(jobs) == 0 {
		as.log.InfoContext(ctx, "No plannable evacuation zones")
		return
	}

	as.log.InfoContext(ctx, "Found zones to plan. Starting worker pool.", "jobs", len(jobs), "num_workers", as.opts.Workers)

	plans := as.buildPlans(ctx, jobs)
	if len(plans) == 0 {
		return
	}

	if err = as.publisher.Publish(ctx, plans); err != nil {
		as.log.ErrorContext(ctx, "Failed to publish alert plans", "count", len(plans), "error", err)
		as.observePublished("failure", len(plans))
		return
	}

	as.observePublished("success", len(plans))
	as.log.InfoContext(ctx, "Processing batch finished", "plans", len(plans))
}

// ActiveEvents returns the most recent active events of the configured type, newest first.
func (as *AlertService) ActiveEvents(ctx context.Context) ([]models.GeoEvent, error) {
	return as.loadEvents(ctx)
}

func (as *AlertService) loadEvents(ctx context.Context) ([]models.GeoEvent, error) {
	rows, err := as.fetcher.FetchPaged(ctx, models.PageRequest{
		Table:      as.tables.GeoEvents,
		Columns:    eventColumns,
		OrderBy:    "date_created",
		Descending: true,
		MaxRows:    as.opts.MaxEvents,
		PageSize:   as.opts.PageSize,
	})
	if err != nil {
		return nil, err
	}

	events := make([]models.GeoEvent, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		event, parseErr := parseEvent(row)
		if parseErr != nil {
			skipped++
			continue
		}
		if !event.Active || (as.opts.EventType != "" && event.Type != as.opts.EventType) {
			continue
		}
		events = append(events, event)
	}
	if skipped > 0 {
		as.log.DebugContext(ctx, "Skipped geo events without usable coordinates", "count", skipped)
	}

	slices.SortStableFunc(events, func(a, b models.GeoEvent) int { return b.DateCreated.Compare(a.DateCreated) })
	if as.opts.TopEvents > 0 && len(events) > as.opts.TopEvents {
		events = events[:as.opts.TopEvents]
	}

	return events, nil
}

// loadZoneMap returns the event ids linked to each zone uid.
func (as *AlertService) loadZoneMap(ctx context.Context, events []models.GeoEvent) (map[string][]int64, error) {
	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, idString(event.ID))
	}

	rows, err := as.fetcher.FetchIn(ctx, models.ChunkRequest{
		Table:        as.tables.EvacMap,
		Columns:      mapColumns,
		FilterColumn: "geo_event_id",
		Values:       ids,
		ChunkSize:    as.opts.ChunkSize,
		OrderBy:      "date_created",
		Descending:   true,
	})
	if err != nil {
		return nil, err
	}

	zoneEvents := make(map[string][]int64)
	for _, row := range rows {
		eventID, ok := models.RowInt(row, "geo_event_id")
		uid := models.RowString(row, "uid_v2")
		if !ok || uid == "" {
			continue
		}
		if !slices.Contains(zoneEvents[uid], eventID) {
			zoneEvents[uid] = append(zoneEvents[uid], eventID)
		}
	}

	return zoneEvents, nil
}

func (as *AlertService) loadZones(ctx context.Context, zoneEvents map[string][]int64) ([]models.EvacZone, error) {
	uids := make([]string, 0, len(zoneEvents))
	for uid := range zoneEvents {
		uids = append(uids, uid)
	}
	slices.Sort(uids)

	rows, err := as.fetcher.FetchInWithFallback(ctx, models.ChunkRequest{
		Table:        as.tables.EvacZones,
		Columns:      zoneColumns,
		FilterColumn: "uid_v2",
		Values:       uids,
	}, as.opts.Ladder)
	if err != nil {
		return nil, err
	}

	zones := make([]models.EvacZone, 0, len(rows))
	for _, row := range rows {
		zone, parseErr := parseZone(row)
		if parseErr != nil {
			as.log.DebugContext(ctx, "Skipping evacuation zone", "error", parseErr)
			continue
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// buildPlans fans jobs out to the worker pool and returns plans ordered by event and zone.
func (as *AlertService) buildPlans(ctx context.Context, jobs []job) []publisher.AlertPlan {
	queue := make(chan job, len(jobs))
	for _, j := range jobs {
		queue <- j
	}
	close(queue)

	var (
		mu    sync.Mutex
		plans []publisher.AlertPlan
		wgr   sync.WaitGroup
	)

	for i := 1; i <= as.opts.Workers; i++ {
		wgr.Add(1)
		go func(idx int) {
			defer wgr.Done()
			for j := range queue {
				plan, ok := as.planJob(ctx, idx, j)
				if !ok {
					continue
				}
				mu.Lock()
				plans = append(plans, plan)
				mu.Unlock()
			}
		}(i)
	}
	wgr.Wait()

	slices.SortFunc(plans, func(a, b publisher.AlertPlan) int {
		return cmp.Or(cmp.Compare(a.EventID, b.EventID), cmp.Compare(a.ZoneUID, b.ZoneUID))
	})

	return plans
}

func (as *AlertService) planJob(ctx context.Context, idx int, j job) (publisher.AlertPlan, bool) {
	if as.metrics != nil {
		as.metrics.ActiveWorkers.Inc()
		defer as.metrics.ActiveWorkers.Dec()
	}

	if ctx.Err() != nil {
		return publisher.AlertPlan{}, false
	}

	as.log.DebugContext(ctx, "Planning zone", "worker", idx, "event", j.event.ID, "zone", j.zone.UID)

	plan, err := as.planner.Plan(ctx, planner.Request{
		Subject:    j.zone.Point,
		Threat:     j.event.Point,
		ThreatName: j.event.Name,
		State:      StateHint(j.zone.Region),
	})
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, models.ErrDataIntegrity) {
			level = slog.LevelWarn
		}
		as.log.Log(ctx, level, "Failed to plan zone", "worker", idx, "event", j.event.ID, "zone", j.zone.UID, "error", err)
		return publisher.AlertPlan{}, false
	}

	alert := publisher.NewAlertPlan(plan, as.clock.Now())
	alert.EventID = j.event.ID
	alert.EventName = j.event.Name
	alert.ZoneUID = j.zone.UID
	alert.ZoneName = j.zone.DisplayName
	alert.Region = j.zone.Region
	alert.ZoneStatus = j.zone.Status

	return alert, true
}

func (as *AlertService) observePublished(status string, count int) {
	if as.metrics != nil {
		as.metrics.PlansPublished.WithLabelValues(status).Add(float64(count))
	}
}
