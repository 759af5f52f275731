package shelter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// FacilitySource finds raw facilities around a point.
type FacilitySource interface {
	Facilities(ctx context.Context, center models.GeoPoint, radiusM int) ([]models.Facility, error)
}

// Group is one category with its shelters.
type Group struct {
	Category string                 `json:"category"`
	Shelters []models.ShelterRecord `json:"shelters"`
}

// Catalog is the merged shelter list: the fixed categories in display order, followed by any
// extra live categories in order of first appearance.
type Catalog []Group

// Get returns the shelters of a category, or nil if the category is absent.
func (c Catalog) Get(category string) []models.ShelterRecord {
	for _, group := range c {
		if group.Category == category {
			return group.Shelters
		}
	}

	return nil
}

// ErrMissingCoordinates marks a facility that cannot be placed on a map.
var ErrMissingCoordinates = fmt.Errorf("%w: facility has no coordinates", models.ErrDataIntegrity)

// Normalize turns a facility into a live shelter record. Facilities without a name return
// ok=false; facilities without coordinates return ErrMissingCoordinates.
func Normalize(facility models.Facility) (models.ShelterRecord, bool, error) {
	name := strings.TrimSpace(facility.Tags["name"])
	if name == "" {
		return models.ShelterRecord{}, false, nil
	}
	if facility.Point == nil {
		return models.ShelterRecord{}, false, fmt.Errorf("%w: %q (id %d)", ErrMissingCoordinates, name, facility.ID)
	}

	phone := strings.TrimSpace(facility.Tags["phone"])
	if phone == "" {
		phone = "N/A"
	}
	point := *facility.Point

	return models.ShelterRecord{
		Name:     name,
		Point:    &point,
		Category: CategoryFor(facility.Tags),
		Phone:    phone,
		ADA:      facility.Tags["wheelchair"] != "no",
		Source:   models.SourceLive,
		Website:  strings.TrimSpace(facility.Tags["website"]),
	}, true, nil
}

// Merge groups live records by category and fills every fixed category that received no
// live record with its curated entries, anchored at destination plus the entry offset.
// Categories with live records never receive curated entries.
func Merge(live []models.ShelterRecord, curatedTable CuratedTable, destination models.GeoPoint) Catalog {
	fixed := Categories()
	index := make(map[string]int, len(fixed))
	catalog := make(Catalog, 0, len(fixed))
	for _, category := range fixed {
		index[category] = len(catalog)
		catalog = append(catalog, Group{Category: category, Shelters: []models.ShelterRecord{}})
	}

	for _, record := range live {
		category := record.Category
		if category == "" {
			category = CategoryGeneral
		}
		pos, ok := index[category]
		if !ok {
			pos = len(catalog)
			index[category] = pos
			catalog = append(catalog, Group{Category: category})
		}
		catalog[pos].Shelters = append(catalog[pos].Shelters, record)
	}

	for _, category := range fixed {
		pos := index[category]
		if len(catalog[pos].Shelters) > 0 {
			continue
		}
		for _, entry := range curatedTable[category] {
			point := destination.Offset(entry.LatOffset, entry.LonOffset)
			catalog[pos].Shelters = append(catalog[pos].Shelters, models.ShelterRecord{
				Name:     entry.Name,
				Point:    &point,
				Category: category,
				Phone:    entry.Phone,
				ADA:      entry.ADA,
				Source:   models.SourceCurated,
				Address:  entry.Address,
				Note:     entry.Note,
			})
		}
	}

	return catalog
}

// Aggregator finds live shelters around a destination and merges them with the curated table.
type Aggregator struct {
	source  FacilitySource
	curated CuratedTable
	radiusM int
	memo    *cache.Memo
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewAggregator creates an Aggregator. A nil memo disables caching of live results.
func NewAggregator(
	source FacilitySource,
	curatedTable CuratedTable,
	radiusM int,
	memo *cache.Memo,
	log *slog.Logger,
	m *metrics.Metrics,
) *Aggregator {
	if curatedTable == nil {
		curatedTable = DefaultCurated()
	}
	if radiusM <= 0 {
		radiusM = DefaultRadiusM
	}

	return &Aggregator{source: source, curated: curatedTable, radiusM: radiusM, memo: memo, log: log, metrics: m}
}

// Aggregate never fails: when the live query is unavailable, every fixed category falls back
// to curated entries.
func (a *Aggregator) Aggregate(ctx context.Context, destination models.GeoPoint) Catalog {
	facilities, err := a.facilities(ctx, destination)
	if err != nil {
		a.log.WarnContext(ctx, "Live shelter query failed, using curated shelters", "error", err)
		if a.metrics != nil {
			a.metrics.ProviderErrors.WithLabelValues("overpass").Inc()
		}
	}

	live := make([]models.ShelterRecord, 0, len(facilities))
	skipped := 0
	for _, facility := range facilities {
		record, ok, normErr := Normalize(facility)
		if errors.Is(normErr, models.ErrDataIntegrity) {
			skipped++
			continue
		}
		if ok {
			live = append(live, record)
		}
	}
	if skipped > 0 {
		a.log.DebugContext(ctx, "Skipped facilities without coordinates", "count", skipped)
	}

	catalog := Merge(live, a.curated, destination)

	if a.metrics != nil {
		for _, group := range catalog {
			if len(group.Shelters) > 0 && group.Shelters[0].Source == models.SourceCurated {
				a.metrics.CuratedFills.Inc()
			}
		}
	}

	return catalog
}

func (a *Aggregator) facilities(ctx context.Context, destination models.GeoPoint) ([]models.Facility, error) {
	if a.memo == nil {
		return a.source.Facilities(ctx, destination, a.radiusM)
	}

	key, err := cache.Key("overpass", struct {
		Point   models.GeoPoint `json:"point"`
		RadiusM int             `json:"radius_m"`
	}{destination, a.radiusM})
	if err != nil {
		return nil, err
	}

	return cache.Remember(ctx, a.memo, key, func(ctx context.Context) ([]models.Facility, error) {
		return a.source.Facilities(ctx, destination, a.radiusM)
	})
}
