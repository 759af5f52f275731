package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/geo"
	"github.com/UnknownOlympus/exodus/internal/models"
)

//nolint:gochecknoglobals // fixed column sets
var (
	eventColumns = []string{"id", "name", "geo_event_type", "is_active", "lat", "lng", "date_created"}
	mapColumns   = []string{"geo_event_id", "uid_v2", "date_created"}
	zoneColumns  = []string{"uid_v2", "display_name", "region_id", "status", "geom_label"}
)

// parseEvent reads a geo event row. Rows without an id or coordinates are DataIntegrity errors.
func parseEvent(row models.Row) (models.GeoEvent, error) {
	id, ok := models.RowInt(row, "id")
	if !ok {
		return models.GeoEvent{}, fmt.Errorf("%w: geo event without id", models.ErrDataIntegrity)
	}

	lat, latOK := models.RowFloat(row, "lat")
	lon, lonOK := models.RowFloat(row, "lng")
	if !latOK || !lonOK {
		return models.GeoEvent{}, fmt.Errorf("%w: geo event %d has no coordinates", models.ErrDataIntegrity, id)
	}
	point := models.GeoPoint{Latitude: lat, Longitude: lon}
	if err := point.Validate(); err != nil {
		return models.GeoEvent{}, fmt.Errorf("geo event %d: %w", id, err)
	}

	created, _ := models.RowTime(row, "date_created")

	return models.GeoEvent{
		ID:          id,
		Name:        models.RowString(row, "name"),
		Type:        models.RowString(row, "geo_event_type"),
		Active:      models.RowBool(row, "is_active"),
		Point:       point,
		DateCreated: created,
	}, nil
}

// parseZone reads an evacuation zone row and its WKT label point.
func parseZone(row models.Row) (models.EvacZone, error) {
	uid := strings.TrimSpace(models.RowString(row, "uid_v2"))
	if uid == "" {
		return models.EvacZone{}, fmt.Errorf("%w: evacuation zone without uid", models.ErrDataIntegrity)
	}

	point, err := geo.ParsePointWKT(models.RowString(row, "geom_label"))
	if err != nil {
		return models.EvacZone{}, fmt.Errorf("evacuation zone %s: %w", uid, err)
	}

	return models.EvacZone{
		UID:         uid,
		DisplayName: models.RowString(row, "display_name"),
		Region:      models.RowString(row, "region_id"),
		Status:      models.RowString(row, "status"),
		Point:       point,
	}, nil
}

// StateHint returns the two-letter state after the last comma of a region such as
// "Los Angeles County, CA", or "" when there is none.
func StateHint(region string) string {
	idx := strings.LastIndex(region, ",")
	if idx < 0 {
		return ""
	}

	hint := strings.ToUpper(strings.TrimSpace(region[idx+1:]))
	if len(hint) != 2 || !isAlpha(hint) {
		return ""
	}

	return hint
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

func idString(id int64) string { return strconv.FormatInt(id, 10) }
