package incidents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
)

//nolint:gochecknoglobals // field synonyms in lookup order
var (
	titleFields    = []string{"title", "Title", "description", "Description"}
	roadFields     = []string{"road", "Road", "roadway", "Roadway"}
	severityFields = []string{"severity", "Severity"}
	statusFields   = []string{"status", "Status"}
)

const defaultTitle = "Incident"

// Normalize maps a raw feed record onto an Incident. Each field takes the first non-empty
// synonym; a record without any title gets "Incident".
func Normalize(raw map[string]any) models.Incident {
	incident := models.Incident{
		Title:    firstOf(raw, titleFields),
		Road:     firstOf(raw, roadFields),
		Severity: firstOf(raw, severityFields),
		Status:   firstOf(raw, statusFields),
	}
	if incident.Title == "" {
		incident.Title = defaultTitle
	}

	return incident
}

func firstOf(raw map[string]any, keys []string) string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}

		var text string
		switch v := value.(type) {
		case string:
			text = v
		case bool:
			if !v {
				continue
			}
			text = "true"
		case float64:
			if v == 0 {
				continue
			}
			text = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			text = fmt.Sprint(v)
		}

		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}

	return ""
}
