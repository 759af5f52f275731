package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/planner"
)

// runTrip plans a trip from the address in args and writes it as indented JSON. Active
// geo events from the store become the nearby threats; a store failure only drops them.
func runTrip(ctx context.Context, application *app, logger *slog.Logger, args []string, out io.Writer) error {
	address := strings.TrimSpace(strings.Join(args, " "))
	if address == "" {
		return errors.New("usage: exodus trip <address>")
	}

	var threats []planner.Threat
	events, err := application.alerts.ActiveEvents(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load active geo events, planning without threats", "error", err)
	}
	for _, event := range events {
		point := event.Point
		threats = append(threats, planner.Threat{Name: event.Name, Point: &point})
	}

	trip, _, err := application.trips.Plan(ctx, planner.Session{}, planner.TripRequest{
		Address:      address,
		Threats:      threats,
		ThreatRadius: planner.DefaultThreatRadiusMi,
	})
	if err != nil {
		return fmt.Errorf("failed to plan trip: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(trip)
}
