package calendar

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubSource struct {
	events []Event
	err    error
}

func (s stubSource) Events(ctx context.Context, start, end time.Time) ([]Event, error) {
	return s.events, s.err
}

func TestCheckAvailabilityNoConflicts(t *testing.T) {
	src := stubSource{events: []Event{
		{ID: "e1", Summary: "Team offsite", Location: "Garden Room"},
	}}

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	availability, err := CheckAvailability(context.Background(), src, "Main Hall", start, end)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !availability.IsAvailable {
		t.Error("IsAvailable = false, want true when no event mentions the venue")
	}
	if availability.StartTime != "2025-03-01T10:00:00Z" || availability.EndTime != "2025-03-01T13:00:00Z" {
		t.Errorf("window = %q..%q", availability.StartTime, availability.EndTime)
	}
}

func TestCheckAvailabilityPropagatesSourceError(t *testing.T) {
	src := stubSource{err: errors.New("upstream down")}
	if _, err := CheckAvailability(context.Background(), src, "Main Hall", time.Now(), time.Time{}); err == nil {
		t.Fatal("expected source error to propagate")
	}
}

func TestConflictsFor(t *testing.T) {
	events := []Event{
		{ID: "e1", Summary: "Wedding banquet", Location: "Main Hall"},
		{ID: "e2", Summary: "Team offsite", Location: "Garden Room"},
		{ID: "e3", Summary: "Annual dinner", Location: "main hall, 2/F"},
		{ID: "e4", Summary: "Setup crew"},
	}

	tests := []struct {
		name    string
		venue   string
		wantIDs []string
	}{
		{
			name:    "case insensitive substring match",
			venue:   "main hall",
			wantIDs: []string{"e1", "e3"},
		},
		{
			name:    "different venue",
			venue:   "garden room",
			wantIDs: []string{"e2"},
		},
		{
			name:    "no matches means available",
			venue:   "rooftop",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := conflictsFor(events, tt.venue)
			if len(conflicts) != len(tt.wantIDs) {
				t.Fatalf("got %d conflicts, want %d", len(conflicts), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if conflicts[i].ID != want {
					t.Errorf("conflicts[%d].ID = %q, want %q", i, conflicts[i].ID, want)
				}
			}
		})
	}
}

func TestConflictsForIgnoresEventsWithoutLocation(t *testing.T) {
	events := []Event{{ID: "e1", Summary: "Untitled"}}
	if got := conflictsFor(events, ""); len(got) != 0 {
		t.Errorf("events without a location must never conflict, got %v", got)
	}
}
