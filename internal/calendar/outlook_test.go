package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestOutlookClient(handler http.Handler) (*OutlookClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewOutlookClient("test-token")
	c.baseURL = srv.URL
	return c, srv
}

func TestOutlookEvents(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	c, srv := newTestOutlookClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"startDateTime": r.URL.Query().Get("startDateTime"),
			"endDateTime":   r.URL.Query().Get("endDateTime"),
			"$orderby":      r.URL.Query().Get("$orderby"),
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": [
			{
				"id": "ev1",
				"subject": "Wedding banquet",
				"bodyPreview": "Full day setup",
				"location": {"displayName": "Main Hall"},
				"start": {"dateTime": "2025-03-01T10:00:00", "timeZone": "UTC"},
				"end": {"dateTime": "2025-03-01T14:00:00", "timeZone": "UTC"},
				"showAs": "busy"
			},
			{
				"id": "ev2",
				"subject": "Standup",
				"location": {"displayName": ""},
				"start": {"dateTime": "2025-03-01T09:00:00", "timeZone": "UTC"},
				"end": {"dateTime": "2025-03-01T09:15:00", "timeZone": "UTC"}
			}
		]}`))
	}))
	defer srv.Close()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := c.Events(context.Background(), start, end)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}

	if gotPath != "/me/calendar/events" {
		t.Errorf("path = %q, want /me/calendar/events", gotPath)
	}
	if gotQuery["startDateTime"] != "2025-03-01T00:00:00Z" {
		t.Errorf("startDateTime = %q", gotQuery["startDateTime"])
	}
	if gotQuery["endDateTime"] != "2025-03-02T00:00:00Z" {
		t.Errorf("endDateTime = %q", gotQuery["endDateTime"])
	}
	if gotQuery["$orderby"] != "start/dateTime" {
		t.Errorf("$orderby = %q, want start/dateTime", gotQuery["$orderby"])
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	first := events[0]
	if first.ID != "ev1" || first.Summary != "Wedding banquet" {
		t.Errorf("event = %+v", first)
	}
	if first.Description != "Full day setup" {
		t.Errorf("Description = %q, want bodyPreview carried over", first.Description)
	}
	if first.Location != "Main Hall" {
		t.Errorf("Location = %q, want displayName carried over", first.Location)
	}
	if first.Start != "2025-03-01T10:00:00" || first.End != "2025-03-01T14:00:00" {
		t.Errorf("Start/End = %q/%q", first.Start, first.End)
	}
	if first.Status != "busy" {
		t.Errorf("Status = %q, want showAs carried over", first.Status)
	}
}

func TestOutlookEventsErrorStatus(t *testing.T) {
	c, srv := newTestOutlookClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := c.Events(context.Background(), time.Now(), time.Now().Add(time.Hour)); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestCheckAvailabilityAgainstOutlook(t *testing.T) {
	c, srv := newTestOutlookClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": [
			{
				"id": "ev1",
				"subject": "Annual dinner",
				"location": {"displayName": "main hall, 2/F"},
				"start": {"dateTime": "2025-03-01T18:00:00", "timeZone": "UTC"},
				"end": {"dateTime": "2025-03-01T22:00:00", "timeZone": "UTC"}
			}
		]}`))
	}))
	defer srv.Close()

	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	availability, err := CheckAvailability(context.Background(), c, "Main Hall", start, time.Time{})
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}

	if availability.IsAvailable {
		t.Error("IsAvailable = true, want conflict with main hall event")
	}
	if len(availability.ConflictingEvents) != 1 || availability.ConflictingEvents[0].ID != "ev1" {
		t.Errorf("ConflictingEvents = %+v", availability.ConflictingEvents)
	}
	if availability.EndTime != "2025-03-01T20:00:00Z" {
		t.Errorf("EndTime = %q, want start plus two hours", availability.EndTime)
	}
}
