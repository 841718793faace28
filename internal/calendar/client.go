// Package calendar answers venue availability questions from the user's
// calendar, on either provider.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Bookings without an explicit end default to a two hour slot.
const defaultSlot = 2 * time.Hour

type Event struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status,omitempty"`
}

type Availability struct {
	IsAvailable       bool    `json:"isAvailable"`
	Venue             string  `json:"venue"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	ConflictingEvents []Event `json:"conflictingEvents"`
}

// Source lists calendar events in a window. Both the Google and Outlook
// clients implement it.
type Source interface {
	Events(ctx context.Context, start, end time.Time) ([]Event, error)
}

type Client struct {
	service *calendarapi.Service
}

func NewClient(ctx context.Context, accessToken string) (*Client, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	srv, err := calendarapi.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return &Client{service: srv}, nil
}

func eventTime(t *calendarapi.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

// Events lists the primary calendar between start and end, expanded to
// single events in start order.
func (c *Client) Events(ctx context.Context, start, end time.Time) ([]Event, error) {
	listed, err := c.service.Events.List("primary").
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	events := make([]Event, 0, len(listed.Items))
	for _, item := range listed.Items {
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			Location:    item.Location,
			Start:       eventTime(item.Start),
			End:         eventTime(item.End),
			Status:      item.Status,
		})
	}

	return events, nil
}

// CheckAvailability reports whether a venue is free in the given window.
// A zero end time defaults to start plus two hours.
func CheckAvailability(ctx context.Context, src Source, venue string, start, end time.Time) (*Availability, error) {
	if end.IsZero() {
		end = start.Add(defaultSlot)
	}

	events, err := src.Events(ctx, start, end)
	if err != nil {
		return nil, err
	}

	conflicts := conflictsFor(events, venue)
	return &Availability{
		IsAvailable:       len(conflicts) == 0,
		Venue:             venue,
		StartTime:         start.Format(time.RFC3339),
		EndTime:           end.Format(time.RFC3339),
		ConflictingEvents: conflicts,
	}, nil
}

// conflictsFor keeps events whose location mentions the venue,
// case-insensitively.
func conflictsFor(events []Event, venue string) []Event {
	needle := strings.ToLower(venue)
	conflicts := make([]Event, 0)
	for _, event := range events {
		if event.Location != "" && strings.Contains(strings.ToLower(event.Location), needle) {
			conflicts = append(conflicts, event)
		}
	}
	return conflicts
}
