package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// OutlookClient reads the user's default calendar through Microsoft Graph.
type OutlookClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewOutlookClient(accessToken string) *OutlookClient {
	return &OutlookClient{
		httpClient:  &http.Client{Timeout: time.Second * 30},
		baseURL:     "https://graph.microsoft.com/v1.0",
		accessToken: accessToken,
	}
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphEvent struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	BodyPreview string `json:"bodyPreview"`
	Location    struct {
		DisplayName string `json:"displayName"`
	} `json:"location"`
	Start  graphDateTime `json:"start"`
	End    graphDateTime `json:"end"`
	ShowAs string        `json:"showAs"`
}

func fromGraphEvent(e graphEvent) Event {
	return Event{
		ID:          e.ID,
		Summary:     e.Subject,
		Description: e.BodyPreview,
		Location:    e.Location.DisplayName,
		Start:       e.Start.DateTime,
		End:         e.End.DateTime,
		Status:      e.ShowAs,
	}
}

// Events lists the default calendar between start and end in start order.
func (c *OutlookClient) Events(ctx context.Context, start, end time.Time) ([]Event, error) {
	params := url.Values{}
	params.Set("startDateTime", start.Format(time.RFC3339))
	params.Set("endDateTime", end.Format(time.RFC3339))
	params.Set("$orderby", "start/dateTime")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/me/calendar/events?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing events: unexpected status code: %d", resp.StatusCode)
	}

	var listed struct {
		Value []graphEvent `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}

	events := make([]Event, 0, len(listed.Value))
	for _, e := range listed.Value {
		events = append(events, fromGraphEvent(e))
	}

	return events, nil
}
