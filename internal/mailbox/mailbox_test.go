package mailbox

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	messages map[string]*Message
}

func (f *fakeProvider) ListMessages(context.Context, ListOptions) (*ListResult, error) {
	return &ListResult{}, nil
}

func (f *fakeProvider) GetMessage(_ context.Context, id string) (*Message, error) {
	msg, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found")
	}
	return msg, nil
}

func (f *fakeProvider) SendMessage(context.Context, Outgoing) error { return nil }

func (f *fakeProvider) DownloadAttachment(context.Context, string, string) ([]byte, error) {
	return nil, nil
}

func (f *fakeProvider) Watch(context.Context, string) (*WatchResult, error) {
	return &WatchResult{}, nil
}

func (f *fakeProvider) GetStats(context.Context) (*Stats, error) {
	return &Stats{TotalMessages: int64(len(f.messages))}, nil
}

func TestFetchBatch(t *testing.T) {
	p := &fakeProvider{messages: map[string]*Message{
		"a": {ID: "a", Subject: "Booking inquiry"},
		"c": {ID: "c", Subject: "Follow-up"},
	}}

	summary := FetchBatch(context.Background(), p, []string{"a", "b", "c"})

	if summary.Total != 3 || summary.Successful != 2 || summary.Failed != 1 {
		t.Fatalf("summary = %d/%d/%d, want 3/2/1", summary.Total, summary.Successful, summary.Failed)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(summary.Results))
	}

	if !summary.Results[0].Success || summary.Results[0].Data.Subject != "Booking inquiry" {
		t.Errorf("results[0] = %+v", summary.Results[0])
	}
	if summary.Results[1].Success || summary.Results[1].Error == "" {
		t.Errorf("results[1] should record the failure: %+v", summary.Results[1])
	}
	if !summary.Results[2].Success {
		t.Errorf("failure of item 2 must not block item 3: %+v", summary.Results[2])
	}
}

func TestFetchBatchEmpty(t *testing.T) {
	summary := FetchBatch(context.Background(), &fakeProvider{}, nil)
	if summary.Total != 0 || len(summary.Results) != 0 {
		t.Fatalf("summary = %+v, want empty", summary)
	}
}
