// Package mailbox defines the provider-neutral mail surface shared by the
// Gmail and Outlook adapters.
package mailbox

import "context"

// Message is a provider-neutral mail message.
type Message struct {
	ID          string       `json:"id"`
	ThreadID    string       `json:"threadId,omitempty"`
	Subject     string       `json:"subject"`
	From        string       `json:"from"`
	To          string       `json:"to,omitempty"`
	Cc          string       `json:"cc,omitempty"`
	Date        string       `json:"date,omitempty"`
	Snippet     string       `json:"snippet,omitempty"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

type ListOptions struct {
	Query      string
	PageToken  string
	MaxResults int64
}

type ListResult struct {
	Messages      []Message `json:"messages"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
	TotalEstimate int64     `json:"totalMessages"`
}

// Outgoing is a reply to be sent through the user's mailbox.
type Outgoing struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type WatchResult struct {
	SubscriptionID string `json:"subscriptionId,omitempty"`
	HistoryID      uint64 `json:"historyId,omitempty"`
	Expiration     string `json:"expiration,omitempty"`
}

// Stats is a mailbox-level summary. Counters a provider does not report
// stay zero and are omitted from the JSON.
type Stats struct {
	Provider      string `json:"provider"`
	TotalMessages int64  `json:"totalMessages"`
	TotalThreads  int64  `json:"totalThreads,omitempty"`
	UnreadCount   int64  `json:"unreadCount,omitempty"`
	HistoryID     uint64 `json:"historyId,omitempty"`
}

// Provider is the mailbox operations contract both adapters implement.
type Provider interface {
	ListMessages(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetMessage(ctx context.Context, id string) (*Message, error)
	SendMessage(ctx context.Context, out Outgoing) error
	DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error)
	Watch(ctx context.Context, notificationURL string) (*WatchResult, error)
	GetStats(ctx context.Context) (*Stats, error)
}

// FetchItem is the per-message outcome of a batch fetch.
type FetchItem struct {
	ID      string   `json:"id"`
	Success bool     `json:"success"`
	Data    *Message `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type FetchSummary struct {
	Total      int         `json:"total"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Results    []FetchItem `json:"results"`
}

// FetchBatch retrieves messages one at a time, recording per-item
// success or failure without aborting on errors.
func FetchBatch(ctx context.Context, p Provider, ids []string) FetchSummary {
	summary := FetchSummary{Total: len(ids), Results: make([]FetchItem, 0, len(ids))}

	for _, id := range ids {
		msg, err := p.GetMessage(ctx, id)
		if err != nil {
			summary.Failed++
			summary.Results = append(summary.Results, FetchItem{ID: id, Error: err.Error()})
			continue
		}
		summary.Successful++
		summary.Results = append(summary.Results, FetchItem{ID: id, Success: true, Data: msg})
	}

	return summary
}
