// Package gmail adapts the Gmail REST API to the mailbox.Provider contract.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox"
)

const defaultMaxResults = 20

type Client struct {
	service *gmailapi.Service
	topic   string
}

// NewClient builds a Gmail client from a per-request access token. topic is
// the Pub/Sub topic push notifications are routed through.
func NewClient(ctx context.Context, accessToken, topic string) (*Client, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	srv, err := gmailapi.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}

	return &Client{service: srv, topic: topic}, nil
}

func (c *Client) ListMessages(ctx context.Context, opts mailbox.ListOptions) (*mailbox.ListResult, error) {
	query := opts.Query
	if query == "" {
		query = "is:inbox"
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	call := c.service.Users.Messages.List("me").Q(query).MaxResults(maxResults).Context(ctx)
	if opts.PageToken != "" {
		call = call.PageToken(opts.PageToken)
	}

	listed, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	result := &mailbox.ListResult{
		Messages:      make([]mailbox.Message, 0, len(listed.Messages)),
		NextPageToken: listed.NextPageToken,
		TotalEstimate: listed.ResultSizeEstimate,
	}

	for _, ref := range listed.Messages {
		msg, err := c.GetMessage(ctx, ref.Id)
		if err != nil {
			return nil, fmt.Errorf("fetching message %s: %w", ref.Id, err)
		}
		result.Messages = append(result.Messages, *msg)
	}

	return result, nil
}

func (c *Client) GetMessage(ctx context.Context, id string) (*mailbox.Message, error) {
	raw, err := c.service.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	msg := &mailbox.Message{
		ID:       raw.Id,
		ThreadID: raw.ThreadId,
		Snippet:  raw.Snippet,
	}

	for _, header := range raw.Payload.Headers {
		switch header.Name {
		case "Subject":
			msg.Subject = header.Value
		case "From":
			msg.From = header.Value
		case "To":
			msg.To = header.Value
		case "Cc":
			msg.Cc = header.Value
		case "Date":
			msg.Date = header.Value
		}
	}

	msg.Body = extractBody(raw.Payload)
	msg.Attachments = extractAttachments(raw.Payload)
	return msg, nil
}

// extractBody walks the MIME tree preferring text/plain over text/html.
func extractBody(part *gmailapi.MessagePart) string {
	var plain, html string
	collectBodies(part, &plain, &html)
	if plain != "" {
		return plain
	}
	return html
}

func collectBodies(part *gmailapi.MessagePart, plain, html *string) {
	if part.Body != nil && part.Body.Data != "" {
		if data, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
			switch part.MimeType {
			case "text/html":
				if *html == "" {
					*html = string(data)
				}
			default:
				if *plain == "" {
					*plain = string(data)
				}
			}
		}
	}

	for _, p := range part.Parts {
		collectBodies(p, plain, html)
	}
}

func extractAttachments(part *gmailapi.MessagePart) []mailbox.Attachment {
	var attachments []mailbox.Attachment

	if part.Body != nil && part.Body.AttachmentId != "" {
		attachments = append(attachments, mailbox.Attachment{
			ID:       part.Body.AttachmentId,
			Filename: part.Filename,
			MimeType: part.MimeType,
			Size:     part.Body.Size,
		})
	}

	for _, p := range part.Parts {
		attachments = append(attachments, extractAttachments(p)...)
	}

	return attachments
}

func (c *Client) SendMessage(ctx context.Context, out mailbox.Outgoing) error {
	rfc822 := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		out.To, out.Subject, out.Body)

	_, err := c.service.Users.Messages.Send("me", &gmailapi.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(rfc822)),
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

func (c *Client) DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	att, err := c.service.Users.Messages.Attachments.Get("me", messageID, attachmentID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}

	data, err := base64.URLEncoding.DecodeString(att.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding attachment: %w", err)
	}

	return data, nil
}

// GetStats reports mailbox totals from the Gmail profile.
func (c *Client) GetStats(ctx context.Context) (*mailbox.Stats, error) {
	profile, err := c.service.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &mailbox.Stats{
		Provider:      "gmail",
		TotalMessages: profile.MessagesTotal,
		TotalThreads:  profile.ThreadsTotal,
		HistoryID:     profile.HistoryId,
	}, nil
}

// Watch registers inbox push notifications. Gmail routes them through a
// Pub/Sub topic rather than calling the URL directly, so the notification
// URL is handled by the topic's push subscription.
func (c *Client) Watch(ctx context.Context, _ string) (*mailbox.WatchResult, error) {
	resp, err := c.service.Users.Watch("me", &gmailapi.WatchRequest{
		TopicName:         c.topic,
		LabelIds:          []string{"INBOX"},
		LabelFilterAction: "include",
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("registering watch: %w", err)
	}

	return &mailbox.WatchResult{
		HistoryID:  resp.HistoryId,
		Expiration: strconv.FormatInt(resp.Expiration, 10),
	}, nil
}
