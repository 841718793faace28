// Package outlook adapts the Microsoft Graph mail API to the
// mailbox.Provider contract.
package outlook

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox"
)

const defaultTop = 20

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewClient(accessToken string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: time.Second * 30},
		baseURL:     "https://graph.microsoft.com/v1.0",
		accessToken: accessToken,
	}
}

type graphRecipient struct {
	EmailAddress struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	ID               string           `json:"id"`
	ConversationID   string           `json:"conversationId"`
	Subject          string           `json:"subject"`
	BodyPreview      string           `json:"bodyPreview"`
	Body             graphBody        `json:"body"`
	From             graphRecipient   `json:"from"`
	ToRecipients     []graphRecipient `json:"toRecipients"`
	CcRecipients     []graphRecipient `json:"ccRecipients"`
	ReceivedDateTime string           `json:"receivedDateTime"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func fromGraph(m graphMessage) mailbox.Message {
	msg := mailbox.Message{
		ID:       m.ID,
		ThreadID: m.ConversationID,
		Subject:  m.Subject,
		From:     m.From.EmailAddress.Address,
		Date:     m.ReceivedDateTime,
		Snippet:  m.BodyPreview,
		Body:     m.Body.Content,
	}
	if len(m.ToRecipients) > 0 {
		msg.To = m.ToRecipients[0].EmailAddress.Address
	}
	if len(m.CcRecipients) > 0 {
		msg.Cc = m.CcRecipients[0].EmailAddress.Address
	}
	return msg
}

func (c *Client) ListMessages(ctx context.Context, opts mailbox.ListOptions) (*mailbox.ListResult, error) {
	top := opts.MaxResults
	if top <= 0 {
		top = defaultTop
	}

	params := url.Values{}
	params.Set("$top", strconv.FormatInt(top, 10))
	params.Set("$orderby", "receivedDateTime desc")
	if opts.Query != "" {
		params.Set("$search", strconv.Quote(opts.Query))
		params.Del("$orderby")
	}
	if opts.PageToken != "" {
		params.Set("$skiptoken", opts.PageToken)
	}

	var listed struct {
		Value    []graphMessage `json:"value"`
		NextLink string         `json:"@odata.nextLink"`
	}
	if err := c.getJSON(ctx, "/me/messages?"+params.Encode(), &listed); err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	result := &mailbox.ListResult{
		Messages:      make([]mailbox.Message, 0, len(listed.Value)),
		TotalEstimate: int64(len(listed.Value)),
	}
	for _, m := range listed.Value {
		result.Messages = append(result.Messages, fromGraph(m))
	}

	if listed.NextLink != "" {
		if next, err := url.Parse(listed.NextLink); err == nil {
			result.NextPageToken = next.Query().Get("$skiptoken")
		}
	}

	return result, nil
}

func (c *Client) GetMessage(ctx context.Context, id string) (*mailbox.Message, error) {
	var m graphMessage
	if err := c.getJSON(ctx, "/me/messages/"+url.PathEscape(id), &m); err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	msg := fromGraph(m)

	var attachments struct {
		Value []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			ContentType string `json:"contentType"`
			Size        int64  `json:"size"`
		} `json:"value"`
	}
	if err := c.getJSON(ctx, "/me/messages/"+url.PathEscape(id)+"/attachments", &attachments); err == nil {
		for _, a := range attachments.Value {
			msg.Attachments = append(msg.Attachments, mailbox.Attachment{
				ID:       a.ID,
				Filename: a.Name,
				MimeType: a.ContentType,
				Size:     a.Size,
			})
		}
	}

	return &msg, nil
}

func (c *Client) SendMessage(ctx context.Context, out mailbox.Outgoing) error {
	var to graphRecipient
	to.EmailAddress.Address = out.To

	payload := map[string]interface{}{
		"message": map[string]interface{}{
			"subject":      out.Subject,
			"body":         graphBody{ContentType: "Text", Content: out.Body},
			"toRecipients": []graphRecipient{to},
		},
		"saveToSentItems": true,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/me/sendMail", payload)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) DownloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	var att struct {
		ContentBytes string `json:"contentBytes"`
	}
	path := "/me/messages/" + url.PathEscape(messageID) + "/attachments/" + url.PathEscape(attachmentID)
	if err := c.getJSON(ctx, path, &att); err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(att.ContentBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding attachment: %w", err)
	}

	return data, nil
}

// GetStats reports inbox totals from the inbox mail folder.
func (c *Client) GetStats(ctx context.Context) (*mailbox.Stats, error) {
	var inbox struct {
		TotalItemCount  int64 `json:"totalItemCount"`
		UnreadItemCount int64 `json:"unreadItemCount"`
	}
	if err := c.getJSON(ctx, "/me/mailFolders/inbox", &inbox); err != nil {
		return nil, fmt.Errorf("getting inbox stats: %w", err)
	}

	return &mailbox.Stats{
		Provider:      "outlook",
		TotalMessages: inbox.TotalItemCount,
		UnreadCount:   inbox.UnreadItemCount,
	}, nil
}

func (c *Client) Watch(ctx context.Context, notificationURL string) (*mailbox.WatchResult, error) {
	payload := map[string]interface{}{
		"changeType":         "created",
		"notificationUrl":    notificationURL,
		"resource":           "/me/messages",
		"expirationDateTime": time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/subscriptions", payload)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var created struct {
		ID                 string `json:"id"`
		ExpirationDateTime string `json:"expirationDateTime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding subscription: %w", err)
	}

	return &mailbox.WatchResult{
		SubscriptionID: created.ID,
		Expiration:     created.ExpirationDateTime,
	}, nil
}
