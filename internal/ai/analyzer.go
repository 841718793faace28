package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

// rawAnalysis is what the model actually returns. Normalization into
// BookingAnalysis applies the documented defaults structurally instead of
// patching fields after the fact.
type rawAnalysis struct {
	Venue           *string     `json:"venue"`
	Date            *string     `json:"date"`
	Time            *string     `json:"time"`
	Attendees       *FlexString `json:"attendees"`
	EventType       *string     `json:"eventType"`
	ContactInfo     *string     `json:"contactInfo"`
	SpecialRequests *string     `json:"specialRequests"`
	Urgency         *string     `json:"urgency"`
	Language        *string     `json:"language"`
	Confidence      *float64    `json:"confidence"`
}

func (r rawAnalysis) normalize() *BookingAnalysis {
	a := &BookingAnalysis{
		Venue:           r.Venue,
		Date:            r.Date,
		Time:            r.Time,
		Attendees:       r.Attendees,
		EventType:       r.EventType,
		ContactInfo:     r.ContactInfo,
		SpecialRequests: r.SpecialRequests,
		Urgency:         "medium",
		Language:        language.English,
		Confidence:      0.8,
	}

	if r.Urgency != nil {
		switch *r.Urgency {
		case "high", "medium", "low":
			a.Urgency = *r.Urgency
		}
	}

	if r.Language != nil {
		switch language.Language(*r.Language) {
		case language.English, language.Chinese:
			a.Language = language.Language(*r.Language)
		}
	}

	if r.Confidence != nil && *r.Confidence >= 0 && *r.Confidence <= 1 {
		a.Confidence = *r.Confidence
	}

	return a
}

// AnalyzeEmail extracts booking fields from an inquiry email. An empty
// knownLanguage triggers detection on the content. Model or parse failures
// surface as errors; nothing is retried.
func (s *Service) AnalyzeEmail(ctx context.Context, content string, knownLanguage language.Language) (*BookingAnalysis, error) {
	lang := knownLanguage
	if lang == "" {
		lang = language.Detect(content)
	}

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: analysisSystemPrompt(lang),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: analysisPrompt(content, lang),
			},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing email: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("analyzing email: model returned no choices")
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &raw); err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}

	analysis := raw.normalize()
	s.log.Debug("email analyzed",
		zap.String("language", string(analysis.Language)),
		zap.String("urgency", analysis.Urgency),
		zap.Float64("confidence", analysis.Confidence))

	return analysis, nil
}
