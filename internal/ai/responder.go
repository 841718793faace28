package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

// GenerateResponse drafts a reply to a booking inquiry and completes it into
// a bilingual payload. An empty targetLanguage triggers detection on the
// original email body.
func (s *Service) GenerateResponse(ctx context.Context, p GenerateParams, targetLanguage language.Language) (*BilingualResponse, error) {
	target := targetLanguage
	if target == "" {
		target = language.Detect(p.OriginalEmail.Body)
	}

	isAvailable := false
	conflicts := 0
	if p.CalendarData != nil {
		isAvailable = p.CalendarData.IsAvailable
		conflicts = len(p.CalendarData.ConflictingEvents)
	}

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: responseSystemPrompt(target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: responsePrompt(p, isAvailable, conflicts, target),
			},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, fmt.Errorf("generating response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generating response: model returned no choices")
	}

	return s.CompleteBilingual(ctx, CompleteParams{
		OriginalResponse: resp.Choices[0].Message.Content,
		TargetLanguage:   target,
		VenueInfo:        p.VenueInfo,
		IsAvailable:      isAvailable,
	}), nil
}
