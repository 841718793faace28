package ai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

// TranslationFallback is the literal secondary-language value used when the
// translation call fails. Callers must treat it as a legitimate output.
const TranslationFallback = "Translation temporarily unavailable"

const translationFailedMarker = "Translation failed"

// CompleteBilingual pairs a one-language draft with its rendering in the
// other supported language. Translation is best-effort: on failure the
// secondary language carries TranslationFallback and Metadata.Error is set,
// so the primary draft always reaches the caller.
func (s *Service) CompleteBilingual(ctx context.Context, p CompleteParams) *BilingualResponse {
	other := language.Other(p.TargetLanguage)

	out := &BilingualResponse{
		PrimaryLanguage: p.TargetLanguage,
		Metadata: ResponseMetadata{
			DetectedLanguage: p.TargetLanguage,
			VenueAvailable:   p.IsAvailable,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
		},
	}
	out.setDraft(p.TargetLanguage, p.OriginalResponse)

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: translationSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(p.OriginalResponse, p.TargetLanguage),
			},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil || len(resp.Choices) == 0 {
		s.log.Warn("translation failed, returning primary draft only",
			zap.String("primaryLanguage", string(p.TargetLanguage)),
			zap.Error(err))
		out.setDraft(other, TranslationFallback)
		out.Metadata.Error = translationFailedMarker
		return out
	}

	out.setDraft(other, resp.Choices[0].Message.Content)
	return out
}
