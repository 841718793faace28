// Package ai drafts bilingual replies to venue-booking inquiry emails by
// orchestrating chat-completion calls against an OpenRouter-hosted model.
package ai

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "deepseek/deepseek-chat"
)

// ChatCompleter is the slice of the OpenAI client the service needs.
// *openai.Client satisfies it; tests substitute stubs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds the chat-completion endpoint settings. No package-level
// state: every Service gets its own copy at construction.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Service struct {
	chat  ChatCompleter
	model string
	log   *zap.Logger
}

func NewService(cfg Config, log *zap.Logger) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	if clientCfg.BaseURL == "" {
		clientCfg.BaseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Service{
		chat:  openai.NewClientWithConfig(clientCfg),
		model: model,
		log:   log,
	}
}

// NewServiceWithClient wires in a caller-provided completion client.
func NewServiceWithClient(chat ChatCompleter, model string, log *zap.Logger) *Service {
	if model == "" {
		model = defaultModel
	}
	return &Service{chat: chat, model: model, log: log}
}

// DetectLanguage reports the language of the given email text.
func (s *Service) DetectLanguage(text string) language.Language {
	return language.Detect(text)
}
