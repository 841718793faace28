// Package server exposes the assistant over HTTP for the dashboard.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/config"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/ai"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/auth"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/calendar"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox/gmail"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox/outlook"
)

const (
	maxAIBatchSize    = 50
	maxEmailBatchSize = 100
)

type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	ai     *ai.Service
	oauth  *auth.OAuth
	tokens *auth.TokenIssuer
}

func New(cfg *config.Config, aiService *ai.Service, oauth *auth.OAuth, tokens *auth.TokenIssuer, log *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		log:    log,
		ai:     aiService,
		oauth:  oauth,
		tokens: tokens,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/{provider}", s.handleLogin)
			r.Get("/{provider}/callback", s.handleCallback)
			r.Get("/verify", s.handleVerifyToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Route("/ai", func(r chi.Router) {
				r.Post("/analyze-email", s.handleAnalyzeEmail)
				r.Post("/generate-response", s.handleGenerateResponse)
				r.Post("/batch-process", s.handleBatchProcess)
				r.Post("/detect-language", s.handleDetectLanguage)
			})

			r.Route("/email", func(r chi.Router) {
				r.Get("/messages", s.handleListMessages)
				r.Get("/messages/{id}", s.handleGetMessage)
				r.Get("/messages/{id}/attachments/{attachmentID}", s.handleDownloadAttachment)
				r.Post("/send", s.handleSendMessage)
				r.Post("/batch", s.handleBatchFetch)
				r.Post("/webhook", s.handleCreateWebhook)
				r.Get("/stats", s.handleEmailStats)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/events", s.handleCalendarEvents)
				r.Post("/availability", s.handleCheckAvailability)
			})
		})
	})

	return r
}

// mailboxFor builds the mail client matching the provider the bearer token
// was issued for.
func (s *Server) mailboxFor(ctx context.Context, claims *auth.Claims) (mailbox.Provider, error) {
	switch claims.Provider {
	case auth.ProviderGoogle:
		return gmail.NewClient(ctx, claims.AccessToken, s.cfg.Google.PubSubTopic)
	case auth.ProviderMicrosoft:
		return outlook.NewClient(claims.AccessToken), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", claims.Provider)
	}
}

// calendarFor builds the calendar source matching the provider the bearer
// token was issued for.
func (s *Server) calendarFor(ctx context.Context, claims *auth.Claims) (calendar.Source, error) {
	switch claims.Provider {
	case auth.ProviderGoogle:
		return calendar.NewClient(ctx, claims.AccessToken)
	case auth.ProviderMicrosoft:
		return calendar.NewOutlookClient(claims.AccessToken), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", claims.Provider)
	}
}
