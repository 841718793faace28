package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/config"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/ai"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/auth"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	aiService := ai.NewService(ai.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
	}, logger)

	oauth := auth.NewOAuth(cfg)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(cfg, aiService, oauth, tokens, logger).Router(),
	}

	go func() {
		logger.Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
