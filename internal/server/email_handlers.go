package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/mailbox"
)

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := mailbox.ListOptions{
		Query:     r.URL.Query().Get("query"),
		PageToken: r.URL.Query().Get("pageToken"),
	}
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			opts.MaxResults = n
		}
	}

	result, err := provider.ListMessages(r.Context(), opts)
	if err != nil {
		s.log.Error("listing messages", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := provider.GetMessage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.log.Error("getting message", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch message")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"message": msg})
}

func (s *Server) handleDownloadAttachment(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := provider.DownloadAttachment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "attachmentID"))
	if err != nil {
		s.log.Error("downloading attachment", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to download attachment")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req mailbox.Outgoing
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.To == "" || req.Subject == "" {
		s.respondError(w, http.StatusBadRequest, "Recipient and subject are required")
		return
	}

	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := provider.SendMessage(r.Context(), req); err != nil {
		s.log.Error("sending message", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleBatchFetch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmailIDs []string `json:"emailIds"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EmailIDs == nil {
		s.respondError(w, http.StatusBadRequest, "Email IDs array is required")
		return
	}
	if len(req.EmailIDs) > maxEmailBatchSize {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Maximum %d emails per batch", maxEmailBatchSize))
		return
	}

	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, mailbox.FetchBatch(r.Context(), provider, req.EmailIDs))
}

func (s *Server) handleEmailStats(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := provider.GetStats(r.Context())
	if err != nil {
		s.log.Error("getting email stats", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to get email statistics")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
}

func (s *Server) handleCreateWebhook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NotificationURL string `json:"notificationUrl"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := claimsFrom(r.Context())
	provider, err := s.mailboxFor(r.Context(), claims)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := provider.Watch(r.Context(), req.NotificationURL)
	if err != nil {
		s.log.Error("creating webhook", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to create webhook")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"subscription": result,
	})
}
