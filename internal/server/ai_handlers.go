package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/ai"
	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

func (s *Server) handleAnalyzeEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmailContent     string            `json:"emailContent"`
		DetectedLanguage language.Language `json:"detectedLanguage,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EmailContent == "" {
		s.respondError(w, http.StatusBadRequest, "Email content is required")
		return
	}

	analysis, err := s.ai.AnalyzeEmail(r.Context(), req.EmailContent, req.DetectedLanguage)
	if err != nil {
		s.log.Error("analyzing email", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to analyze email")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"analysis":   analysis,
		"language":   analysis.Language,
		"confidence": analysis.Confidence,
	})
}

func (s *Server) handleGenerateResponse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OriginalEmail  *ai.OriginalEmail   `json:"originalEmail"`
		SenderName     string              `json:"senderName,omitempty"`
		VenueInfo      *ai.BookingAnalysis `json:"venueInfo,omitempty"`
		CalendarData   *ai.CalendarData    `json:"calendarData,omitempty"`
		TargetLanguage language.Language   `json:"targetLanguage,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OriginalEmail == nil {
		s.respondError(w, http.StatusBadRequest, "Original email is required")
		return
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = "Valued Customer"
	}
	subject := req.OriginalEmail.Subject
	if subject == "" {
		subject = "Venue Booking Inquiry"
	}

	response, err := s.ai.GenerateResponse(r.Context(), ai.GenerateParams{
		OriginalEmail: ai.OriginalEmail{Subject: subject, Body: req.OriginalEmail.Body},
		SenderName:    senderName,
		VenueInfo:     req.VenueInfo,
		CalendarData:  req.CalendarData,
	}, req.TargetLanguage)
	if err != nil {
		s.log.Error("generating response", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"generatedResponse": response,
	})
}

func (s *Server) handleBatchProcess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Emails []ai.EmailMessage `json:"emails"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Emails == nil {
		s.respondError(w, http.StatusBadRequest, "Emails array is required")
		return
	}
	if len(req.Emails) > maxAIBatchSize {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Maximum %d emails per batch", maxAIBatchSize))
		return
	}

	results := s.ai.BatchProcess(r.Context(), req.Emails)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
	})
}

func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmailContent string `json:"emailContent"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EmailContent == "" {
		s.respondError(w, http.StatusBadRequest, "Email content is required")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"language": s.ai.DetectLanguage(req.EmailContent),
	})
}
