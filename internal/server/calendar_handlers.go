package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/calendar"
)

func (s *Server) handleCalendarEvents(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		s.respondError(w, http.StatusBadRequest, "Start date and end date are required")
		return
	}

	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid end date")
		return
	}

	client, err := s.calendarFor(r.Context(), claimsFrom(r.Context()))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := client.Events(r.Context(), start, end)
	if err != nil {
		s.log.Error("fetching calendar events", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to fetch calendar events")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (s *Server) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Venue     string `json:"venue"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Venue == "" || req.StartTime == "" {
		s.respondError(w, http.StatusBadRequest, "Venue and start time are required")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid start time")
		return
	}
	var end time.Time
	if req.EndTime != "" {
		end, err = time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid end time")
			return
		}
	}

	client, err := s.calendarFor(r.Context(), claimsFrom(r.Context()))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	availability, err := calendar.CheckAvailability(r.Context(), client, req.Venue, start, end)
	if err != nil {
		s.log.Error("checking availability", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to check venue availability")
		return
	}

	s.respondJSON(w, http.StatusOK, availability)
}
