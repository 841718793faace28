package ai

import (
	"encoding/json"
	"fmt"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

// EmailMessage is an inbound inquiry email as supplied by callers.
type EmailMessage struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Sender  Sender `json:"sender"`
}

type Sender struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// BookingAnalysis holds the structured fields extracted from an inquiry.
// Fields the model could not find stay nil and serialize as JSON null.
type BookingAnalysis struct {
	Venue           *string           `json:"venue"`
	Date            *string           `json:"date"`
	Time            *string           `json:"time"`
	Attendees       *FlexString       `json:"attendees"`
	EventType       *string           `json:"eventType"`
	ContactInfo     *string           `json:"contactInfo"`
	SpecialRequests *string           `json:"specialRequests"`
	Urgency         string            `json:"urgency"`
	Language        language.Language `json:"language"`
	Confidence      float64           `json:"confidence"`
}

// FlexString accepts either a JSON string or a JSON number. The model is
// asked for strings but tends to return attendee counts as bare numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("value %s is neither string nor number", data)
	}
	*s = FlexString(num.String())
	return nil
}

// CalendarData is the availability summary produced by the calendar layer.
type CalendarData struct {
	IsAvailable       bool               `json:"isAvailable"`
	ConflictingEvents []ConflictingEvent `json:"conflictingEvents"`
}

type ConflictingEvent struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// OriginalEmail is the subject/body pair a reply is drafted for.
type OriginalEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateParams carries everything needed to draft a reply.
type GenerateParams struct {
	OriginalEmail OriginalEmail
	SenderName    string
	VenueInfo     *BookingAnalysis
	CalendarData  *CalendarData
}

// CompleteParams feeds a one-language draft into bilingual completion.
// VenueInfo is optional context accompanying the draft; completion does not
// alter the draft based on it.
type CompleteParams struct {
	OriginalResponse string
	TargetLanguage   language.Language
	VenueInfo        *BookingAnalysis
	IsAvailable      bool
}

// BilingualResponse is a drafted reply in both supported languages. Both
// renderings are always populated; when translation fails the secondary one
// carries the fallback string and Metadata.Error is set.
type BilingualResponse struct {
	PrimaryLanguage language.Language `json:"primaryLanguage"`
	EN              string            `json:"en"`
	ZH              string            `json:"zh"`
	Metadata        ResponseMetadata  `json:"metadata"`
}

type ResponseMetadata struct {
	DetectedLanguage language.Language `json:"detectedLanguage"`
	VenueAvailable   bool              `json:"venueAvailable"`
	Timestamp        string            `json:"timestamp"`
	Error            string            `json:"error,omitempty"`
}

// Draft returns the rendering for the given language.
func (r *BilingualResponse) Draft(l language.Language) string {
	if l == language.Chinese {
		return r.ZH
	}
	return r.EN
}

func (r *BilingualResponse) setDraft(l language.Language, text string) {
	if l == language.Chinese {
		r.ZH = text
		return
	}
	r.EN = text
}

// BatchResult records the outcome for one email of a batch.
type BatchResult struct {
	EmailID   string             `json:"emailId"`
	Analysis  *BookingAnalysis   `json:"analysis,omitempty"`
	Response  *BilingualResponse `json:"response,omitempty"`
	Processed bool               `json:"processed"`
	Error     string             `json:"error,omitempty"`
}
