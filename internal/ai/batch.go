package ai

import (
	"context"

	"go.uber.org/zap"
)

// BatchProcess analyzes and drafts replies for a list of emails, strictly
// one at a time and in input order. A failing item is recorded and skipped;
// the batch never aborts, and the result always has one entry per input.
// Callers enforce batch size limits before reaching this point.
func (s *Service) BatchProcess(ctx context.Context, emails []EmailMessage) []BatchResult {
	results := make([]BatchResult, 0, len(emails))

	for _, email := range emails {
		analysis, err := s.AnalyzeEmail(ctx, email.Body, "")
		if err != nil {
			s.log.Warn("batch item failed during analysis",
				zap.String("emailId", email.ID), zap.Error(err))
			results = append(results, BatchResult{EmailID: email.ID, Error: err.Error()})
			continue
		}

		senderName := email.Sender.Name
		if senderName == "" {
			senderName = email.Sender.Email
		}

		response, err := s.GenerateResponse(ctx, GenerateParams{
			OriginalEmail: OriginalEmail{Subject: email.Subject, Body: email.Body},
			SenderName:    senderName,
			VenueInfo:     analysis,
		}, analysis.Language)
		if err != nil {
			s.log.Warn("batch item failed during response generation",
				zap.String("emailId", email.ID), zap.Error(err))
			results = append(results, BatchResult{EmailID: email.ID, Error: err.Error()})
			continue
		}

		results = append(results, BatchResult{
			EmailID:   email.ID,
			Analysis:  analysis,
			Response:  response,
			Processed: true,
		})
	}

	return results
}
