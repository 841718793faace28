package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

func TestCompleteBilingualSuccess(t *testing.T) {
	stub := &chatStub{replies: []string{"親愛的客戶，大禮堂十二月十五日可供預約。"}}
	svc := newTestService(stub)

	resp := svc.CompleteBilingual(context.Background(), CompleteParams{
		OriginalResponse: "Dear customer, the main hall is available on Dec 15.",
		TargetLanguage:   language.English,
		IsAvailable:      true,
	})

	if resp.PrimaryLanguage != language.English {
		t.Errorf("primaryLanguage = %q, want en", resp.PrimaryLanguage)
	}
	if resp.EN != "Dear customer, the main hall is available on Dec 15." {
		t.Errorf("en = %q, want the original draft", resp.EN)
	}
	if resp.ZH != "親愛的客戶，大禮堂十二月十五日可供預約。" {
		t.Errorf("zh = %q, want the translation", resp.ZH)
	}
	if resp.Metadata.Error != "" {
		t.Errorf("metadata.error = %q, want empty", resp.Metadata.Error)
	}
	if !resp.Metadata.VenueAvailable {
		t.Error("metadata should carry venue availability")
	}
	if _, err := time.Parse(time.RFC3339, resp.Metadata.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", resp.Metadata.Timestamp, err)
	}
	if !strings.Contains(stub.requests[0].Messages[1].Content, "professional Traditional Chinese") {
		t.Error("english primary should request a Traditional Chinese translation")
	}
}

func TestCompleteBilingualChinesePrimary(t *testing.T) {
	stub := &chatStub{replies: []string{"Dear customer, thank you for your inquiry."}}
	svc := newTestService(stub)

	resp := svc.CompleteBilingual(context.Background(), CompleteParams{
		OriginalResponse: "親愛的客戶，感謝您的查詢。",
		TargetLanguage:   language.Chinese,
	})

	if resp.ZH != "親愛的客戶，感謝您的查詢。" {
		t.Errorf("zh = %q, want the original draft", resp.ZH)
	}
	if resp.EN != "Dear customer, thank you for your inquiry." {
		t.Errorf("en = %q, want the translation", resp.EN)
	}
	if !strings.Contains(stub.requests[0].Messages[1].Content, "professional English") {
		t.Error("chinese primary should request an English translation")
	}
}

func TestCompleteBilingualAcceptsVenueInfo(t *testing.T) {
	stub := &chatStub{replies: []string{"大禮堂可供預約。"}}
	svc := newTestService(stub)

	resp := svc.CompleteBilingual(context.Background(), CompleteParams{
		OriginalResponse: "The hall is free that evening.",
		TargetLanguage:   language.English,
		VenueInfo:        &BookingAnalysis{Venue: strPtr("Main Hall"), Urgency: "medium"},
		IsAvailable:      true,
	})

	if resp.EN != "The hall is free that evening." {
		t.Errorf("en = %q, want the untouched primary draft", resp.EN)
	}
	if strings.Contains(stub.requests[0].Messages[1].Content, "Main Hall") {
		t.Error("venue context must not alter the translation prompt")
	}
}

func TestCompleteBilingualTranslationFailure(t *testing.T) {
	svc := newTestService(&chatStub{err: errors.New("rate limited")})

	resp := svc.CompleteBilingual(context.Background(), CompleteParams{
		OriginalResponse: "Dear customer, the hall is booked that evening.",
		TargetLanguage:   language.English,
	})

	if resp.EN != "Dear customer, the hall is booked that evening." {
		t.Errorf("en = %q, want the untouched primary draft", resp.EN)
	}
	if resp.ZH != TranslationFallback {
		t.Errorf("zh = %q, want %q", resp.ZH, TranslationFallback)
	}
	if resp.Metadata.Error != "Translation failed" {
		t.Errorf("metadata.error = %q, want Translation failed", resp.Metadata.Error)
	}
}
