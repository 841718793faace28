package ai

import (
	"fmt"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/language"
)

const notSpecified = "未指定/Not specified"

func analysisSystemPrompt(lang language.Language) string {
	if lang == language.Chinese {
		return "你是一個專業的場地預約管理助手。你的任務是準確地從電子郵件中提取預約相關資訊。請以繁體中文回應，並確保提取的資訊準確無誤。"
	}
	return "You are a professional venue booking management assistant. Your task is to accurately extract booking-related information from emails. Respond in English and ensure extracted information is accurate."
}

func analysisPrompt(emailContent string, lang language.Language) string {
	if lang == language.Chinese {
		return fmt.Sprintf(`請從以下場地預約查詢電子郵件中提取以下資訊，並以 JSON 格式回應：
{
  "venue": "場地名稱",
  "date": "日期 (YYYY-MM-DD 格式)",
  "time": "時間 (HH:MM 格式)",
  "attendees": "參加人數",
  "eventType": "活動類型",
  "contactInfo": "聯絡資訊",
  "specialRequests": "特殊要求",
  "urgency": "緊急程度 (high/medium/low)",
  "language": "郵件語言"
}

如果某些欄位在郵件中找不到，請設為 null。

郵件內容：
%s

請確保回應是有效的 JSON 格式。`, emailContent)
	}

	return fmt.Sprintf(`Extract the following information from this venue booking inquiry email and return as JSON:
{
  "venue": "venue name",
  "date": "date (YYYY-MM-DD format)",
  "time": "time (HH:MM format)",
  "attendees": "number of attendees",
  "eventType": "type of event",
  "contactInfo": "contact information",
  "specialRequests": "special requests",
  "urgency": "urgency level (high/medium/low)",
  "language": "email language"
}

If any field is not found in the email, set its value to null.

Email content:
%s

Ensure the response is valid JSON format.`, emailContent)
}

func responseSystemPrompt(lang language.Language) string {
	if lang == language.Chinese {
		return "你是一位專業的場地預約管理經理。你的任務是撰寫禮貌、專業且有用的回覆郵件給客戶。請使用繁體中文，保持語氣友善但專業。"
	}
	return "You are a professional venue booking manager. Your task is to write polite, professional, and helpful response emails to clients. Use English and maintain a friendly yet professional tone."
}

func orNotSpecified(s *string) string {
	if s == nil || *s == "" {
		return notSpecified
	}
	return *s
}

func responsePrompt(p GenerateParams, isAvailable bool, conflicts int, lang language.Language) string {
	var venue, date, timeOfDay, attendees, eventType string
	if info := p.VenueInfo; info != nil {
		venue = orNotSpecified(info.Venue)
		date = orNotSpecified(info.Date)
		timeOfDay = orNotSpecified(info.Time)
		if info.Attendees != nil && *info.Attendees != "" {
			attendees = string(*info.Attendees)
		} else {
			attendees = notSpecified
		}
		eventType = orNotSpecified(info.EventType)
	} else {
		venue, date, timeOfDay, attendees, eventType = notSpecified, notSpecified, notSpecified, notSpecified, notSpecified
	}

	if lang == language.Chinese {
		availability := "可預約"
		conflictLine := ""
		if !isAvailable {
			availability = "不可預約"
			conflictLine = fmt.Sprintf("\n衝突活動數量：%d", conflicts)
		}

		return fmt.Sprintf(`請為以下場地預約查詢撰寫專業的回覆電子郵件：

原始郵件主旨：%s
寄件者：%s

原始郵件內容：
%s

預約詳情：
- 場地：%s
- 日期：%s
- 時間：%s
- 參加人數：%s
- 活動類型：%s

場地可用性：%s%s

請撰寫一封專業、禮貌且完整的回覆郵件，使用繁體中文。`,
			p.OriginalEmail.Subject, p.SenderName, p.OriginalEmail.Body,
			venue, date, timeOfDay, attendees, eventType, availability, conflictLine)
	}

	availability := "Available"
	conflictLine := ""
	if !isAvailable {
		availability = "Not Available"
		conflictLine = fmt.Sprintf("\nNumber of Conflicting Events: %d", conflicts)
	}

	return fmt.Sprintf(`Write a professional email response for this venue booking inquiry:

Original Email Subject: %s
From: %s

Original Email Content:
%s

Booking Details:
- Venue: %s
- Date: %s
- Time: %s
- Attendees: %s
- Event Type: %s

Venue Availability: %s%s

Please write a professional, polite, and comprehensive response email in English.`,
		p.OriginalEmail.Subject, p.SenderName, p.OriginalEmail.Body,
		venue, date, timeOfDay, attendees, eventType, availability, conflictLine)
}

const translationSystemPrompt = "You are a professional translator. Translate the email while maintaining professional tone and context."

func translationPrompt(originalResponse string, target language.Language) string {
	if target == language.Chinese {
		return fmt.Sprintf("Translate this Chinese email response to professional English: %s", originalResponse)
	}
	return fmt.Sprintf("Translate this English email response to professional Traditional Chinese: %s", originalResponse)
}
