package models

import "time"

// Source identifies the channel an inbound message arrived on.
type Source string

const (
	SourceWebsite Source = "website"
	SourceEmail   Source = "email"
	SourceChat    Source = "chat"
	SourceForm    Source = "form"
	SourceFAQ     Source = "faq"
	SourcePrayer  Source = "prayer"
)

// Message represents an inbound ministry message. It is constructed once per
// request and never mutated after that.
type Message struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	UserID   string `json:"user_id"`
	Source   Source `json:"source"`
}

// Intent is the message type the keyword router assigns to a message.
type Intent string

const (
	IntentPrayerRequest  Intent = "prayer_request"
	IntentFAQInquiry     Intent = "faq_inquiry"
	IntentGeneralInquiry Intent = "general_inquiry"
	IntentDefault        Intent = "default"
)

// PipelineResult is the externally observable outcome of one pipeline run.
type PipelineResult struct {
	Response       string  `json:"response"`
	Escalated      bool    `json:"needs_escalation"`
	FAQMatched     bool    `json:"faq_matched"`
	Language       string  `json:"language"`
	ResponseTimeMS float64 `json:"response_time_ms"`
}

// PrayerRouting describes how a prayer request should be directed.
type PrayerRouting struct {
	IsPrayerRequest  bool   `json:"is_prayer_request"`
	NeedsDeliverance bool   `json:"needs_deliverance"`
	IsUrgent         bool   `json:"is_urgent"`
	Suggestion       string `json:"routing_suggestion"`
}

// ScriptureReference is a single verse loaded from the content store.
type ScriptureReference struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// Interaction is the analytics record written after a response is committed.
type Interaction struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	MessageType    string    `json:"message_type"`
	ResponseTimeMS float64   `json:"response_time_ms"`
	Escalated      bool      `json:"escalated"`
	FAQMatched     bool      `json:"faq_matched"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"created_at"`
}
