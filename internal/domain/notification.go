package domain

import "time"

// Generation sources for a notification result.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Notification is a generated push notification as handed off to the
// delivery topic.
type Notification struct {
	ID               string    `json:"id"`
	ClientCode       int       `json:"client_code"`
	Product          string    `json:"product"`
	PushNotification string    `json:"push_notification"`
	Source           string    `json:"source"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToneInstruction is the pair of tone-of-voice fragments injected into every
// prompt. Both fragments are always non-empty.
type ToneInstruction struct {
	AgeTone    string
	StatusTone string
}

// Client status values as they appear in the source data.
const (
	StatusStudent  = "Студент"
	StatusSalaried = "Зарплатный клиент"
	StatusPremium  = "Премиальный клиент"
	StatusStandard = "Стандартный клиент"
)
