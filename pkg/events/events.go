// Package events defines the messages published to Kafka.
package events

import "time"

// ConversationRecorded is published after a question/answer pair has been stored.
type ConversationRecorded struct {
	ConversationID uint      `json:"conversation_id"`
	SessionID      string    `json:"session_id"`
	Subject        string    `json:"subject"`
	Confidence     float64   `json:"confidence"`
	Fallback       bool      `json:"fallback"`
	CreatedAt      time.Time `json:"created_at"`
}
