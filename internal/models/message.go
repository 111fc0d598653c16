// ABOUTME: Message represents one turn in the dream mentor chat transcript
// ABOUTME: Kept in memory only; chat history is not persisted
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chat message roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single chat message.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a generated id and current timestamp.
func NewMessage(role, text string, now time.Time) Message {
	return Message{
		ID:        fmt.Sprintf("msg_%s_%s", now.Format("20060102_150405"), uuid.New().String()[:8]),
		Role:      role,
		Text:      text,
		Timestamp: now,
	}
}
