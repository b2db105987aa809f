// Package core holds the shared leaf types used across the orchestration
// engine: conversational roles and messages, retrieval results and ID
// generation. It intentionally has no dependencies on other moa packages so
// that every component can import it without cycles.
package core

import "github.com/google/uuid"

// Role identifies the author of a conversational message. The set of roles
// is closed; Valid reports membership.
type Role string

const (
	// RoleUser marks a message authored by the end user.
	RoleUser Role = "user"
	// RoleAssistant marks a message authored by a model.
	RoleAssistant Role = "assistant"
	// RoleSystem marks an instruction message.
	RoleSystem Role = "system"
)

// Valid reports whether the role is one of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is a single role-attributed text turn. Messages are treated as
// immutable after construction.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage constructs a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage constructs a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage constructs an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// RetrievedChunk is an archival memory item returned from similarity
// retrieval, best-first by Score.
type RetrievedChunk struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// NewID generates a new unique identifier for events and archival chunks.
func NewID() string {
	return uuid.New().String()
}
