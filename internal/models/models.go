// Package models contains the data types shared across malsum.
package models

import "github.com/google/uuid"

// GeminiModel is the single generative model every operation uses.
const GeminiModel = "gemini-2.5-flash"

// Passage is a Bible reference plus its retrieved text in the fixed
// translation. Immutable once stored; a new lookup replaces it wholesale.
type Passage struct {
	Reference string `json:"reference"` // normalized full-name form
	Text      string `json:"text"`
}

// Category identifies one of the three meditation content types.
type Category string

const (
	CategoryObservation    Category = "observation"
	CategoryInterpretation Category = "interpretation"
	CategoryApplication    Category = "application"
)

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{CategoryObservation, CategoryInterpretation, CategoryApplication}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryObservation, CategoryInterpretation, CategoryApplication:
		return true
	}
	return false
}

// Label returns the Korean display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryObservation:
		return "말씀관찰"
	case CategoryInterpretation:
		return "말씀해석"
	case CategoryApplication:
		return "말씀적용"
	}
	return string(c)
}

// MeditationContent holds the generated devotional text per category.
// Each field is independently absent until generated; all three reset
// together when a new passage replaces the current one.
type MeditationContent struct {
	Observation    string `json:"observation,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
	Application    string `json:"application,omitempty"`
}

// Get returns the content for a category, empty when not yet generated.
func (m MeditationContent) Get(c Category) string {
	switch c {
	case CategoryObservation:
		return m.Observation
	case CategoryInterpretation:
		return m.Interpretation
	case CategoryApplication:
		return m.Application
	}
	return ""
}

// Set stores content for a category.
func (m *MeditationContent) Set(c Category, text string) {
	switch c {
	case CategoryObservation:
		m.Observation = text
	case CategoryInterpretation:
		m.Interpretation = text
	case CategoryApplication:
		m.Application = text
	}
}

// Has reports whether a category has been generated.
func (m MeditationContent) Has(c Category) bool {
	return m.Get(c) != ""
}

// Reset clears all three fields.
func (m *MeditationContent) Reset() {
	*m = MeditationContent{}
}

// Chat roles as the provider expects them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// DeliveryStatus tags a chat message with its request outcome so a failed
// turn is visible in the transcript instead of silently unanswered.
type DeliveryStatus string

const (
	StatusPending DeliveryStatus = "pending"
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
)

// ChatMessage is one turn of the passage-grounded Q&A. Messages are
// append-only; only the Status field changes after insertion.
type ChatMessage struct {
	ID     string         `json:"id"`
	Role   string         `json:"role"`
	Text   string         `json:"text"`
	Status DeliveryStatus `json:"status"`
}

// NewUserMessage creates a pending user turn.
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{
		ID:     uuid.NewString(),
		Role:   RoleUser,
		Text:   text,
		Status: StatusPending,
	}
}

// NewModelMessage creates a delivered model turn.
func NewModelMessage(text string) ChatMessage {
	return ChatMessage{
		ID:     uuid.NewString(),
		Role:   RoleModel,
		Text:   text,
		Status: StatusSent,
	}
}
