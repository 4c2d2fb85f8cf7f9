package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Profile events
	EventTypeProfileCreated EventType = "profile.created"
	EventTypeProfileDeleted EventType = "profile.deleted"

	// Token events
	EventTypeTokensMigrated EventType = "tokens.migrated"
	EventTypeTokensSaved    EventType = "tokens.saved"
	EventTypeTokensRejected EventType = "tokens.rejected"
	EventTypeTokensReset    EventType = "tokens.reset"

	// System events
	EventTypeError   EventType = "error"
	EventTypeWarning EventType = "warning"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeProfile EntityType = "profile"
	EntityTypeSystem  EntityType = "system"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	return validation.Err()
}

// TokensSavedPayload is the payload for tokens.saved events.
type TokensSavedPayload struct {
	ProfileName string `json:"profile_name"`
	Version     int    `json:"version"`
	Bytes       int    `json:"bytes"`
}

// TokensMigratedPayload is the payload for tokens.migrated events.
type TokensMigratedPayload struct {
	ProfileName string `json:"profile_name"`
	FromLegacy  bool   `json:"from_legacy"`
}

// TokensRejectedPayload is the payload for tokens.rejected events.
type TokensRejectedPayload struct {
	ProfileName string   `json:"profile_name"`
	Issues      []string `json:"issues"`
}

// ErrorPayload is the payload for error events.
type ErrorPayload struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}
