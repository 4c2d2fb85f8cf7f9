// Package events provides helper functions for logging token events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/brandkit/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogProfileCreated records the creation of a profile.
func LogProfileCreated(ctx context.Context, repo Repository, profileID, name string) error {
	return logProfileEvent(ctx, repo, models.EventTypeProfileCreated, profileID, map[string]string{"name": name})
}

// LogTokensSaved records a confirmed write of a token tree.
func LogTokensSaved(ctx context.Context, repo Repository, profileID string, payload models.TokensSavedPayload) error {
	return logProfileEvent(ctx, repo, models.EventTypeTokensSaved, profileID, payload)
}

// LogTokensMigrated records that a tree was bootstrapped for a profile.
func LogTokensMigrated(ctx context.Context, repo Repository, profileID, name string, fromLegacy bool) error {
	return logProfileEvent(ctx, repo, models.EventTypeTokensMigrated, profileID, models.TokensMigratedPayload{
		ProfileName: name,
		FromLegacy:  fromLegacy,
	})
}

// LogTokensRejected records a write refused by validation.
func LogTokensRejected(ctx context.Context, repo Repository, profileID, name string, issues []string) error {
	return logProfileEvent(ctx, repo, models.EventTypeTokensRejected, profileID, models.TokensRejectedPayload{
		ProfileName: name,
		Issues:      issues,
	})
}

// LogTokensReset records a reset of a profile to the default tree.
func LogTokensReset(ctx context.Context, repo Repository, profileID string) error {
	return logProfileEvent(ctx, repo, models.EventTypeTokensReset, profileID, nil)
}

func logProfileEvent(ctx context.Context, repo Repository, eventType models.EventType, profileID string, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if profileID == "" {
		return fmt.Errorf("profile id is required")
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeProfile,
		EntityID:   profileID,
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
		}
		event.Payload = data
	}

	return repo.Create(ctx, event)
}
