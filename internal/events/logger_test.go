package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/opencode-ai/brandkit/internal/models"
)

type fakeRepo struct {
	last *models.Event
	err  error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return r.err
}

func TestLogTokensSaved(t *testing.T) {
	repo := &fakeRepo{}

	payload := models.TokensSavedPayload{ProfileName: "acme", Version: 1, Bytes: 2048}
	if err := LogTokensSaved(context.Background(), repo, "profile-1", payload); err != nil {
		t.Fatalf("LogTokensSaved failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeTokensSaved {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityType != models.EntityTypeProfile {
		t.Fatalf("unexpected entity type: %q", repo.last.EntityType)
	}
	if repo.last.EntityID != "profile-1" {
		t.Fatalf("unexpected entity id: %q", repo.last.EntityID)
	}

	var got models.TokensSavedPayload
	if err := json.Unmarshal(repo.last.Payload, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got != payload {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestLogTokensRejected(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogTokensRejected(context.Background(), repo, "profile-1", "acme", []string{"version: must equal 1"}); err != nil {
		t.Fatalf("LogTokensRejected failed: %v", err)
	}
	var got models.TokensRejectedPayload
	if err := json.Unmarshal(repo.last.Payload, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(got.Issues) != 1 || got.ProfileName != "acme" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestLogTokensResetHasNoPayload(t *testing.T) {
	repo := &fakeRepo{}
	if err := LogTokensReset(context.Background(), repo, "profile-1"); err != nil {
		t.Fatalf("LogTokensReset failed: %v", err)
	}
	if repo.last.Payload != nil {
		t.Fatalf("expected empty payload, got %s", repo.last.Payload)
	}
}

func TestLogRequiresRepoAndProfile(t *testing.T) {
	if err := LogTokensReset(context.Background(), nil, "profile-1"); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogProfileCreated(context.Background(), &fakeRepo{}, "", "acme"); err == nil {
		t.Fatal("expected error for empty profile id")
	}
}

func TestLogPropagatesRepositoryError(t *testing.T) {
	boom := errors.New("disk full")
	err := LogTokensMigrated(context.Background(), &fakeRepo{err: boom}, "profile-1", "acme", true)
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
