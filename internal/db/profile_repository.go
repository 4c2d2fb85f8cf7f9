package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/brandkit/internal/events"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// Profile repository errors.
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrInvalidTokens wraps the schema issues of a refused tree.
	ErrInvalidTokens = errors.New("invalid token tree")
)

// ProfileRepository persists profiles. It is the only writer of token
// trees, and validates every tree before it reaches storage.
type ProfileRepository struct {
	db     *DB
	events *EventRepository
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db, events: NewEventRepository(db)}
}

// Events returns the repository profile events are written to.
func (r *ProfileRepository) Events() *EventRepository {
	return r.events
}

// ContentHash returns the hex SHA-256 of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Create inserts a new profile. A tree, when present, must pass validation.
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	var tokensJSON *string
	if p.Tokens != nil {
		data, err := encodeTokens(p.Tokens)
		if err != nil {
			return err
		}
		s := string(data)
		tokensJSON = &s
		p.ContentHash = ContentHash(data)
	}

	var legacyJSON *string
	if p.Legacy != nil {
		data, err := json.Marshal(p.Legacy)
		if err != nil {
			return fmt.Errorf("failed to marshal legacy profile: %w", err)
		}
		s := string(data)
		legacyJSON = &s
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (
				id, name, legacy_json, tokens_json, content_hash, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			p.ID,
			p.Name,
			legacyJSON,
			tokensJSON,
			nullable(p.ContentHash),
			p.CreatedAt.Format(timestampLayout),
			p.UpdatedAt.Format(timestampLayout),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrProfileAlreadyExists
			}
			return fmt.Errorf("failed to insert profile: %w", err)
		}
		return events.LogProfileCreated(ctx, txRepository{repo: r.events, tx: tx}, p.ID, p.Name)
	})
}

// Get retrieves a profile by ID.
func (r *ProfileRepository) Get(ctx context.Context, id string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, legacy_json, tokens_json, content_hash, created_at, updated_at
		FROM profiles WHERE id = ?
	`, id)
	return r.scanProfile(row)
}

// GetByName retrieves a profile by its unique name.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, legacy_json, tokens_json, content_hash, created_at, updated_at
		FROM profiles WHERE name = ?
	`, name)
	return r.scanProfile(row)
}

// Resolve retrieves a profile by ID, falling back to name.
func (r *ProfileRepository) Resolve(ctx context.Context, idOrName string) (*models.Profile, error) {
	p, err := r.Get(ctx, idOrName)
	if errors.Is(err, ErrProfileNotFound) {
		return r.GetByName(ctx, idOrName)
	}
	return p, err
}

// List returns every profile ordered by name.
func (r *ProfileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, legacy_json, tokens_json, content_hash, created_at, updated_at
		FROM profiles ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

// SaveTokens validates tree and writes it to the profile. A refused tree is
// recorded as a tokens.rejected event and returned as ErrInvalidTokens
// wrapping the schema issues. The caller marks its store saved only after
// a nil error.
func (r *ProfileRepository) SaveTokens(ctx context.Context, id string, tree *tokens.Tree) (*models.Profile, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := encodeTokens(tree)
	if err != nil {
		var issues schema.Issues
		if errors.As(err, &issues) {
			r.logRejected(ctx, p, issues)
		}
		return nil, err
	}

	hash := ContentHash(data)
	if hash == p.ContentHash {
		r.db.logger.Debug().Str("profile_id", p.ID).Msg("tokens unchanged, skipping write")
		return p, nil
	}

	now := time.Now().UTC()
	err = r.db.Transaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE profiles SET tokens_json = ?, content_hash = ?, updated_at = ?
			WHERE id = ?
		`, string(data), hash, now.Format(timestampLayout), p.ID)
		if err != nil {
			return fmt.Errorf("failed to update tokens: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return ErrProfileNotFound
		}
		return events.LogTokensSaved(ctx, txRepository{repo: r.events, tx: tx}, p.ID, models.TokensSavedPayload{
			ProfileName: p.Name,
			Version:     tree.Version,
			Bytes:       len(data),
		})
	})
	if err != nil {
		return nil, err
	}

	p.Tokens = tree.Clone()
	p.ContentHash = hash
	p.UpdatedAt = now
	r.db.logger.Debug().Str("profile_id", p.ID).Str("hash", hash[:12]).Msg("tokens saved")
	return p, nil
}

// Delete removes a profile. Its events are kept.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return ErrProfileNotFound
		}
		return r.events.CreateWithTx(ctx, tx, &models.Event{
			Type:       models.EventTypeProfileDeleted,
			EntityType: models.EntityTypeProfile,
			EntityID:   id,
		})
	})
}

func (r *ProfileRepository) logRejected(ctx context.Context, p *models.Profile, issues schema.Issues) {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.String())
	}
	if err := events.LogTokensRejected(ctx, r.events, p.ID, p.Name, messages); err != nil {
		r.db.logger.Warn().Err(err).Str("profile_id", p.ID).Msg("failed to record rejected tokens")
	}
}

// encodeTokens serializes a tree and validates the exact bytes that will be
// stored.
func encodeTokens(tree *tokens.Tree) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is required", ErrInvalidTokens)
	}
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}
	_, issues, err := schema.ValidateJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to validate tokens: %w", err)
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTokens, issues)
	}
	return data, nil
}

func (r *ProfileRepository) scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var legacyJSON, tokensJSON, contentHash sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &legacyJSON, &tokensJSON, &contentHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if legacyJSON.Valid {
		var legacy models.LegacyProfile
		if err := json.Unmarshal([]byte(legacyJSON.String), &legacy); err != nil {
			r.db.logger.Warn().Err(err).Str("profile_id", p.ID).Msg("failed to parse legacy profile")
		} else {
			p.Legacy = &legacy
		}
	}
	if tokensJSON.Valid {
		// Stored trees are re-validated on read; a corrupt row falls back to
		// migration instead of loading a malformed tree.
		tree, issues, err := schema.ValidateJSON([]byte(tokensJSON.String))
		switch {
		case err != nil:
			r.db.logger.Warn().Err(err).Str("profile_id", p.ID).Msg("failed to parse stored tokens")
		case len(issues) > 0:
			r.db.logger.Warn().Str("profile_id", p.ID).Int("issues", len(issues)).Msg("stored tokens failed validation")
		default:
			p.Tokens = tree
		}
	}
	p.ContentHash = contentHash.String

	if t, err := time.Parse(timestampLayout, createdAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(timestampLayout, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
