// Package store holds the canonical token tree for one editing session.
package store

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/brandkit/internal/logging"
	"github.com/opencode-ai/brandkit/internal/migrate"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// Mutation transforms the current tree into the next one. Apply must not
// modify current.
type Mutation interface {
	Name() string
	Apply(current *tokens.Tree) *tokens.Tree
}

// Update deep-merges a patch into the tree.
type Update struct {
	Patch tokens.Patch
}

func (Update) Name() string { return "update" }

func (m Update) Apply(current *tokens.Tree) *tokens.Tree {
	return tokens.Merge(current, m.Patch)
}

// Replace swaps in a whole tree. A nil tree yields nil, which Apply ignores.
type Replace struct {
	Tree *tokens.Tree
}

func (Replace) Name() string { return "replace" }

func (m Replace) Apply(current *tokens.Tree) *tokens.Tree {
	return m.Tree.Clone()
}

// Reset replaces the tree with the defaults.
type Reset struct{}

func (Reset) Name() string { return "reset" }

func (Reset) Apply(current *tokens.Tree) *tokens.Tree {
	return tokens.Default()
}

// State is a read-only snapshot handed to observers.
type State struct {
	Tokens      *tokens.Tree
	ProfileID   string
	ProfileName string
	IsDirty     bool
	IsSaving    bool
	CanUndo     bool
	CanRedo     bool
}

// Observer is called synchronously after every change.
type Observer func(State)

// Option configures a Store.
type Option func(*Store)

// WithHistoryDepth bounds the undo history.
func WithHistoryDepth(depth int) Option {
	return func(s *Store) {
		s.past = newSnapshotStack(depth)
		s.future = newSnapshotStack(depth)
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store owns the token tree of one session. It has a single logical writer
// and is not safe for concurrent use.
type Store struct {
	tokens      *tokens.Tree
	profileID   string
	profileName string
	dirty       bool
	saving      bool

	past   *snapshotStack
	future *snapshotStack

	observers map[int]Observer
	nextID    int
	logger    zerolog.Logger
}

// New returns a store seeded with the default tree.
func New(opts ...Option) *Store {
	s := &Store{
		tokens:    tokens.Default(),
		past:      newSnapshotStack(DefaultHistoryDepth),
		future:    newSnapshotStack(DefaultHistoryDepth),
		observers: make(map[int]Observer),
		logger:    logging.Component("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tokens returns a copy of the current tree. Reads never touch history.
func (s *Store) Tokens() *tokens.Tree {
	return s.tokens.Clone()
}

// State returns a snapshot of the store.
func (s *Store) State() State {
	return State{
		Tokens:      s.tokens.Clone(),
		ProfileID:   s.profileID,
		ProfileName: s.profileName,
		IsDirty:     s.dirty,
		IsSaving:    s.saving,
		CanUndo:     s.past.Len() > 0,
		CanRedo:     s.future.Len() > 0,
	}
}

func (s *Store) IsDirty() bool  { return s.dirty }
func (s *Store) IsSaving() bool { return s.saving }
func (s *Store) CanUndo() bool  { return s.past.Len() > 0 }
func (s *Store) CanRedo() bool  { return s.future.Len() > 0 }

// HistoryLen returns the number of undo steps available.
func (s *Store) HistoryLen() int { return s.past.Len() }

// Profile returns the bound profile id and name.
func (s *Store) Profile() (id, name string) {
	return s.profileID, s.profileName
}

// Apply runs a mutation and marks the store dirty. A history entry is
// recorded only when the resulting tree differs structurally from the
// current one. It reports whether the tree changed. A mutation that yields
// no tree leaves the store untouched.
func (s *Store) Apply(m Mutation) bool {
	next := m.Apply(s.tokens)
	if next == nil {
		s.logger.Warn().Str("op", m.Name()).Msg("mutation produced no tree, ignored")
		return false
	}
	changed := !tokens.Equal(s.tokens, next)
	if changed {
		s.past.Push(s.tokens)
		s.future.Clear()
		s.tokens = next
	}
	s.dirty = true

	s.logger.Debug().
		Str("op", m.Name()).
		Bool("changed", changed).
		Int("history", s.past.Len()).
		Msg("applied mutation")
	s.notify()
	return changed
}

// UpdateTokens deep-merges a partial tree. It never validates.
func (s *Store) UpdateTokens(patch tokens.Patch) bool {
	return s.Apply(Update{Patch: patch})
}

// UpdateFromJSON decodes an untrusted fragment, such as AI output, and merges
// whatever part of it fits the tree. Dropped fields are logged and returned.
func (s *Store) UpdateFromJSON(data []byte) (schema.Issues, error) {
	patch, issues, err := schema.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token patch: %w", err)
	}
	for _, issue := range issues {
		s.logger.Warn().Str("path", issue.Path).Str("reason", issue.Message).Msg("dropped patch field")
	}
	s.UpdateTokens(patch)
	return issues, nil
}

// SetTokens replaces the whole tree.
func (s *Store) SetTokens(tree *tokens.Tree) bool {
	return s.Apply(Replace{Tree: tree})
}

// ResetToDefaults replaces the tree with the defaults.
func (s *Store) ResetToDefaults() bool {
	return s.Apply(Reset{})
}

// LoadFromProfile binds the store to a profile. A persisted tree is adopted
// verbatim; otherwise the legacy fields are migrated. Either way the store
// ends clean with an empty history.
func (s *Store) LoadFromProfile(p *models.Profile) {
	if p == nil {
		p = &models.Profile{}
	}

	source := "persisted"
	tree := p.Tokens.Clone()
	if tree == nil {
		source = "migrated"
		tree = migrate.FromLegacy(p.Legacy)
	}

	s.tokens = tree
	s.profileID = p.ID
	s.profileName = p.Name
	s.dirty = false
	s.saving = false
	s.past.Clear()
	s.future.Clear()

	s.logger.Debug().Str("profile_id", p.ID).Str("source", source).Msg("loaded profile")
	s.notify()
}

// SetSaving flags an in-flight persistence write.
func (s *Store) SetSaving(saving bool) {
	if s.saving == saving {
		return
	}
	s.saving = saving
	s.notify()
}

// MarkSaved clears the dirty and saving flags. Only the persistence layer
// calls it, after a confirmed write.
func (s *Store) MarkSaved() {
	s.dirty = false
	s.saving = false
	s.notify()
}

// Undo restores the previous tree.
func (s *Store) Undo() bool {
	prev, ok := s.past.Pop()
	if !ok {
		return false
	}
	s.future.Push(s.tokens)
	s.tokens = prev
	s.dirty = true
	s.notify()
	return true
}

// Redo re-applies the most recently undone tree.
func (s *Store) Redo() bool {
	next, ok := s.future.Pop()
	if !ok {
		return false
	}
	s.past.Push(s.tokens)
	s.tokens = next
	s.dirty = true
	s.notify()
	return true
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) func() {
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	state := s.State()
	for _, fn := range s.observers {
		fn(state)
	}
}
