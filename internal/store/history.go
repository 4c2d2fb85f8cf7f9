package store

import "github.com/opencode-ai/brandkit/internal/tokens"

// DefaultHistoryDepth is the number of undo steps kept.
const DefaultHistoryDepth = 50

// snapshotStack is a bounded LIFO of immutable tree snapshots. Pushing past
// the bound evicts the oldest snapshot.
type snapshotStack struct {
	size  int
	items []*tokens.Tree
}

func newSnapshotStack(size int) *snapshotStack {
	if size <= 0 {
		size = 1
	}
	return &snapshotStack{size: size}
}

// Push stores a snapshot. The caller hands over ownership of tree.
func (s *snapshotStack) Push(tree *tokens.Tree) {
	if s == nil || tree == nil {
		return
	}
	if len(s.items) == s.size {
		copy(s.items, s.items[1:])
		s.items = s.items[:s.size-1]
	}
	s.items = append(s.items, tree)
}

// Pop removes and returns the newest snapshot.
func (s *snapshotStack) Pop() (*tokens.Tree, bool) {
	if s == nil || len(s.items) == 0 {
		return nil, false
	}
	last := len(s.items) - 1
	tree := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	return tree, true
}

// Len returns the number of stored snapshots.
func (s *snapshotStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Clear drops every snapshot.
func (s *snapshotStack) Clear() {
	if s == nil {
		return
	}
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}
