// Package store persists completed cards that have been archived off
// the board. The canonical implementation is SQLite-backed; a memory
// implementation exists for tests and ephemeral use.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gavdaly/kantui/internal/board"
)

// Entry is one archived card. Date and Time hold the raw annotation
// spans, empty when the card had none.
type Entry struct {
	ID         string
	Column     string
	Status     board.Status
	Text       string
	Date       string
	Time       string
	ArchivedAt time.Time
}

// NewEntry builds an archive entry for a card taken from the named
// column.
func NewEntry(column string, card *board.Card) *Entry {
	e := &Entry{
		ID:         uuid.NewString(),
		Column:     column,
		Status:     card.Status,
		Text:       card.Text,
		ArchivedAt: time.Now().UTC(),
	}
	if card.Date != nil {
		e.Date = card.Date.String()
	}
	if card.Time != nil {
		e.Time = card.Time.String()
	}
	return e
}

// Filter narrows a List call. Zero values mean "no restriction".
type Filter struct {
	Column string
	Limit  int
}

// Archive is the persistence interface for archived cards.
type Archive interface {
	// Put stores one entry.
	Put(ctx context.Context, entry *Entry) error

	// PutBatch stores many entries, returning how many were written.
	PutBatch(ctx context.Context, entries []*Entry) (int, error)

	// List returns entries newest first.
	List(ctx context.Context, filter Filter) ([]*Entry, error)

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	// Close releases underlying resources.
	Close() error
}

var (
	_ Archive = (*MemoryArchive)(nil)
	_ Archive = (*SQLiteArchive)(nil)
)

// MemoryArchive keeps entries in memory. It is safe for concurrent
// use.
type MemoryArchive struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryArchive creates an empty in-memory archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{entries: make(map[string]*Entry)}
}

func (m *MemoryArchive) Put(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry ID is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *entry
	m.entries[entry.ID] = &clone
	return nil
}

func (m *MemoryArchive) PutBatch(ctx context.Context, entries []*Entry) (int, error) {
	stored := 0
	for _, e := range entries {
		if err := m.Put(ctx, e); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (m *MemoryArchive) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Entry
	for _, e := range m.entries {
		if filter.Column != "" && e.Column != filter.Column {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ArchivedAt.After(out[j].ArchivedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *MemoryArchive) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("entry %s not found", id)
	}
	delete(m.entries, id)
	return nil
}

func (m *MemoryArchive) Close() error {
	return nil
}
