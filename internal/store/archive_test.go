package store

import (
	"context"
	"testing"
	"time"

	"github.com/gavdaly/kantui/internal/board"
)

func TestNewEntry(t *testing.T) {
	card, _ := board.NewCard().
		Text("ship ").
		Status(board.Complete).
		Date(board.Date{Year: 2024, Month: 3, Day: 7, Raw: "2024-03-07"}).
		Build()

	entry := NewEntry("Done", card)
	if entry.ID == "" {
		t.Error("entry should get an ID")
	}
	if entry.Column != "Done" {
		t.Errorf("column = %q, want Done", entry.Column)
	}
	if entry.Status != board.Complete {
		t.Errorf("status = %v, want Complete", entry.Status)
	}
	if entry.Date != "2024-03-07" {
		t.Errorf("date = %q", entry.Date)
	}
	if entry.Time != "" {
		t.Errorf("time = %q, want empty", entry.Time)
	}
	if entry.ArchivedAt.IsZero() {
		t.Error("archived time not set")
	}

	other := NewEntry("Done", card)
	if other.ID == entry.ID {
		t.Error("IDs should be unique")
	}
}

func TestMemoryArchive_PutList(t *testing.T) {
	archive := NewMemoryArchive()
	ctx := context.Background()

	first := &Entry{ID: "a", Column: "Done", Text: "one", ArchivedAt: time.Now().Add(-time.Hour)}
	second := &Entry{ID: "b", Column: "Done", Text: "two", ArchivedAt: time.Now()}
	third := &Entry{ID: "c", Column: "Later", Text: "three", ArchivedAt: time.Now().Add(-time.Minute)}

	for _, e := range []*Entry{first, second, third} {
		if err := archive.Put(ctx, e); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
	}

	all, err := archive.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("entries = %d, want 3", len(all))
	}
	if all[0].ID != "b" || all[2].ID != "a" {
		t.Errorf("not newest first: %v, %v, %v", all[0].ID, all[1].ID, all[2].ID)
	}

	done, err := archive.List(ctx, Filter{Column: "Done"})
	if err != nil {
		t.Fatalf("List(Done) error = %v", err)
	}
	if len(done) != 2 {
		t.Errorf("Done entries = %d, want 2", len(done))
	}

	limited, err := archive.List(ctx, Filter{Limit: 1})
	if err != nil {
		t.Fatalf("List(limit) error = %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "b" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestMemoryArchive_PutRequiresID(t *testing.T) {
	archive := NewMemoryArchive()
	if err := archive.Put(context.Background(), &Entry{Text: "no id"}); err == nil {
		t.Error("Put() should fail without an ID")
	}
}

func TestMemoryArchive_PutBatch(t *testing.T) {
	archive := NewMemoryArchive()
	ctx := context.Background()

	entries := []*Entry{
		{ID: "a", Text: "one"},
		{ID: "b", Text: "two"},
	}
	n, err := archive.PutBatch(ctx, entries)
	if err != nil {
		t.Fatalf("PutBatch() error = %v", err)
	}
	if n != 2 {
		t.Errorf("stored = %d, want 2", n)
	}

	n, err = archive.PutBatch(ctx, []*Entry{{ID: "c"}, {}})
	if err == nil {
		t.Error("PutBatch() should fail on a missing ID")
	}
	if n != 1 {
		t.Errorf("stored = %d before failure, want 1", n)
	}
}

func TestMemoryArchive_Delete(t *testing.T) {
	archive := NewMemoryArchive()
	ctx := context.Background()

	archive.Put(ctx, &Entry{ID: "a", Text: "one"})
	if err := archive.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := archive.Delete(ctx, "a"); err == nil {
		t.Error("Delete() should fail when already deleted")
	}
}

func TestMemoryArchive_ListIsolation(t *testing.T) {
	archive := NewMemoryArchive()
	ctx := context.Background()

	archive.Put(ctx, &Entry{ID: "a", Text: "original"})
	out, _ := archive.List(ctx, Filter{})
	out[0].Text = "mutated"

	again, _ := archive.List(ctx, Filter{})
	if again[0].Text != "original" {
		t.Error("List() should return copies, not shared entries")
	}
}
