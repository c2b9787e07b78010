package board

import (
	"strings"
	"testing"
)

func TestBoard_AddColumn(t *testing.T) {
	b := New()
	b.AddColumn("Todo")
	b.AddColumn("Done")

	if len(b.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(b.Columns))
	}
	if b.Columns[0].Heading != "Todo" || b.Columns[1].Heading != "Done" {
		t.Errorf("headings = %q, %q", b.Columns[0].Heading, b.Columns[1].Heading)
	}
}

func TestBoard_Column(t *testing.T) {
	b := New("Todo", "Done")

	col, err := b.Column("Done")
	if err != nil {
		t.Fatalf("Column() error = %v", err)
	}
	if col.Heading != "Done" {
		t.Errorf("heading = %q, want Done", col.Heading)
	}

	if _, err := b.Column("Missing"); err == nil {
		t.Error("Column() should fail for a missing heading")
	}
}

func TestBoard_AddCard(t *testing.T) {
	b := New("Todo")
	card, _ := NewCard().Text("task").Build()

	if err := b.AddCard("Todo", card); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if err := b.AddCard("Missing", card); err == nil {
		t.Error("AddCard() should fail for a missing column")
	}
	if b.CountCards() != 1 {
		t.Errorf("CountCards() = %d, want 1", b.CountCards())
	}
}

func TestBoard_MoveCard(t *testing.T) {
	b := New("Todo", "Done")
	card, _ := NewCard().Text("task").Build()
	b.AddCard("Todo", card)

	if err := b.MoveCard("Todo", 0, "Done"); err != nil {
		t.Fatalf("MoveCard() error = %v", err)
	}
	if len(b.Columns[0].Cards) != 0 {
		t.Errorf("source still has %d cards", len(b.Columns[0].Cards))
	}
	if len(b.Columns[1].Cards) != 1 || b.Columns[1].Cards[0].Text != "task" {
		t.Errorf("destination cards = %+v", b.Columns[1].Cards)
	}

	if err := b.MoveCard("Done", 5, "Todo"); err == nil {
		t.Error("MoveCard() should fail for an out of range index")
	}
	if err := b.MoveCard("Done", 0, "Missing"); err == nil {
		t.Error("MoveCard() should fail for a missing destination")
	}
	// A failed move must not lose the card.
	if len(b.Columns[1].Cards) != 1 {
		t.Errorf("card lost after failed move: %+v", b.Columns[1].Cards)
	}
}

func TestBoard_RenameColumn(t *testing.T) {
	b := New("Todo")

	if err := b.RenameColumn("Todo", "Backlog"); err != nil {
		t.Fatalf("RenameColumn() error = %v", err)
	}
	if b.Columns[0].Heading != "Backlog" {
		t.Errorf("heading = %q, want Backlog", b.Columns[0].Heading)
	}
	if err := b.RenameColumn("Todo", "X"); err == nil {
		t.Error("RenameColumn() should fail for the old heading")
	}
}

func TestBoard_RemoveColumn(t *testing.T) {
	b := New("Todo", "Done")

	if err := b.RemoveColumn("Todo"); err != nil {
		t.Fatalf("RemoveColumn() error = %v", err)
	}
	if len(b.Columns) != 1 || b.Columns[0].Heading != "Done" {
		t.Errorf("columns = %+v", b.Columns)
	}
	if err := b.RemoveColumn("Todo"); err == nil {
		t.Error("RemoveColumn() should fail when already removed")
	}
}

func TestColumn_RemoveCard(t *testing.T) {
	col := &Column{Heading: "Todo"}
	one, _ := NewCard().Text("one").Build()
	two, _ := NewCard().Text("two").Build()
	col.Cards = []*Card{one, two}

	card, err := col.RemoveCard(0)
	if err != nil {
		t.Fatalf("RemoveCard() error = %v", err)
	}
	if card.Text != "one" {
		t.Errorf("removed %q, want one", card.Text)
	}
	if len(col.Cards) != 1 || col.Cards[0].Text != "two" {
		t.Errorf("remaining cards = %+v", col.Cards)
	}
	if _, err := col.RemoveCard(1); err == nil {
		t.Error("RemoveCard() should fail out of range")
	}
}

func TestBoard_Encode(t *testing.T) {
	b := New("Todo", "Done")
	task, _ := NewCard().Text("write tests").Build()
	shipped, _ := NewCard().
		Text("ship ").
		Status(Complete).
		Date(Date{Year: 2024, Month: 3, Day: 7, Raw: "2024-03-07"}).
		Time(Time{Hour: 14, Minute: 30, Raw: "14:30"}).
		Build()
	b.AddCard("Todo", task)
	b.AddCard("Done", shipped)

	want := strings.Join([]string{
		"## Todo",
		"- [ ] write tests",
		"",
		"## Done",
		"- [x] ship @{2024-03-07}@@{14:30}",
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}
