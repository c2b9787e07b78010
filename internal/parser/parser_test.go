package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gavdaly/kantui/internal/board"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, b *board.Board)
	}{
		{
			name:  "single column single card",
			input: "## Todo\n- [ ] Buy milk\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns) != 1 {
					t.Fatalf("columns = %d, want 1", len(b.Columns))
				}
				col := b.Columns[0]
				if col.Heading != "Todo" {
					t.Errorf("heading = %q, want Todo", col.Heading)
				}
				if len(col.Cards) != 1 {
					t.Fatalf("cards = %d, want 1", len(col.Cards))
				}
				card := col.Cards[0]
				if card.Status != board.Incomplete {
					t.Errorf("status = %v, want Incomplete", card.Status)
				}
				if card.Text != "Buy milk" {
					t.Errorf("text = %q, want \"Buy milk\"", card.Text)
				}
			},
		},
		{
			name:  "columns and cards keep source order",
			input: "## Todo\n- [ ] one\n- [ ] two\n\n## Doing\n- [x] three\n\n## Done\n",
			check: func(t *testing.T, b *board.Board) {
				headings := []string{}
				for _, col := range b.Columns {
					headings = append(headings, col.Heading)
				}
				if !reflect.DeepEqual(headings, []string{"Todo", "Doing", "Done"}) {
					t.Errorf("headings = %v", headings)
				}
				if b.Columns[0].Cards[0].Text != "one" || b.Columns[0].Cards[1].Text != "two" {
					t.Errorf("card order not preserved: %+v", b.Columns[0].Cards)
				}
				if len(b.Columns[2].Cards) != 0 {
					t.Errorf("Done should be empty, got %d cards", len(b.Columns[2].Cards))
				}
			},
		},
		{
			name:  "complete status",
			input: "## Todo\n- [x] Done\n",
			check: func(t *testing.T, b *board.Board) {
				if b.Columns[0].Cards[0].Status != board.Complete {
					t.Errorf("status = %v, want Complete", b.Columns[0].Cards[0].Status)
				}
			},
		},
		{
			name:  "date and time annotations",
			input: "## Todo\n- [x] Ship it @{2024-03-07} @@{14:30}\n",
			check: func(t *testing.T, b *board.Board) {
				card := b.Columns[0].Cards[0]
				if card.Text != "Ship it " {
					t.Errorf("text = %q, want \"Ship it \" with trailing space", card.Text)
				}
				if card.Date == nil {
					t.Fatal("date missing")
				}
				if card.Date.Year != 2024 || card.Date.Month != 3 || card.Date.Day != 7 {
					t.Errorf("date = %+v, want 2024-3-7", card.Date)
				}
				if card.Date.Raw != "2024-03-07" {
					t.Errorf("date raw = %q, want 2024-03-07", card.Date.Raw)
				}
				if card.Time == nil {
					t.Fatal("time missing")
				}
				if card.Time.Hour != 14 || card.Time.Minute != 30 {
					t.Errorf("time = %+v, want 14:30", card.Time)
				}
				if card.Time.Raw != "14:30" {
					t.Errorf("time raw = %q, want 14:30", card.Time.Raw)
				}
			},
		},
		{
			name:  "date only",
			input: "## Todo\n- [ ] Dentist@{2024-1-2}\n",
			check: func(t *testing.T, b *board.Board) {
				card := b.Columns[0].Cards[0]
				if card.Text != "Dentist" {
					t.Errorf("text = %q, want Dentist", card.Text)
				}
				if card.Date == nil || card.Date.Raw != "2024-1-2" {
					t.Errorf("date = %+v, want raw 2024-1-2", card.Date)
				}
				if card.Time != nil {
					t.Errorf("time = %+v, want nil", card.Time)
				}
			},
		},
		{
			name:  "time only",
			input: "## Todo\n- [ ] Standup @@{09:15}\n",
			check: func(t *testing.T, b *board.Board) {
				card := b.Columns[0].Cards[0]
				if card.Text != "Standup " {
					t.Errorf("text = %q, want \"Standup \"", card.Text)
				}
				if card.Date != nil {
					t.Errorf("date = %+v, want nil", card.Date)
				}
				if card.Time == nil || card.Time.Raw != "09:15" {
					t.Errorf("time = %+v, want raw 09:15", card.Time)
				}
			},
		},
		{
			name:  "out of range numerics are accepted",
			input: "## Todo\n- [ ] Weird@{2024-13-40}@@{99:99}\n",
			check: func(t *testing.T, b *board.Board) {
				card := b.Columns[0].Cards[0]
				if card.Date == nil || card.Date.Month != 13 || card.Date.Day != 40 {
					t.Errorf("date = %+v, want month 13 day 40", card.Date)
				}
				if card.Time == nil || card.Time.Hour != 99 {
					t.Errorf("time = %+v, want hour 99", card.Time)
				}
			},
		},
		{
			name:  "heading without cards",
			input: "## Backlog\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns) != 1 || b.Columns[0].Heading != "Backlog" {
					t.Errorf("board = %+v", b)
				}
				if len(b.Columns[0].Cards) != 0 {
					t.Errorf("cards = %d, want 0", len(b.Columns[0].Cards))
				}
			},
		},
		{
			name:  "consecutive headings",
			input: "## A\n## B\n## C\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns) != 3 {
					t.Errorf("columns = %d, want 3", len(b.Columns))
				}
			},
		},
		{
			name:  "blank lines between heading and cards",
			input: "## Todo\n\n\n- [ ] task\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns[0].Cards) != 1 {
					t.Errorf("cards = %d, want 1", len(b.Columns[0].Cards))
				}
			},
		},
		{
			name:  "blank lines between cards",
			input: "## Todo\n- [ ] one\n\n- [ ] two\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns[0].Cards) != 2 {
					t.Errorf("cards = %d, want 2", len(b.Columns[0].Cards))
				}
			},
		},
		{
			name:  "missing final newline",
			input: "## Todo\n- [x] last",
			check: func(t *testing.T, b *board.Board) {
				if b.Columns[0].Cards[0].Text != "last" {
					t.Errorf("text = %q, want last", b.Columns[0].Cards[0].Text)
				}
			},
		},
		{
			name:  "windows line endings",
			input: "## Todo\r\n- [ ] task\r\n\r\n## Done\r\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns) != 2 {
					t.Fatalf("columns = %d, want 2", len(b.Columns))
				}
				if b.Columns[0].Cards[0].Text != "task" {
					t.Errorf("text = %q, want task", b.Columns[0].Cards[0].Text)
				}
			},
		},
		{
			name:  "bare carriage return newline",
			input: "## Todo\r- [ ] task\r",
			check: func(t *testing.T, b *board.Board) {
				if b.Columns[0].Cards[0].Text != "task" {
					t.Errorf("text = %q, want task", b.Columns[0].Cards[0].Text)
				}
			},
		},
		{
			name:  "leading whitespace before first column",
			input: "\n\n  ## Todo\n- [ ] task\n",
			check: func(t *testing.T, b *board.Board) {
				if len(b.Columns) != 1 {
					t.Errorf("columns = %d, want 1", len(b.Columns))
				}
			},
		},
		{
			name:  "at sign without brace stays in text",
			input: "## Todo\n- [ ] mail me@example.com\n",
			check: func(t *testing.T, b *board.Board) {
				if b.Columns[0].Cards[0].Text != "mail me@example.com" {
					t.Errorf("text = %q", b.Columns[0].Cards[0].Text)
				}
			},
		},
		{
			name:  "multiple spaces after brackets are not part of text",
			input: "## Todo\n- [ ]   indented\n",
			check: func(t *testing.T, b *board.Board) {
				if b.Columns[0].Cards[0].Text != "indented" {
					t.Errorf("text = %q, want indented", b.Columns[0].Cards[0].Text)
				}
			},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no column heading",
			input:   "just some text\n",
			wantErr: true,
		},
		{
			name:    "card before any heading",
			input:   "- [ ] orphan\n## Todo\n",
			wantErr: true,
		},
		{
			name:    "single hash is not a heading",
			input:   "# Todo\n- [ ] task\n",
			wantErr: true,
		},
		{
			name:    "heading without newline at end of input",
			input:   "## Todo",
			wantErr: true,
		},
		{
			name:    "heading without space",
			input:   "##Todo\n",
			wantErr: true,
		},
		{
			name:    "bad status character",
			input:   "## Todo\n- [y] Bad\n",
			wantErr: true,
		},
		{
			name:    "double status character",
			input:   "## Todo\n- [xx] Bad\n",
			wantErr: true,
		},
		{
			name:    "empty card text",
			input:   "## Todo\n- [ ] \n",
			wantErr: true,
		},
		{
			name:    "time before date",
			input:   "## Todo\n- [x] Ship it @@{14:30} @{2024-03-07}\n",
			wantErr: true,
		},
		{
			name:    "trailing garbage after last column",
			input:   "## Done\n- [x] task\nleftover\n",
			wantErr: true,
		},
		{
			name:    "date with missing day segment",
			input:   "## Todo\n- [ ] Do it @{2024-13}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("error type = %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if tt.check != nil {
				tt.check(t, b)
			}
		})
	}
}

// A malformed date annotation must not be half-consumed: text stops
// right before the "@{", the wrapper fails as a whole, and the parse
// error reports the deepest point the date rule reached.
func TestParse_MalformedDateBoundary(t *testing.T) {
	input := "## Todo\n- [ ] Do it @{2024-13}\n"

	_, err := Parse(input)
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}

	// The date rule consumed "2024-13" and then wanted the second "-";
	// that is the deepest failure in the whole descent.
	wantOffset := strings.Index(input, "13}") + 2
	if perr.Offset != wantOffset {
		t.Errorf("offset = %d, want %d", perr.Offset, wantOffset)
	}
	found := false
	for _, e := range perr.Expected {
		if e == `"-"` {
			found = true
		}
	}
	if !found {
		t.Errorf("expected set = %v, want it to contain %q", perr.Expected, `"-"`)
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	input := "## Todo\n- [y] Bad\n"

	_, err := Parse(input)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("line = %d, want 2", perr.Line)
	}
	// The deepest failure is the status character itself.
	if perr.Offset != strings.Index(input, "y]") {
		t.Errorf("offset = %d, want %d", perr.Offset, strings.Index(input, "y]"))
	}
	found := false
	for _, e := range perr.Expected {
		if e == `"x" or " "` {
			found = true
		}
	}
	if !found {
		t.Errorf("expected set = %v, want status alternatives", perr.Expected)
	}
	if !strings.Contains(perr.Error(), "line 2") {
		t.Errorf("message %q should name the line", perr.Error())
	}
}

// Parsing the encoded form of a parsed board yields a structurally
// equal board. Text keeps its exact whitespace, so the fixpoint holds
// even for cards with trailing spaces before annotations.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"## Todo\n- [ ] Buy milk\n- [x] Call mom @{2024-03-07}\n\n## Done\n- [x] Shipped @{2024-1-2} @@{09:15}\n",
		"## Backlog\n",
		"## A\n- [ ]  two leading spaces kept \n",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		encoded := first.String()
		second, err := Parse(encoded)
		if err != nil {
			t.Fatalf("reparse of %q error = %v", encoded, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip changed the board:\nfirst:  %#v\nsecond: %#v", first, second)
		}
		// Encoding is a fixpoint after the first cycle.
		if second.String() != encoded {
			t.Errorf("encode not stable:\n%q\n%q", encoded, second.String())
		}
	}
}

// Each parse owns all of its state, so documents can be parsed from
// many goroutines with no coordination.
func TestParse_Concurrent(t *testing.T) {
	input := "## Todo\n- [ ] task @{2024-03-07}\n"
	done := make(chan error, 16)

	for i := 0; i < 16; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if _, err := Parse(input); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent parse error = %v", err)
		}
	}
}
