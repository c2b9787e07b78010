package board

import (
	"fmt"
	"io"
	"strings"
)

// Column is a heading plus its ordered cards. Cards may be empty.
type Column struct {
	Heading string
	Cards   []*Card
}

// Card returns the card at the given zero-based index.
func (c *Column) Card(index int) (*Card, error) {
	if index < 0 || index >= len(c.Cards) {
		return nil, fmt.Errorf("column %q has no card %d", c.Heading, index+1)
	}
	return c.Cards[index], nil
}

// RemoveCard removes and returns the card at the given zero-based index.
func (c *Column) RemoveCard(index int) (*Card, error) {
	card, err := c.Card(index)
	if err != nil {
		return nil, err
	}
	c.Cards = append(c.Cards[:index], c.Cards[index+1:]...)
	return card, nil
}

// Board is an ordered set of columns. A board produced by the parser
// always has at least one column; a board built programmatically may
// be empty until columns are added.
type Board struct {
	Columns []*Column
}

// New creates a board with the given column headings.
func New(headings ...string) *Board {
	b := &Board{}
	for _, h := range headings {
		b.Columns = append(b.Columns, &Column{Heading: h})
	}
	return b
}

// Column finds a column by heading. The first match wins.
func (b *Board) Column(heading string) (*Column, error) {
	for _, col := range b.Columns {
		if col.Heading == heading {
			return col, nil
		}
	}
	return nil, fmt.Errorf("column %q does not exist", heading)
}

// AddColumn appends a new empty column.
func (b *Board) AddColumn(heading string) *Column {
	col := &Column{Heading: heading}
	b.Columns = append(b.Columns, col)
	return col
}

// RemoveColumn removes a column and its cards.
func (b *Board) RemoveColumn(heading string) error {
	for i, col := range b.Columns {
		if col.Heading == heading {
			b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("column %q does not exist", heading)
}

// RenameColumn changes a column's heading.
func (b *Board) RenameColumn(heading, to string) error {
	col, err := b.Column(heading)
	if err != nil {
		return err
	}
	col.Heading = to
	return nil
}

// AddCard appends a card to the named column.
func (b *Board) AddCard(heading string, card *Card) error {
	col, err := b.Column(heading)
	if err != nil {
		return err
	}
	col.Cards = append(col.Cards, card)
	return nil
}

// MoveCard moves the card at index in column from to the end of
// column to. Both columns must exist before anything is mutated.
func (b *Board) MoveCard(from string, index int, to string) error {
	src, err := b.Column(from)
	if err != nil {
		return err
	}
	dst, err := b.Column(to)
	if err != nil {
		return err
	}
	card, err := src.RemoveCard(index)
	if err != nil {
		return err
	}
	dst.Cards = append(dst.Cards, card)
	return nil
}

// CountCards returns the total number of cards across all columns.
func (b *Board) CountCards() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}

// Encode writes the board in its source form: a "## heading" line per
// column followed by one line per card, with a blank line between
// columns. The output parses back to a structurally equal board.
func (b *Board) Encode(w io.Writer) error {
	for i, col := range b.Columns {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "## %s\n", col.Heading); err != nil {
			return err
		}
		for _, card := range col.Cards {
			if _, err := fmt.Fprintf(w, "%s\n", card); err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns the encoded board.
func (b *Board) String() string {
	var sb strings.Builder
	b.Encode(&sb)
	return sb.String()
}
