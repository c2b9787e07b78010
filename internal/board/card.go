package board

import (
	"fmt"
	"strings"
)

// Date is a card's date annotation. The numeric fields are taken
// verbatim from the source; no calendar validation is performed, so a
// month of 13 is representable. Raw holds the exact span matched in
// the source (e.g. "2024-03-07") and is preferred when re-encoding so
// zero-padding survives a round trip.
type Date struct {
	Year  int
	Month int
	Day   int
	Raw   string
}

// String returns the date as it appears inside a date annotation.
func (d Date) String() string {
	if d.Raw != "" {
		return d.Raw
	}
	return fmt.Sprintf("%04d-%d-%d", d.Year, d.Month, d.Day)
}

// ParseDate parses a date annotation body such as "2024-03-07":
// a four digit year and one-or-two digit month and day. The values
// are not checked against a calendar.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 ||
		len(parts[1]) < 1 || len(parts[1]) > 2 ||
		len(parts[2]) < 1 || len(parts[2]) > 2 {
		return Date{}, fmt.Errorf("invalid date: %q", s)
	}
	year, ok1 := atoiDigits(parts[0])
	month, ok2 := atoiDigits(parts[1])
	day, ok3 := atoiDigits(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("invalid date: %q", s)
	}
	return Date{Year: year, Month: month, Day: day, Raw: s}, nil
}

// Time is a card's time annotation. Like Date, the fields are raw
// numerics with no range validation.
type Time struct {
	Hour   int
	Minute int
	Raw    string
}

// String returns the time as it appears inside a time annotation.
func (t Time) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTime parses a time annotation body such as "14:30": two
// digits, a colon, two digits.
func ParseTime(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return Time{}, fmt.Errorf("invalid time: %q", s)
	}
	hour, ok1 := atoiDigits(parts[0])
	minute, ok2 := atoiDigits(parts[1])
	if !ok1 || !ok2 {
		return Time{}, fmt.Errorf("invalid time: %q", s)
	}
	return Time{Hour: hour, Minute: minute, Raw: s}, nil
}

func atoiDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, len(s) > 0
}

// Card is a single entry in a column. Text is never trimmed: trailing
// spaces that preceded an annotation in the source belong to it.
type Card struct {
	Status Status
	Text   string
	Date   *Date
	Time   *Time
}

// String renders the card as a board line, without a trailing newline.
// Annotations are appended with no separating space: the separator, if
// one existed in the source, is already part of Text, and inserting
// another would grow the text on every parse/encode cycle.
func (c *Card) String() string {
	var sb strings.Builder
	sb.WriteString("- [")
	sb.WriteString(c.Status.String())
	sb.WriteString("] ")
	sb.WriteString(c.Text)
	if c.Date != nil {
		sb.WriteString("@{")
		sb.WriteString(c.Date.String())
		sb.WriteString("}")
	}
	if c.Time != nil {
		sb.WriteString("@@{")
		sb.WriteString(c.Time.String())
		sb.WriteString("}")
	}
	return sb.String()
}

// Rename returns a copy of the card with a new text.
func (c *Card) Rename(text string) *Card {
	clone := *c
	clone.Text = text
	return &clone
}

// CardBuilder assembles a card step by step. Build fails when no text
// has been set.
type CardBuilder struct {
	status Status
	text   string
	date   *Date
	time   *Time
}

// NewCard returns an empty card builder.
func NewCard() *CardBuilder {
	return &CardBuilder{}
}

// Status sets the completion state.
func (b *CardBuilder) Status(s Status) *CardBuilder {
	b.status = s
	return b
}

// Text sets the card text.
func (b *CardBuilder) Text(text string) *CardBuilder {
	b.text = text
	return b
}

// Date attaches a date annotation.
func (b *CardBuilder) Date(d Date) *CardBuilder {
	b.date = &d
	return b
}

// Time attaches a time annotation.
func (b *CardBuilder) Time(t Time) *CardBuilder {
	b.time = &t
	return b
}

// Build validates and returns the card.
func (b *CardBuilder) Build() (*Card, error) {
	if b.text == "" {
		return nil, fmt.Errorf("card text is required")
	}
	return &Card{
		Status: b.status,
		Text:   b.text,
		Date:   b.date,
		Time:   b.time,
	}, nil
}
