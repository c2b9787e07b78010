package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gavdaly/kantui/internal/board"
)

// ParseError is the single error surfaced by Parse. It points at the
// deepest offset the descent reached and lists the tokens that were
// still expected there.
type ParseError struct {
	Offset   int      // byte offset of the deepest failure
	Line     int      // 1-based line of the failure
	Column   int      // 1-based column of the failure
	Expected []string // alternatives still viable at the failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: expected %s",
		e.Line, e.Column, strings.Join(e.Expected, " or "))
}

// parser holds the state of one descent: the input and the
// farthest-failure bookkeeping used to build a ParseError. Every rule
// takes an offset and returns the offset after the match; on failure
// the caller's offset is untouched, so backtracking is just "keep
// using the old offset".
type parser struct {
	input    string
	farthest int
	expected []string
}

// Parse parses a complete board document. The whole input must be
// consumed: anything left after the last column makes the parse fail.
func Parse(input string) (*board.Board, error) {
	p := &parser{input: input}
	b, ok := p.document()
	if !ok {
		return nil, p.parseError()
	}
	return b, nil
}

// document matches one-or-more columns between start and end of
// input, with insignificant whitespace around and between them.
func (p *parser) document() (*board.Board, bool) {
	b := &board.Board{}
	pos := p.skip(0)
	for {
		col, next, ok := p.column(pos)
		if !ok {
			break
		}
		b.Columns = append(b.Columns, col)
		pos = p.skip(next)
	}
	if len(b.Columns) == 0 {
		return nil, false
	}
	if pos != len(p.input) {
		p.fail(pos, "end of input")
		return nil, false
	}
	return b, true
}

// column matches a heading followed by its cards. A card attempt that
// fails ends the card list; it is never an error by itself.
func (p *parser) column(pos int) (*board.Column, int, bool) {
	heading, next, ok := p.columnHeading(pos)
	if !ok {
		return nil, pos, false
	}
	col := &board.Column{Heading: heading}
	pos = next
	for {
		card, after, ok := p.card(p.skip(pos))
		if !ok {
			break
		}
		col.Cards = append(col.Cards, card)
		pos = after
	}
	return col, pos, true
}

// columnHeading matches `## text NEWLINE` as one atomic span. The
// newline is mandatory and the heading text must be non-empty.
func (p *parser) columnHeading(pos int) (string, int, bool) {
	start := pos
	pos, ok := p.lit(pos, "##")
	if !ok {
		return "", start, false
	}
	pos, ok = p.spaces(pos)
	if !ok {
		return "", start, false
	}
	title, pos, ok := p.text(pos)
	if !ok {
		return "", start, false
	}
	pos, ok = p.newline(pos)
	if !ok {
		return "", start, false
	}
	return title, pos, true
}

// card matches a whole card line atomically:
//
//	"- [" status "]" " "+ text date? time? NEWLINE?
//
// The trailing newline is optional so the last line of a file needs
// no terminator.
func (p *parser) card(pos int) (*board.Card, int, bool) {
	start := pos
	pos, ok := p.lit(pos, "- [")
	if !ok {
		return nil, start, false
	}
	status, pos, ok := p.status(pos)
	if !ok {
		return nil, start, false
	}
	pos, ok = p.lit(pos, "]")
	if !ok {
		return nil, start, false
	}
	pos, ok = p.spaces(pos)
	if !ok {
		return nil, start, false
	}
	text, pos, ok := p.text(pos)
	if !ok {
		return nil, start, false
	}
	card := &board.Card{Status: status, Text: text}
	if date, next, ok := p.dateWrapper(pos); ok {
		card.Date = date
		pos = next
	}
	if t, next, ok := p.timeWrapper(pos); ok {
		card.Time = t
		pos = next
	}
	if next, ok := p.newline(pos); ok {
		pos = next
	}
	return card, pos, true
}

// dateWrapper matches an optional single space, then `@{date}`. Any
// failure backtracks to where the wrapper began, optional space
// included.
func (p *parser) dateWrapper(pos int) (*board.Date, int, bool) {
	start := pos
	if pos < len(p.input) && p.input[pos] == ' ' {
		pos++
	}
	pos, ok := p.lit(pos, "@{")
	if !ok {
		return nil, start, false
	}
	date, pos, ok := p.date(pos)
	if !ok {
		return nil, start, false
	}
	pos, ok = p.lit(pos, "}")
	if !ok {
		return nil, start, false
	}
	return &date, pos, true
}

// timeWrapper matches an optional single space, then `@@{time}`. The
// doubled sentinel keeps time annotations from ever being mistaken
// for date annotations.
func (p *parser) timeWrapper(pos int) (*board.Time, int, bool) {
	start := pos
	if pos < len(p.input) && p.input[pos] == ' ' {
		pos++
	}
	pos, ok := p.lit(pos, "@@{")
	if !ok {
		return nil, start, false
	}
	t, pos, ok := p.time(pos)
	if !ok {
		return nil, start, false
	}
	pos, ok = p.lit(pos, "}")
	if !ok {
		return nil, start, false
	}
	return &t, pos, true
}

// date matches DDDD-D(D)-D(D). The fields are captured as written;
// nothing checks that they form a real calendar date.
func (p *parser) date(pos int) (board.Date, int, bool) {
	start := pos
	year, pos, ok := p.digits(pos, 4, 4)
	if !ok {
		return board.Date{}, start, false
	}
	pos, ok = p.lit(pos, "-")
	if !ok {
		return board.Date{}, start, false
	}
	month, pos, ok := p.digits(pos, 1, 2)
	if !ok {
		return board.Date{}, start, false
	}
	pos, ok = p.lit(pos, "-")
	if !ok {
		return board.Date{}, start, false
	}
	day, pos, ok := p.digits(pos, 1, 2)
	if !ok {
		return board.Date{}, start, false
	}
	return board.Date{Year: year, Month: month, Day: day, Raw: p.input[start:pos]}, pos, true
}

// time matches DD:DD, again without range validation.
func (p *parser) time(pos int) (board.Time, int, bool) {
	start := pos
	hour, pos, ok := p.digits(pos, 2, 2)
	if !ok {
		return board.Time{}, start, false
	}
	pos, ok = p.lit(pos, ":")
	if !ok {
		return board.Time{}, start, false
	}
	minute, pos, ok := p.digits(pos, 2, 2)
	if !ok {
		return board.Time{}, start, false
	}
	return board.Time{Hour: hour, Minute: minute, Raw: p.input[start:pos]}, pos, true
}

// status matches the single character between the card brackets.
func (p *parser) status(pos int) (board.Status, int, bool) {
	if pos < len(p.input) {
		switch p.input[pos] {
		case 'x':
			return board.Complete, pos + 1, true
		case ' ':
			return board.Incomplete, pos + 1, true
		}
	}
	p.fail(pos, `"x" or " "`)
	return board.Incomplete, pos, false
}

// text greedily consumes characters until a date opener, a time
// opener, or a newline would begin, and requires at least one
// character. Nothing is trimmed: spaces before an annotation stay in
// the text.
func (p *parser) text(pos int) (string, int, bool) {
	next := pos
	for next < len(p.input) {
		c := p.input[next]
		if c == '\n' || c == '\r' {
			break
		}
		if strings.HasPrefix(p.input[next:], "@{") || strings.HasPrefix(p.input[next:], "@@{") {
			break
		}
		next++
	}
	if next == pos {
		p.fail(pos, "text")
		return "", pos, false
	}
	return p.input[pos:next], next, true
}

// digits matches between min and max decimal digits greedily and
// returns their value.
func (p *parser) digits(pos, min, max int) (int, int, bool) {
	next := pos
	for next < len(p.input) && next-pos < max && p.input[next] >= '0' && p.input[next] <= '9' {
		next++
	}
	if next-pos < min {
		p.fail(next, "digit")
		return 0, pos, false
	}
	value, err := strconv.Atoi(p.input[pos:next])
	if err != nil {
		p.fail(pos, "digit")
		return 0, pos, false
	}
	return value, next, true
}

// spaces matches a run of one or more space characters. Tabs do not
// count here; inside a card or heading only real spaces separate the
// marker from the text.
func (p *parser) spaces(pos int) (int, bool) {
	next := pos
	for next < len(p.input) && p.input[next] == ' ' {
		next++
	}
	if next == pos {
		p.fail(pos, "space")
		return pos, false
	}
	return next, true
}

// newline matches "\r\n", "\n", or "\r".
func (p *parser) newline(pos int) (int, bool) {
	if strings.HasPrefix(p.input[pos:], "\r\n") {
		return pos + 2, true
	}
	if pos < len(p.input) && (p.input[pos] == '\n' || p.input[pos] == '\r') {
		return pos + 1, true
	}
	p.fail(pos, "newline")
	return pos, false
}

// lit matches an exact literal.
func (p *parser) lit(pos int, s string) (int, bool) {
	if strings.HasPrefix(p.input[pos:], s) {
		return pos + len(s), true
	}
	p.fail(pos, strconv.Quote(s))
	return pos, false
}

// skip consumes the insignificant whitespace between structural
// elements: spaces, tabs, carriage returns, and newlines. It always
// succeeds.
func (p *parser) skip(pos int) int {
	for pos < len(p.input) {
		switch p.input[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// fail records an expectation at the given offset. Expectations
// shallower than the farthest failure so far are discarded; a deeper
// one resets the set.
func (p *parser) fail(pos int, want string) {
	if pos > p.farthest {
		p.farthest = pos
		p.expected = p.expected[:0]
	} else if pos < p.farthest {
		return
	}
	for _, e := range p.expected {
		if e == want {
			return
		}
	}
	p.expected = append(p.expected, want)
}

// parseError builds the ParseError for the recorded deepest failure.
func (p *parser) parseError() *ParseError {
	line, column := 1, 1
	for i := 0; i < p.farthest && i < len(p.input); i++ {
		if p.input[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return &ParseError{
		Offset:   p.farthest,
		Line:     line,
		Column:   column,
		Expected: append([]string(nil), p.expected...),
	}
}
