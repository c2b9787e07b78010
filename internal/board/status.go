package board

import "fmt"

// Status is the completion state of a card.
type Status int

const (
	// Incomplete is the default state, encoded as a single space.
	Incomplete Status = iota

	// Complete is encoded as "x".
	Complete
)

// String returns the single-character encoding of the status as it
// appears between the brackets of a card line.
func (s Status) String() string {
	switch s {
	case Complete:
		return "x"
	default:
		return " "
	}
}

// ParseStatus decodes a status character. Only "x" and " " are legal;
// anything else is an error.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "x":
		return Complete, nil
	case " ":
		return Incomplete, nil
	default:
		return Incomplete, fmt.Errorf("invalid status character: %q", s)
	}
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == Complete {
		return Incomplete
	}
	return Complete
}
