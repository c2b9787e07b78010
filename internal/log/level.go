package log

import (
	"fmt"
	"strings"
)

// Level represents the importance level of a log message.
type Level int

const (
	// LevelDebug provides detailed information for debugging purposes.
	LevelDebug Level = iota

	// LevelInfo represents general informational messages.
	LevelInfo

	// LevelWarn indicates potentially harmful situations.
	LevelWarn

	// LevelError represents error conditions that need attention.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}
