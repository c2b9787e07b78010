// Package document reads and writes board files. A board file is the
// board text itself, optionally surrounded by a leading "---" YAML
// frontmatter block and a trailing block introduced by a line starting
// with "%%". Both blocks are kept verbatim so editing the board never
// disturbs them.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gavdaly/kantui/internal/board"
	"github.com/gavdaly/kantui/internal/parser"
)

// Document is a parsed board file.
type Document struct {
	Board *board.Board

	// Frontmatter holds the decoded YAML frontmatter, or nil when the
	// file has none.
	Frontmatter map[string]any

	frontRaw   string // frontmatter block verbatim, delimiters included
	trailerRaw string // "%%" trailer verbatim
}

// Decode parses the text of a board file.
func Decode(text string) (*Document, error) {
	doc := &Document{}

	body := text
	if front, rest, ok := splitFrontmatter(body); ok {
		doc.frontRaw = front
		body = rest

		inner := strings.TrimPrefix(front, "---")
		inner = strings.TrimSuffix(strings.TrimSuffix(inner, "\n"), "\r")
		inner = strings.TrimSuffix(inner, "---")
		meta := map[string]any{}
		if err := yaml.Unmarshal([]byte(inner), &meta); err != nil {
			return nil, fmt.Errorf("frontmatter: %w", err)
		}
		if len(meta) > 0 {
			doc.Frontmatter = meta
		}
	}
	body, doc.trailerRaw = splitTrailer(body)

	b, err := parser.Parse(body)
	if err != nil {
		return nil, err
	}
	doc.Board = b
	return doc, nil
}

// Load reads and parses a board file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode renders the document back to file form: frontmatter, the
// encoded board, then the trailer, each exactly as loaded.
func (d *Document) Encode() string {
	var sb strings.Builder
	sb.WriteString(d.frontRaw)
	sb.WriteString(d.Board.String())
	if d.trailerRaw != "" {
		sb.WriteString("\n")
		sb.WriteString(d.trailerRaw)
	}
	return sb.String()
}

// Save writes the document atomically: the content goes to a
// temporary file in the same directory which is then renamed over the
// target. The board is re-parsed first so a text edit that breaks the
// grammar (for example a malformed annotation typed into a card) is
// rejected instead of written out.
func (d *Document) Save(path string) error {
	if _, err := parser.Parse(d.Board.String()); err != nil {
		return fmt.Errorf("board no longer parses: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kantui-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(d.Encode()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// splitFrontmatter peels a leading "---" block off the text. The
// opening delimiter must be the very first line; the block runs up to
// and including the next line that is exactly "---".
func splitFrontmatter(text string) (front, rest string, ok bool) {
	if !strings.HasPrefix(text, "---\n") && !strings.HasPrefix(text, "---\r\n") {
		return "", text, false
	}
	offset := strings.IndexByte(text, '\n') + 1
	for offset < len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		var line string
		if end < 0 {
			line = text[offset:]
			end = len(text)
		} else {
			line = text[offset : offset+end]
			end = offset + end + 1
		}
		if strings.TrimRight(line, "\r") == "---" {
			return text[:end], text[end:], true
		}
		offset = end
	}
	// No closing delimiter; treat the file as having no frontmatter.
	return "", text, false
}

// splitTrailer cuts the text at the first line that starts with "%%".
func splitTrailer(text string) (body, trailer string) {
	offset := 0
	for offset < len(text) {
		if strings.HasPrefix(text[offset:], "%%") {
			return text[:offset], text[offset:]
		}
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			break
		}
		offset += next + 1
	}
	return text, ""
}
