package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gavdaly/kantui/internal/config"
	"github.com/gavdaly/kantui/internal/document"
	"github.com/gavdaly/kantui/internal/log"
)

// env bundles the loaded configuration and logger for a command run.
type env struct {
	cfg    *config.Config
	logger *log.Logger
}

// setup loads the configuration and wires the logger from it.
func setup() (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = log.LevelDebug
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
	}

	return &env{cfg: cfg, logger: logger}, nil
}

// boardPath resolves the board file, --board taking precedence.
func (e *env) boardPath() string {
	if boardFile != "" {
		return boardFile
	}
	return e.cfg.Board.Path
}

// loadDocument loads and parses the board file.
func (e *env) loadDocument() (*document.Document, error) {
	path := e.boardPath()
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("board loaded", log.Fields{
		"path":    path,
		"columns": len(doc.Board.Columns),
		"cards":   doc.Board.CountCards(),
	})
	return doc, nil
}

// saveDocument writes the board file back.
func (e *env) saveDocument(doc *document.Document) error {
	path := e.boardPath()
	if err := doc.Save(path); err != nil {
		return err
	}
	e.logger.Debug("board saved", log.Fields{"path": path})
	return nil
}

// parseCardRef resolves a COLUMN/INDEX card reference (1-based index)
// against the board.
func parseCardRef(ref string) (column string, index int, err error) {
	slash := strings.LastIndex(ref, "/")
	if slash <= 0 || slash == len(ref)-1 {
		return "", 0, fmt.Errorf("card reference %q is not COLUMN/INDEX", ref)
	}
	column = ref[:slash]
	n, err := strconv.Atoi(ref[slash+1:])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("card reference %q needs a positive index", ref)
	}
	return column, n - 1, nil
}
