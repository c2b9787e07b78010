// Package tui is the interactive board view. It renders one pane per
// column, moves a cursor between cards, and writes edits back to the
// board file on save. Changes made to the file by other programs are
// picked up through a modification-time poll.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gavdaly/kantui/internal/board"
	"github.com/gavdaly/kantui/internal/document"
	"github.com/gavdaly/kantui/internal/log"
)

type mode int

const (
	modeBoard mode = iota
	modeInsert
)

// tickMsg drives the board file modification poll.
type tickMsg time.Time

// Model is the bubbletea model for the board view.
type Model struct {
	doc    *document.Document
	path   string
	logger *log.Logger

	col    int
	row    int
	width  int
	height int

	mode   mode
	input  textinput.Model
	dirty  bool
	status string

	lastMod time.Time
}

// NewModel creates the board view for an already loaded document.
func NewModel(path string, doc *document.Document, logger *log.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Card text..."
	input.CharLimit = 200

	m := Model{
		doc:    doc,
		path:   path,
		logger: logger.WithField("component", "tui"),
		input:  input,
	}
	if info, err := os.Stat(path); err == nil {
		m.lastMod = info.ModTime()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return watchTick()
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		return m.updateBoard(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.checkFile()
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.col > 0 {
			m.col--
			m.clampRow()
		}

	case "right", "l":
		if m.col < len(m.doc.Board.Columns)-1 {
			m.col++
			m.clampRow()
		}

	case "up", "k":
		if m.row > 0 {
			m.row--
		}

	case "down", "j":
		if m.row < len(m.currentColumn().Cards)-1 {
			m.row++
		}

	case " ":
		if card, err := m.currentColumn().Card(m.row); err == nil {
			card.Status = card.Status.Toggle()
			m.dirty = true
		}

	case "m":
		m.moveCard(1)

	case "M":
		m.moveCard(-1)

	case "d":
		col := m.currentColumn()
		if _, err := col.RemoveCard(m.row); err == nil {
			m.dirty = true
			m.clampRow()
		}

	case "a":
		m.mode = modeInsert
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink

	case "s":
		if err := m.doc.Save(m.path); err != nil {
			m.logger.Error("save failed", log.Fields{"path": m.path, "error": err.Error()})
			m.status = errorStyle.Render("save failed: " + err.Error())
			break
		}
		m.dirty = false
		if info, err := os.Stat(m.path); err == nil {
			m.lastMod = info.ModTime()
		}
		m.status = "saved"

	case "r":
		m.reload()
	}
	return m, nil
}

func (m Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBoard
		m.input.Blur()
		return m, nil

	case "enter":
		text := m.input.Value()
		m.mode = modeBoard
		m.input.Blur()
		card, err := board.NewCard().Text(text).Build()
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		col := m.currentColumn()
		col.Cards = append(col.Cards, card)
		m.row = len(col.Cards) - 1
		m.dirty = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// checkFile reloads the document when the file changed on disk and
// there are no unsaved edits to lose.
func (m Model) checkFile() (tea.Model, tea.Cmd) {
	info, err := os.Stat(m.path)
	if err == nil && info.ModTime().After(m.lastMod) {
		m.lastMod = info.ModTime()
		if m.dirty {
			m.status = errorStyle.Render("board changed on disk; unsaved edits kept (r discards them)")
		} else {
			m.reload()
		}
	}
	return m, watchTick()
}

func (m *Model) reload() {
	doc, err := document.Load(m.path)
	if err != nil {
		m.logger.Warn("reload failed", log.Fields{"path": m.path, "error": err.Error()})
		m.status = errorStyle.Render("reload failed: " + err.Error())
		return
	}
	m.doc = doc
	m.dirty = false
	m.clampCursor()
	m.status = "reloaded"
	if info, err := os.Stat(m.path); err == nil {
		m.lastMod = info.ModTime()
	}
}

func (m *Model) currentColumn() *board.Column {
	return m.doc.Board.Columns[m.col]
}

func (m *Model) clampCursor() {
	if m.col >= len(m.doc.Board.Columns) {
		m.col = len(m.doc.Board.Columns) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	m.clampRow()
}

func (m *Model) clampRow() {
	max := len(m.currentColumn().Cards) - 1
	if m.row > max {
		m.row = max
	}
	if m.row < 0 {
		m.row = 0
	}
}

// moveCard shifts the selected card into the neighboring column.
func (m *Model) moveCard(direction int) {
	target := m.col + direction
	if target < 0 || target >= len(m.doc.Board.Columns) {
		return
	}
	src := m.currentColumn()
	card, err := src.RemoveCard(m.row)
	if err != nil {
		return
	}
	dst := m.doc.Board.Columns[target]
	dst.Cards = append(dst.Cards, card)
	m.col = target
	m.row = len(dst.Cards) - 1
	m.dirty = true
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderColumns())
	sb.WriteString("\n")
	if m.mode == modeInsert {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m *Model) renderHeader() string {
	title := m.path
	if m.dirty {
		title += " *"
	}
	return titleStyle.Render("kantui") + "  " + helpStyle.Render(title)
}

func (m *Model) renderColumns() string {
	count := len(m.doc.Board.Columns)
	width := m.width/count - 4
	if width < 16 {
		width = 16
	}

	panes := make([]string, 0, count)
	for i, col := range m.doc.Board.Columns {
		panes = append(panes, m.renderColumn(i, col, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m *Model) renderColumn(index int, col *board.Column, width int) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(col.Heading))
	sb.WriteString("\n")

	for i, card := range col.Cards {
		line := fmt.Sprintf("[%s] %s", card.Status, strings.TrimRight(card.Text, " "))
		if card.Date != nil {
			line += " " + card.Date.String()
		}
		if card.Time != nil {
			line += " " + card.Time.String()
		}
		if len(line) > width {
			line = line[:width-1] + "…"
		}

		style := cardStyle
		if card.Status == board.Complete {
			style = doneCardStyle
		}
		if index == m.col && i == m.row {
			style = selectedCardStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}
	if len(col.Cards) == 0 {
		sb.WriteString(helpStyle.Render("  (empty)"))
		sb.WriteString("\n")
	}

	pane := columnStyle
	if index == m.col {
		pane = focusedColumnStyle
	}
	return pane.Width(width).Render(sb.String())
}

func (m *Model) renderFooter() string {
	help := helpStyle.Render("hjkl move · space toggle · a add · d delete · m/M shift · s save · r reload · q quit")
	if m.status != "" {
		return statusBarStyle.Render(m.status) + "\n" + help
	}
	return help
}
