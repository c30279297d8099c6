// Package tui provides an interactive terminal match against the
// engine: the human plays Side B by entering rows 0-5, the engine
// plays Side A.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/kalah-cli/internal/display"
	"github.com/lox/kalah-cli/internal/game"
	"github.com/lox/kalah-cli/internal/search"
	"github.com/lox/kalah-cli/kalah"
)

// Model is the Bubble Tea model for an interactive match.
type Model struct {
	match    *Driver
	logger   *log.Logger
	viewport viewport.Model
	input    textinput.Model

	gameLog     []string
	width       int
	height      int
	initialized bool
	quitting    bool
}

// Driver wraps a Match plus the engine searcher for manual turn
// stepping from the UI loop.
type Driver struct {
	match    *game.Match
	searcher *search.Searcher
	depth    int
}

// NewDriver sets up a human-vs-engine match on a fresh board. The
// engine plays Side A; engineFirst decides who opens.
func NewDriver(seedsPerPit uint8, depth int, engineFirst bool, logger *log.Logger) *Driver {
	match := game.NewMatch(
		kalah.New(seedsPerPit),
		game.NewSearchAgent("engine", depth),
		game.NewHumanAgent("you"),
		logger,
		game.WithFirstMover(engineFirst),
	)
	return &Driver{
		match:    match,
		searcher: search.New(),
		depth:    depth,
	}
}

// New creates the TUI model around a match driver.
func New(driver *Driver, logger *log.Logger) *Model {
	vp := viewport.New(40, 10)

	ti := textinput.New()
	ti.Placeholder = "row 0-5, or q to quit"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 30
	ti.Prompt = "> "

	return &Model{
		match:    driver,
		logger:   logger.WithPrefix("tui"),
		viewport: vp,
		input:    ti,
	}
}

// Init starts the input cursor blinking and lets the engine open when
// it moves first.
func (m *Model) Init() tea.Cmd {
	if m.match.EngineToMove() {
		m.playEngineTurns()
	}
	return textinput.Blink
}

// Update handles input and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(4, msg.Height-kalah.PitsPerSide-8)
		m.initialized = true
		m.refreshLog()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if value == "q" || value == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.handleRow(value)
			if m.match.Over() {
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleRow applies a human row entry and then lets the engine respond.
func (m *Model) handleRow(value string) {
	if m.match.Over() {
		m.addLog(infoStyle.Render("The game is over"))
		return
	}
	if m.match.EngineToMove() {
		m.playEngineTurns()
		return
	}

	row, err := strconv.Atoi(value)
	if err != nil || row < 0 || row >= kalah.PitsPerSide {
		m.addLog(errorStyle.Render(fmt.Sprintf("Enter a row between 0 and %d", kalah.PitsPerSide-1)))
		return
	}

	pit := kalah.FacingIndex(row)
	again, err := m.match.PlayHuman(pit)
	if err != nil {
		m.addLog(errorStyle.Render(err.Error()))
		return
	}

	m.addLog(fmt.Sprintf("You play row %d (pit %d)", row, pit))
	if again {
		m.addLog("Extra turn: your final seed landed in your store")
		return
	}

	m.playEngineTurns()
}

// playEngineTurns runs engine moves until the turn passes back or the
// game ends, logging each move and its evaluation.
func (m *Model) playEngineTurns() {
	for m.match.EngineToMove() && !m.match.Over() {
		result, again, err := m.match.PlayEngine()
		if err != nil {
			m.addLog(errorStyle.Render(err.Error()))
			return
		}
		m.addLog(engineStyle.Render(
			fmt.Sprintf("Engine plays %d (eval = %d)", result.Move, result.Eval)))
		if !again {
			break
		}
		m.addLog(engineStyle.Render("Engine takes an extra turn"))
	}
	m.logOutcome()
}

// logOutcome reports the final score once either side runs dry.
func (m *Model) logOutcome() {
	if !m.match.Over() {
		return
	}
	result, err := m.match.Result()
	if err != nil {
		m.addLog(errorStyle.Render(err.Error()))
		return
	}
	m.addLog("")
	m.addLog(headerStyle.Render(fmt.Sprintf(" Game over: %d - %d ", result.StoreA, result.StoreB)))
	switch {
	case result.Winner == "engine":
		m.addLog(engineStyle.Render("The engine wins"))
	case result.Winner == "you":
		m.addLog("You win!")
	default:
		m.addLog("Draw")
	}
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.viewport.SetContent(gameLogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.viewport.GotoBottom()
}

// View renders the header, board, move log, and input row.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(" Kalah "))
	sb.WriteString("\n\n")
	sb.WriteString(display.Render(m.match.Board()))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.match.Over() {
		sb.WriteString(infoStyle.Render("Press q to exit"))
	} else if m.match.EngineToMove() {
		sb.WriteString(infoStyle.Render("Engine is thinking..."))
	} else {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the interactive program.
func Run(driver *Driver, logger *log.Logger) error {
	program := tea.NewProgram(New(driver, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// EngineToMove reports whether Side A (the engine) is to move.
func (d *Driver) EngineToMove() bool {
	return d.match.SideAToMove()
}

// Over reports whether the side to move has no legal move.
func (d *Driver) Over() bool {
	return d.match.GameOver()
}

// Board returns a copy of the live board.
func (d *Driver) Board() kalah.Board {
	return d.match.Board()
}

// PlayHuman validates and applies a human move for Side B.
func (d *Driver) PlayHuman(pit int) (bool, error) {
	return d.match.ApplyMove(pit)
}

// PlayEngine searches the position and applies the engine's move.
func (d *Driver) PlayEngine() (search.Result, bool, error) {
	result := d.searcher.Search(d.match.Board(), true, d.depth)
	if !result.HasMove() {
		return result, false, nil
	}
	again, err := d.match.ApplyMove(result.Move)
	return result, again, err
}

// Result finishes the match and returns the final score.
func (d *Driver) Result() (*game.MatchResult, error) {
	return d.match.Finish()
}
