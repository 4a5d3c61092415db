package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tfe/internal/config"
	"tfe/internal/game"
)

// Options configures a game session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 means derive from the current time
	FPS    int   // autoplay frames per second
	Width  int   // initial terminal width, 0 for the 80x24 fallback
	Height int   // initial terminal height
}

// Model is the Bubble Tea model driving one game of 2048.
type Model struct {
	engine *game.Engine
	policy *game.Policy
	opts   Options
	keys   KeyMap
	help   help.Model

	width    int
	height   int
	autoplay bool
	quitting bool
}

// NewModel creates a model with a freshly initialized engine.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	engine, err := game.NewEngine(opts.Config.EngineConfig(), rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return Model{}, err
	}

	return Model{
		engine:   engine,
		policy:   game.NewPolicy(),
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    opts.Width,
		height:   opts.Height,
		autoplay: opts.Config.Autoplay.Enabled,
	}, nil
}

// Init starts the autoplay tick loop when autoplay is enabled.
func (m Model) Init() tea.Cmd {
	if m.autoplay {
		return tickCmd(m.opts.FPS)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.engine.IsLost() {
			m.opts.Seed = time.Now().UnixNano()
			// Reset with the same validated config cannot fail.
			//nolint:errcheck
			m.engine.Reset(m.opts.Config.EngineConfig(), rand.New(rand.NewSource(m.opts.Seed)))
			if m.autoplay {
				return m, tickCmd(m.opts.FPS)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Auto):
		m.autoplay = !m.autoplay
		if m.autoplay && !m.engine.IsLost() {
			return m, tickCmd(m.opts.FPS)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.applyMove(game.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.applyMove(game.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.applyMove(game.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.applyMove(game.DirRight)
	}

	return m, nil
}

// applyMove feeds one manual move to the engine. Moves that shift
// nothing and moves after game over are silently absorbed; the board
// view already tells the story.
func (m Model) applyMove(dir game.Direction) (tea.Model, tea.Cmd) {
	if m.autoplay {
		return m, nil
	}
	_, err := m.engine.ApplyMove(dir)
	if err != nil && !errors.Is(err, game.ErrGameOver) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances autoplay by up to one chunk of engine moves.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.autoplay || m.engine.IsLost() {
		return m, nil
	}

	chunk := m.opts.Config.Autoplay.Chunk
	for i := 0; i < chunk; i++ {
		if _, _, err := m.engine.AutoMove(m.policy); err != nil {
			// ErrNoMove and ErrGameOver both mean the run is over.
			return m, nil
		}
	}

	return m, tickCmd(m.opts.FPS)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	var sb strings.Builder
	sb.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Turns: %d   Max: %d",
		snap.Score, snap.Turns, snap.MaxTile)))
	if m.autoplay {
		sb.WriteString(hudStyle.Render("   [AUTO]"))
	}
	sb.WriteByte('\n')

	switch {
	case snap.Lost:
		sb.WriteString(lostStyle.Render("GAME OVER") + "  press r to restart")
		sb.WriteByte('\n')
	case snap.Won:
		sb.WriteString(wonStyle.Render(fmt.Sprintf("You reached %d!", m.opts.Config.Game.WinValue)) +
			"  keep going")
		sb.WriteByte('\n')
	default:
		sb.WriteByte('\n')
	}

	sb.WriteString(renderBoard(snap.Board, m.width, m.height-4))
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// Run starts the Bubble Tea program for a local game session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
