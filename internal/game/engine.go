package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidConfig is returned when an engine is constructed with
// non-positive dimensions or more initial tiles than the board holds.
var ErrInvalidConfig = errors.New("invalid game configuration")

// ErrGameOver is returned when a move is attempted after the game is lost.
var ErrGameOver = errors.New("game over")

// Default configuration values matching the classic game.
const (
	DefaultRows         = 4
	DefaultCols         = 4
	DefaultWinValue     = 2048
	DefaultInitialTiles = 2
)

// Config describes an engine's fixed parameters.
type Config struct {
	Rows         int
	Cols         int
	WinValue     int // tile value that counts as a win
	InitialTiles int // tiles spawned at game start
}

// DefaultConfig returns the classic 4x4 game configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		WinValue:     DefaultWinValue,
		InitialTiles: DefaultInitialTiles,
	}
}

// validate checks the config against board capacity.
func (c Config) validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.WinValue < 2 || c.WinValue&(c.WinValue-1) != 0 {
		return fmt.Errorf("%w: win value %d is not a power of 2",
			ErrInvalidConfig, c.WinValue)
	}
	if c.InitialTiles < 0 || c.InitialTiles > c.Rows*c.Cols {
		return fmt.Errorf("%w: %d initial tiles exceed %dx%d board capacity",
			ErrInvalidConfig, c.InitialTiles, c.Rows, c.Cols)
	}
	return nil
}

// MoveOutcome describes the result of one ApplyMove call.
type MoveOutcome struct {
	Score      int  // total score after the move
	ScoreDelta int  // points gained by this move
	Moved      bool // whether any tile moved
	Won        bool // win threshold reached (play continues)
	Lost       bool // no legal move remains
}

// Engine owns one board plus score and turn state, and is the single
// point of truth for win/loss determination. The board is never handed
// out mutable; Snapshot returns copies.
type Engine struct {
	cfg   Config
	board *Board
	rng   *rand.Rand

	score int
	turns int
	won   bool
	lost  bool
}

// NewEngine creates an engine with an empty board and the configured
// number of initial tiles, drawing spawns from the supplied source.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		board: NewBoard(cfg.Rows, cfg.Cols),
		rng:   rng,
	}
	for i := 0; i < cfg.InitialTiles; i++ {
		e.board.SpawnTile(rng)
	}
	// A board that starts with no legal move (1x1, or fully packed by
	// initial tiles with no merges) is lost immediately.
	e.lost = e.board.IsStuck()
	e.won = e.board.MaxValue() >= cfg.WinValue
	return e, nil
}

// Reset re-initializes the engine with a new configuration, discarding
// all prior state.
func (e *Engine) Reset(cfg Config, rng *rand.Rand) error {
	fresh, err := NewEngine(cfg, rng)
	if err != nil {
		return err
	}
	*e = *fresh
	return nil
}

// ApplyMove applies one directional move. A direction that moves
// nothing is a normal no-op outcome, not an error: no spawn, no turn,
// no score change. After the game is lost every call fails with
// ErrGameOver.
func (e *Engine) ApplyMove(dir Direction) (MoveOutcome, error) {
	if e.lost {
		return MoveOutcome{}, ErrGameOver
	}

	points, moved := e.board.ApplyDirection(dir)
	if !moved {
		return MoveOutcome{Score: e.score, Won: e.won}, nil
	}

	e.score += points
	e.turns++

	// Spawn failure means the board is full; whether that is fatal is
	// decided by the stuck check below, since a full board can still
	// have a legal merge.
	e.board.SpawnTile(e.rng)

	if !e.won && e.board.MaxValue() >= e.cfg.WinValue {
		e.won = true
	}
	if e.board.IsStuck() {
		e.lost = true
	}

	return MoveOutcome{
		Score:      e.score,
		ScoreDelta: points,
		Moved:      true,
		Won:        e.won,
		Lost:       e.lost,
	}, nil
}

// AutoMove asks the policy for a direction and applies it. Returns the
// chosen direction alongside the outcome. When the policy finds no
// legal move the error is ErrNoMove and the board is untouched.
func (e *Engine) AutoMove(p *Policy) (Direction, MoveOutcome, error) {
	if e.lost {
		return 0, MoveOutcome{}, ErrGameOver
	}
	dir, err := p.Choose(e.board)
	if err != nil {
		return 0, MoveOutcome{}, err
	}
	out, err := e.ApplyMove(dir)
	return dir, out, err
}

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Turns returns the number of accepted moves.
func (e *Engine) Turns() int { return e.turns }

// IsWon reports whether the win threshold has been reached. Winning is
// a milestone, not game end; play continues past it.
func (e *Engine) IsWon() bool { return e.won }

// IsLost reports whether the game is over with no legal move left.
func (e *Engine) IsLost() bool { return e.lost }

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Snapshot captures the full engine state for rendering and replay
// verification. The board is a copy.
type Snapshot struct {
	Board   *Board
	Score   int
	Turns   int
	MaxTile int
	Won     bool
	Lost    bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:   e.board.Clone(),
		Score:   e.score,
		Turns:   e.turns,
		MaxTile: e.board.MaxValue(),
		Won:     e.won,
		Lost:    e.lost,
	}
}
