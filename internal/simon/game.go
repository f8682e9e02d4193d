package simon

import (
	"time"

	"github.com/vovakirdan/simon-says/internal/config"
	"github.com/vovakirdan/simon-says/internal/core"
)

// GameID is the identifier scores are recorded under.
const GameID = "simon"

// Game wires an Engine to its Board and is what the platform drives: it
// forwards taps, advances both clocks and renders.
type Game struct {
	engine *Engine
	board  *Board
}

// NewGame creates a game presenting on board.
func NewGame(cfg config.SimonConfig, board *Board, scores ScoreKeeper, opts ...Option) *Game {
	if board == nil {
		board = NewBoard(DefaultPads(), nil)
	}
	return &Game{
		engine: New(cfg, board, scores, opts...),
		board:  board,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says"
}

// Start begins or restarts a play-through.
func (g *Game) Start() {
	g.engine.Start()
}

// Tap forwards a pad activation to the engine. Activations are only
// forwarded while a level is being played; it reports whether it was.
func (g *Game) Tap(c Color) bool {
	if !g.engine.Status().Playing() {
		return false
	}
	g.engine.ReceiveInput(c)
	return true
}

// TapAt forwards a click at screen cell (x, y) if it lands on a pad.
func (g *Game) TapAt(x, y int) bool {
	c, ok := g.board.PadAt(x, y)
	if !ok {
		return false
	}
	return g.Tap(c)
}

// Step advances the game by dt. A long dt is split at each engine callback
// so every flash starts on the board at the time it was due.
func (g *Game) Step(dt time.Duration) {
	for dt > 0 {
		next, ok := g.engine.UntilNext()
		if !ok || next >= dt {
			break
		}
		g.board.Step(next)
		g.engine.Step(next)
		dt -= next
	}
	g.board.Step(dt)
	g.engine.Step(dt)
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.board.Render(dst, g.engine.Snapshot())
}

// Snapshot returns the engine state.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Board returns the game's presenter.
func (g *Game) Board() *Board {
	return g.board
}
