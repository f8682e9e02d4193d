// Package simon implements the Simon Says game: the turn-taking engine that
// grows and replays a color sequence and checks the player's answer, plus the
// board that presents it in a terminal.
//
// The engine has no goroutines or OS timers. Deferred work (playback flashes,
// the pause before the next level) lives on a virtual timeline that the
// caller advances with Step, so every state change happens on the caller's
// goroutine in a deterministic order.
package simon

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simon-says/internal/config"
)

// Hooks let the platform observe engine transitions.
type Hooks struct {
	// OnStatus is called after every status change.
	OnStatus func(Status)

	// OnLost is called once per lost round with the level that was failed.
	OnLost func(level int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the color generator. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for transition debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHooks registers transition callbacks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// Engine owns the state of one game and all of its transitions.
type Engine struct {
	timing     config.TimingConfig
	difficulty *config.DifficultyManager
	presenter  Presenter
	scores     ScoreKeeper
	rng        *rand.Rand
	logger     *log.Logger
	hooks      Hooks

	sequence  []Color
	input     []Color
	level     int
	started   bool
	status    Status
	highScore int

	// gen changes on every start, level advance and loss; callbacks
	// scheduled under an older value are dead.
	gen      uint64
	timeline timeline
}

// New creates an idle engine. The high score is read from scores once, here.
// A nil presenter discards flashes; nil scores keep the high score in memory.
func New(cfg config.SimonConfig, presenter Presenter, scores ScoreKeeper, opts ...Option) *Engine {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if scores == nil {
		scores = NewMemoryKeeper(0)
	}

	e := &Engine{
		timing:     cfg.Timing,
		difficulty: config.NewDifficultyManager(cfg.Timing, cfg.Difficulty),
		presenter:  presenter,
		scores:     scores,
		logger:     log.New(io.Discard),
		status:     Status{Kind: StatusIdle},
	}
	WithSeed(0)(e)
	for _, opt := range opts {
		opt(e)
	}

	e.highScore = max(scores.HighScore(), 0)
	return e
}

// Start resets the game and begins a new play-through. Level 1 is set up on
// the next Step, so repeated calls in a row always leave a fresh level 0.
func (e *Engine) Start() {
	e.invalidate()
	e.sequence = nil
	e.input = nil
	e.level = 0
	e.started = true
	e.setStatus(Status{Kind: StatusStarting})

	e.timeline.schedule(0, e.gen, timerAdvance, e.advanceLevel)
}

// advanceLevel appends a color and schedules playback of the whole sequence.
func (e *Engine) advanceLevel() {
	e.invalidate()
	e.level++
	e.sequence = append(e.sequence, Colors[e.rng.Intn(len(Colors))])
	e.input = nil
	e.setStatus(Status{Kind: StatusPlaying, Level: e.level})

	settle := e.timing.Settle()
	step := e.difficulty.Step(e.level)
	flash := e.difficulty.Flash(e.level)

	for i, c := range e.sequence {
		e.timeline.schedule(settle+time.Duration(i)*step, e.gen, timerFlash, func() {
			e.presenter.Flash(c, flash)
		})
	}

	e.logger.Debug("level advanced", "level", e.level, "length", len(e.sequence), "step", step)
}

// ReceiveInput handles one player tap. Taps are ignored when no game is
// running and while a completed sequence waits for the next level.
func (e *Engine) ReceiveInput(c Color) {
	if !e.started || !c.Valid() {
		return
	}
	if len(e.input) >= len(e.sequence) {
		return
	}

	e.input = append(e.input, c)
	e.presenter.Flash(c, e.difficulty.Flash(max(e.level, 1)))

	i := len(e.input) - 1
	if e.input[i] != e.sequence[i] {
		e.lose(i)
		return
	}

	if len(e.input) == len(e.sequence) {
		e.logger.Debug("sequence complete", "level", e.level)
		e.timeline.schedule(e.timing.Advance(), e.gen, timerAdvance, e.advanceLevel)
	}
}

func (e *Engine) lose(index int) {
	e.logger.Debug("round lost",
		"level", e.level,
		"index", index,
		"want", e.sequence[index],
		"got", e.input[index],
	)

	e.invalidate()
	e.started = false
	e.setStatus(Status{Kind: StatusLost, Level: e.level})

	if e.level > e.highScore {
		e.highScore = e.level
		e.scores.SaveHighScore(e.level)
		e.logger.Debug("new high score", "score", e.highScore)
	}

	if e.hooks.OnLost != nil {
		e.hooks.OnLost(e.level)
	}
}

// invalidate cancels all pending callbacks and retires the generation.
func (e *Engine) invalidate() {
	e.gen++
	e.timeline.cancelAll()
}

func (e *Engine) setStatus(s Status) {
	e.status = s
	if e.hooks.OnStatus != nil {
		e.hooks.OnStatus(s)
	}
}

// Step advances the engine clock by dt, running every callback that falls due.
func (e *Engine) Step(dt time.Duration) {
	e.timeline.advance(dt, func() uint64 { return e.gen })
}

// UntilNext reports how long until the next deferred callback is due, and
// false when nothing is pending.
func (e *Engine) UntilNext() (time.Duration, bool) {
	return e.timeline.untilNext()
}

// Status returns the current status.
func (e *Engine) Status() Status {
	return e.status
}

// Level returns the current level, 0 before the first advance.
func (e *Engine) Level() int {
	return e.level
}

// Started reports whether a play-through is in progress.
func (e *Engine) Started() bool {
	return e.started
}

// HighScore returns the best level reached.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Elapsed returns the engine clock.
func (e *Engine) Elapsed() time.Duration {
	return e.timeline.now
}

// PlaybackPending reports whether flashes of the current playback are still
// to come.
func (e *Engine) PlaybackPending() bool {
	return e.timeline.has(timerFlash, e.gen)
}
