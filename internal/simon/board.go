package simon

import (
	"time"

	"github.com/vovakirdan/simon-says/internal/core"
)

// Pad is the presentation handle for one color: how it is drawn and which key
// it answers to.
type Pad struct {
	Label string     // key hint drawn in the middle of the pad
	Base  core.Color // color while idle
	Lit   core.Color // color while flashing
}

// DefaultPads returns the standard pad styles.
func DefaultPads() map[Color]Pad {
	return map[Color]Pad{
		Red:    {Label: "1", Base: core.ColorRed, Lit: core.ColorBrightRed},
		Blue:   {Label: "2", Base: core.ColorBlue, Lit: core.ColorBrightBlue},
		Green:  {Label: "3", Base: core.ColorGreen, Lit: core.ColorBrightGreen},
		Yellow: {Label: "4", Base: core.ColorYellow, Lit: core.ColorBrightYellow},
	}
}

// Layout limits, in cells.
const (
	headerRows = 5
	padGapX    = 2
	padGapY    = 1
	minPadW    = 6
	minPadH    = 3
	maxPadW    = 24
	maxPadH    = 8
)

// Board is the terminal Presenter. It keeps per-pad highlight deadlines on
// its own clock and owns the speaker used for cues.
type Board struct {
	pads    map[Color]Pad
	speaker Speaker

	now      time.Duration
	litUntil map[Color]time.Duration

	width    int
	height   int
	rects    map[Color]core.Rect
	frame    core.Rect // outline one cell around the pad grid
	tooSmall bool
}

// NewBoard creates a board from an explicit color-to-pad mapping. Colors
// missing from pads use the default style. A nil speaker is silent.
func NewBoard(pads map[Color]Pad, speaker Speaker) *Board {
	defaults := DefaultPads()
	own := make(map[Color]Pad, len(Colors))
	for _, c := range Colors {
		if p, ok := pads[c]; ok {
			own[c] = p
		} else {
			own[c] = defaults[c]
		}
	}
	if speaker == nil {
		speaker = NopSpeaker{}
	}

	return &Board{
		pads:     own,
		speaker:  speaker,
		litUntil: make(map[Color]time.Duration, len(Colors)),
		rects:    make(map[Color]core.Rect, len(Colors)),
	}
}

// Flash lights the pad for d and plays its cue. Cue errors are dropped.
func (b *Board) Flash(c Color, d time.Duration) {
	if !c.Valid() {
		return
	}
	if until := b.now + d; until > b.litUntil[c] {
		b.litUntil[c] = until
	}
	//nolint:errcheck // A missing cue never affects the game
	b.speaker.Play(c)
}

// Step advances the board clock, expiring highlights.
func (b *Board) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	b.now += dt
	for c, until := range b.litUntil {
		if until <= b.now {
			delete(b.litUntil, c)
		}
	}
}

// Lit reports whether the pad is currently highlighted.
func (b *Board) Lit(c Color) bool {
	return b.litUntil[c] > b.now
}

// Pad returns the style of a color's pad.
func (b *Board) Pad(c Color) Pad {
	return b.pads[c]
}

// Resize recomputes the pad layout for a screen of the given size.
func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height

	availW := width - 4
	availH := height - headerRows - 1

	padW := core.Clamp((availW-padGapX)/2, 0, maxPadW)
	padH := core.Clamp((availH-padGapY)/2, 0, maxPadH)
	b.tooSmall = padW < minPadW || padH < minPadH
	if b.tooSmall {
		clear(b.rects)
		b.frame = core.Rect{}
		return
	}

	gridW := padW*2 + padGapX
	gridH := padH*2 + padGapY
	x0 := (width - gridW) / 2
	y0 := headerRows + (availH-gridH)/2
	b.frame = core.NewRect(x0-1, y0-1, gridW+2, gridH+2)

	for i, c := range Colors {
		col, row := i%2, i/2
		b.rects[c] = core.NewRect(
			x0+col*(padW+padGapX),
			y0+row*(padH+padGapY),
			padW,
			padH,
		)
	}
}

// PadAt returns the color whose pad covers the screen cell (x, y).
func (b *Board) PadAt(x, y int) (Color, bool) {
	for _, c := range Colors {
		if r, ok := b.rects[c]; ok && r.Contains(x, y) {
			return c, true
		}
	}
	return 0, false
}

// TooSmall reports whether the last layout could not fit the pads.
func (b *Board) TooSmall() bool {
	return b.tooSmall
}
