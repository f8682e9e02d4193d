package simon

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/simon-says/internal/core"
)

const (
	fillIdle = '▒'
	fillLit  = '█'
)

// Render draws the board and the given game state to the screen.
func (b *Board) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() != b.width || dst.Height() != b.height {
		b.Resize(dst.Width(), dst.Height())
	}

	if b.tooSmall {
		b.renderTooSmall(dst)
		return
	}

	b.renderHUD(dst, snap)
	dst.DrawBox(b.frame, core.ColorGray)
	for _, c := range Colors {
		b.renderPad(dst, c)
	}
}

// renderTooSmall shows a "window too small" message.
func (b *Board) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, status line, high score and turn hint.
func (b *Board) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, "S I M O N   S A Y S", core.ColorBrightWhite)
	dst.DrawTextCentered(1, snap.Status.Text(), core.ColorIndigo)
	dst.DrawTextCentered(2, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorGold)

	if hint := turnHint(snap); hint != "" {
		dst.DrawTextCentered(3, hint, core.ColorGray)
	}
}

func turnHint(snap Snapshot) string {
	if snap.Status.Kind != StatusPlaying {
		return ""
	}
	if snap.PlaybackPending {
		return "Watch..."
	}
	if len(snap.Input) == len(snap.Sequence) {
		return "Well done!"
	}
	return fmt.Sprintf("Your turn  %d/%d", len(snap.Input), len(snap.Sequence))
}

// renderPad fills one pad, bright while it is lit, with its key label in the middle.
func (b *Board) renderPad(dst *core.Screen, c Color) {
	r, ok := b.rects[c]
	if !ok {
		return
	}

	pad := b.pads[c]
	fill, color := fillIdle, pad.Base
	if b.Lit(c) {
		fill, color = fillLit, pad.Lit
	}
	dst.DrawRect(r, fill, color)

	if pad.Label == "" {
		return
	}
	label := " " + strings.ToUpper(pad.Label) + " "
	cx, cy := r.Center()
	dst.DrawTextColored(cx-utf8.RuneCountInString(label)/2, cy, label, core.ColorBrightWhite)
}
