package simon

import (
	"fmt"
	"strings"
)

// Color identifies one of the four pads.
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

// Colors lists every pad color in board order.
var Colors = [...]Color{Red, Blue, Green, Yellow}

var colorNames = [...]string{"red", "blue", "green", "yellow"}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the four pad colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

// ParseColor converts a color name (case-insensitive) to a Color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("simon: unknown color %q", s)
}
