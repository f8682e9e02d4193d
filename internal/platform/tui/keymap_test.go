package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/simon"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space starts", runeKey(" "), core.ActionStart, false},
		{"s starts", runeKey("s"), core.ActionStart, false},
		{"1 red", runeKey("1"), core.ActionRed, false},
		{"r red", runeKey("r"), core.ActionRed, false},
		{"2 blue", runeKey("2"), core.ActionBlue, false},
		{"b blue", runeKey("b"), core.ActionBlue, false},
		{"3 green", runeKey("3"), core.ActionGreen, false},
		{"g green", runeKey("g"), core.ActionGreen, false},
		{"4 yellow", runeKey("4"), core.ActionYellow, false},
		{"y yellow", runeKey("y"), core.ActionYellow, false},
		{"esc back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestPadColor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   simon.Color
		ok     bool
	}{
		{core.ActionRed, simon.Red, true},
		{core.ActionBlue, simon.Blue, true},
		{core.ActionGreen, simon.Green, true},
		{core.ActionYellow, simon.Yellow, true},
		{core.ActionStart, 0, false},
	}

	for _, tt := range tests {
		got, ok := PadColor(tt.action)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PadColor(%v) = %v, %v; expected %v, %v", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
