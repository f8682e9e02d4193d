package simon

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Presenter shows engine output to the player: it lights a pad for a while
// and plays the pad's cue. It never reports failures back to the engine.
type Presenter interface {
	Flash(c Color, d time.Duration)
}

// Speaker plays the audible cue tied to a pad color.
type Speaker interface {
	Play(c Color) error
}

// NopSpeaker is a silent Speaker.
type NopSpeaker struct{}

// Play does nothing.
func (NopSpeaker) Play(Color) error { return nil }

// BellSpeaker rings the terminal bell on the wrapped writer.
type BellSpeaker struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellSpeaker returns a speaker that writes BEL to w.
func NewBellSpeaker(w io.Writer) *BellSpeaker {
	return &BellSpeaker{w: w}
}

// Play rings the bell. Terminals have one bell, so every color sounds alike.
func (s *BellSpeaker) Play(Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write([]byte{'\a'})
	return err
}

// toneNotes maps each color to a DECPS note (2 is C5, one step per semitone).
var toneNotes = map[Color]int{
	Red:    11, // A5
	Blue:   6,  // E5
	Green:  18, // E6
	Yellow: 3,  // C#5
}

const (
	toneVolume   = 5
	toneDuration = 8 // 1/32 s units
)

// ToneSpeaker plays a distinct note per color with the DECPS escape
// sequence. Terminals without DECPS support ignore it.
type ToneSpeaker struct {
	mu sync.Mutex
	w  io.Writer
}

// NewToneSpeaker returns a speaker that writes note sequences to w.
func NewToneSpeaker(w io.Writer) *ToneSpeaker {
	return &ToneSpeaker{w: w}
}

// Play sounds the note of c.
func (s *ToneSpeaker) Play(c Color) error {
	note, ok := toneNotes[c]
	if !ok {
		return fmt.Errorf("no tone for color %v", c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "\x1b[%d;%d;%d,~", toneVolume, toneDuration, note)
	return err
}

type nopPresenter struct{}

func (nopPresenter) Flash(Color, time.Duration) {}
