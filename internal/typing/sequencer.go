// Package typing reveals text one character at a time on an event loop and
// chains several reveals into the hero section's intro.
package typing

import (
	"time"

	"github.com/yorkei04/portfolio/internal/eventloop"
)

const (
	// WarmUp is the pause between the start signal and the first character.
	WarmUp = 200 * time.Millisecond
	// CursorBlink is the cursor toggle period while typing.
	CursorBlink = 530 * time.Millisecond
)

// Sequencer types a single string.
type Sequencer struct {
	loop       *eventloop.Loop
	text       []rune
	delay      time.Duration
	onComplete func()

	start     bool
	shown     int
	typing    bool
	completed bool
	cursorOn  bool

	tick  eventloop.Timer
	blink eventloop.Timer
}

// New returns an idle sequencer for text that adds one character every
// delay once started. onComplete may be nil.
func New(loop *eventloop.Loop, text string, delay time.Duration, onComplete func()) *Sequencer {
	return &Sequencer{
		loop:       loop,
		text:       []rune(text),
		delay:      delay,
		onComplete: onComplete,
	}
}

// Text returns what is currently displayed.
func (s *Sequencer) Text() string {
	if s.completed {
		return string(s.text)
	}
	return string(s.text[:min(s.shown, len(s.text))])
}

// Full returns the whole target text.
func (s *Sequencer) Full() string { return string(s.text) }

// Typing reports whether characters are still being added.
func (s *Sequencer) Typing() bool { return s.typing }

// Completed reports whether the full text has been revealed.
func (s *Sequencer) Completed() bool { return s.completed }

// CursorVisible reports the blink phase of the cursor. The cursor is only
// ever shown while typing.
func (s *Sequencer) CursorVisible() bool { return s.typing && s.cursorOn }

// SetStart drives the start signal. Raising it starts a run unless one is
// in progress or has already completed. Dropping it before completion
// clears the displayed text; after completion the text stays.
func (s *Sequencer) SetStart(start bool) {
	if start == s.start {
		return
	}
	s.start = start
	s.stopTick()

	if !start {
		if !s.completed {
			s.shown = 0
			s.setTyping(false)
		}
		return
	}
	s.begin()
}

// SetText swaps the target text. If the previous run had completed the
// sequencer is re-armed, and types the new text straight away when the
// start signal is still raised.
func (s *Sequencer) SetText(text string) {
	next := []rune(text)
	if string(next) == string(s.text) {
		return
	}
	s.text = next
	if s.completed {
		s.completed = false
		s.shown = 0
		if s.start {
			s.begin()
		}
	}
}

// Stop cancels pending timers without touching the displayed text.
func (s *Sequencer) Stop() {
	s.stopTick()
	if s.blink != nil {
		s.blink.Stop()
		s.blink = nil
	}
}

func (s *Sequencer) begin() {
	if s.typing || s.completed {
		return
	}
	s.shown = 0
	s.setTyping(true)
	s.tick = s.loop.AfterFunc(WarmUp, s.step)
}

func (s *Sequencer) step() {
	if !s.typing {
		return
	}
	if s.shown < len(s.text) {
		s.shown++
		s.tick = s.loop.AfterFunc(s.delay, s.step)
		return
	}

	s.tick = nil
	s.completed = true
	s.setTyping(false)
	if s.onComplete != nil {
		s.onComplete()
	}
}

func (s *Sequencer) stopTick() {
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
}

func (s *Sequencer) setTyping(typing bool) {
	s.typing = typing
	if typing {
		s.cursorOn = true
		if s.blink == nil {
			s.blink = s.loop.Every(CursorBlink, func() { s.cursorOn = !s.cursorOn })
		}
		return
	}
	s.cursorOn = false
	if s.blink != nil {
		s.blink.Stop()
		s.blink = nil
	}
}
