package overlay

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yorkei04/portfolio/internal/dom"
	"github.com/yorkei04/portfolio/internal/eventloop"
	"github.com/yorkei04/portfolio/internal/state"
)

// Retry policy for anchors that are not in the document yet.
const (
	RetryDelay  = 100 * time.Millisecond
	MaxAttempts = 50
)

// SectionThreshold is the visible fraction at which a section trigger fires.
const SectionThreshold = 0.2

// ErrAnchorTimeout is reported by a SectionTrigger that gave up waiting for
// its section to appear.
var ErrAnchorTimeout = errors.New("overlay: anchor never appeared")

// Env is what triggers and positioners run against.
type Env struct {
	Loop   *eventloop.Loop
	Doc    dom.Document
	Win    *dom.Window
	Logger *log.Logger
}

func (e Env) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// Trigger decides when an overlay is shown.
type Trigger interface {
	// Active reports whether the trigger condition currently holds.
	Active() bool
	// Watch calls changed whenever Active may have flipped.
	Watch(env Env, changed func()) (cancel func())
}

// HoverTrigger is active while the hover selection equals ID.
type HoverTrigger struct {
	Hover *state.Hover
	ID    string
}

// Active implements Trigger.
func (t HoverTrigger) Active() bool { return t.Hover.Is(t.ID) }

// Watch implements Trigger.
func (t HoverTrigger) Watch(_ Env, changed func()) func() {
	return t.Hover.Subscribe(func(string, bool) { changed() })
}

// SectionTrigger is active while at least Threshold of the element matched
// by Selector is inside the viewport. Unlike the reveal flags it turns off
// again when the section scrolls away.
type SectionTrigger struct {
	Selector    string
	Threshold   float64
	RetryDelay  time.Duration
	MaxAttempts int

	active   bool
	attempts int
	err      error
}

// NewSectionTrigger returns a trigger with the default threshold and retry
// policy.
func NewSectionTrigger(selector string) *SectionTrigger {
	return &SectionTrigger{
		Selector:    selector,
		Threshold:   SectionThreshold,
		RetryDelay:  RetryDelay,
		MaxAttempts: MaxAttempts,
	}
}

// Active implements Trigger.
func (t *SectionTrigger) Active() bool { return t.active }

// Attempts reports how many lookups were needed to find the section.
func (t *SectionTrigger) Attempts() int { return t.attempts }

// Err returns ErrAnchorTimeout once the trigger has given up.
func (t *SectionTrigger) Err() error { return t.err }

// Watch implements Trigger. If the section is not in the document yet the
// lookup is retried every RetryDelay, at most MaxAttempts times in total.
// Every Watch starts a fresh attempt budget.
func (t *SectionTrigger) Watch(env Env, changed func()) func() {
	var (
		retry    eventloop.Timer
		removers []func()
		stopped  bool
	)
	t.active = false
	t.attempts = 0
	t.err = nil

	evaluate := func() {
		el, ok := env.Doc.Query(t.Selector)
		active := ok && dom.VisibleRatio(env.Doc, el) >= t.Threshold
		if active != t.active {
			t.active = active
			changed()
		}
	}

	var setup func()
	setup = func() {
		retry = nil
		if stopped {
			return
		}
		t.attempts++
		if _, ok := env.Doc.Query(t.Selector); !ok {
			if t.MaxAttempts > 0 && t.attempts >= t.MaxAttempts {
				t.err = ErrAnchorTimeout
				env.logger().Warn("overlay anchor never appeared", "selector", t.Selector, "attempts", t.attempts)
				return
			}
			retry = env.Loop.AfterFunc(t.RetryDelay, setup)
			return
		}
		removers = append(removers,
			env.Win.AddListener(dom.Scroll, evaluate),
			env.Win.AddListener(dom.Resize, evaluate),
		)
		evaluate()
	}
	setup()

	return func() {
		stopped = true
		if retry != nil {
			retry.Stop()
		}
		for _, r := range removers {
			r()
		}
		removers = nil
		if t.active {
			t.active = false
			changed()
		}
	}
}
