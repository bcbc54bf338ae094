package typing

import (
	"strings"
	"time"

	"github.com/yorkei04/portfolio/internal/eventloop"
)

// Stage pacing for the hero intro.
const (
	StageGap        = 300 * time.Millisecond
	GreetingDelay   = 20 * time.Millisecond
	NameDelay       = 25 * time.Millisecond
	TaglineDelay    = 15 * time.Millisecond
	DescriptionRate = 10 * time.Millisecond
)

// Hero stages, in order.
const (
	StageIdle = iota - 1
	StageGreeting
	StageName
	StageTagline
	StageDescription
	StageSocial
)

// HeroText is the copy the hero section types out.
type HeroText struct {
	Greeting    string
	Name        string
	Tagline     string
	Description string
}

// HeroView is what the hero section currently shows.
type HeroView struct {
	Stage         int      `json:"stage"`
	Greeting      string   `json:"greeting"`
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Paragraphs    []string `json:"paragraphs"`
	Cursor        bool     `json:"cursor"`
	SocialVisible bool     `json:"socialVisible"`
}

// Hero chains greeting, name, tagline and each description paragraph, with
// StageGap between them, then reveals the social links.
type Hero struct {
	loop       *eventloop.Loop
	greeting   *Sequencer
	name       *Sequencer
	tagline    *Sequencer
	paragraphs []*Sequencer

	stage     int
	paragraph int
	pending   []eventloop.Timer
	onDone    func()
}

// SplitParagraphs splits a description on blank lines.
func SplitParagraphs(description string) []string {
	var out []string
	for _, p := range strings.Split(description, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewHero builds the chain. onDone runs once the social links appear and
// may be nil.
func NewHero(loop *eventloop.Loop, text HeroText, onDone func()) *Hero {
	h := &Hero{loop: loop, stage: StageIdle, onDone: onDone}
	h.greeting = New(loop, text.Greeting, GreetingDelay, h.after(func() { h.setStage(StageName) }))
	h.name = New(loop, text.Name, NameDelay, h.after(func() { h.setStage(StageTagline) }))
	h.tagline = New(loop, text.Tagline, TaglineDelay, h.after(func() { h.setStage(StageDescription) }))

	paras := SplitParagraphs(text.Description)
	for i, p := range paras {
		i := i
		last := i == len(paras)-1
		h.paragraphs = append(h.paragraphs, New(loop, p, DescriptionRate, h.after(func() {
			if last {
				h.setStage(StageSocial)
				return
			}
			h.paragraph = i + 1
			h.apply()
		})))
	}
	return h
}

// Mount starts the intro StageGap from now.
func (h *Hero) Mount() {
	h.pending = append(h.pending, h.loop.AfterFunc(StageGap, func() { h.setStage(StageGreeting) }))
}

// Unmount cancels every pending timer.
func (h *Hero) Unmount() {
	for _, t := range h.pending {
		t.Stop()
	}
	h.pending = nil
	for _, s := range h.sequencers() {
		s.Stop()
	}
}

// Stage returns the current stage.
func (h *Hero) Stage() int { return h.stage }

// View returns the current display state.
func (h *Hero) View() HeroView {
	v := HeroView{
		Stage:         h.stage,
		Greeting:      h.greeting.Text(),
		SocialVisible: h.stage >= StageSocial,
	}
	if h.stage >= StageName {
		v.Name = h.name.Text()
	}
	if h.stage >= StageTagline {
		v.Tagline = h.tagline.Text()
	}
	if h.stage >= StageDescription {
		for i := 0; i <= h.paragraph && i < len(h.paragraphs); i++ {
			v.Paragraphs = append(v.Paragraphs, h.paragraphs[i].Text())
		}
	}
	for _, s := range h.sequencers() {
		if s.CursorVisible() {
			v.Cursor = true
		}
	}
	return v
}

func (h *Hero) sequencers() []*Sequencer {
	return append([]*Sequencer{h.greeting, h.name, h.tagline}, h.paragraphs...)
}

// after wraps a stage transition so it runs StageGap after a completion.
func (h *Hero) after(fn func()) func() {
	return func() {
		h.pending = append(h.pending, h.loop.AfterFunc(StageGap, fn))
	}
}

func (h *Hero) setStage(stage int) {
	if stage == StageDescription && len(h.paragraphs) == 0 {
		stage = StageSocial
	}
	h.stage = stage
	h.apply()
	if stage == StageSocial && h.onDone != nil {
		h.onDone()
	}
}

func (h *Hero) apply() {
	h.greeting.SetStart(h.stage == StageGreeting)
	h.name.SetStart(h.stage == StageName)
	h.tagline.SetStart(h.stage == StageTagline)
	for i, p := range h.paragraphs {
		p.SetStart(h.stage == StageDescription && i == h.paragraph)
	}
}
