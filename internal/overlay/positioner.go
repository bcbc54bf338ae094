// Package overlay keeps decorative images lined up with the part of the page
// they illustrate.
//
// A Positioner owns one overlay. While its Trigger holds it is visible and
// its vertical offset tracks the anchor element, recomputed on every scroll
// and resize. When the trigger drops the overlay is hidden, its listeners
// are removed and its offset is no longer meaningful.
package overlay

import (
	"github.com/yorkei04/portfolio/internal/dom"
)

// Align selects how the overlay lines up with its anchor.
type Align int

const (
	// AlignTop puts the overlay's top edge level with the anchor's.
	AlignTop Align = iota
	// AlignCenter centers the overlay on the anchor's vertical midpoint.
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "top"
}

// ParseAlign maps "center" to AlignCenter and anything else to AlignTop.
func ParseAlign(s string) Align {
	if s == "center" {
		return AlignCenter
	}
	return AlignTop
}

// Overlay padding and caption allowance used to estimate the height of an
// overlay that has not been rendered yet.
const (
	estimatePadding = 48
	estimateCaption = 100
)

// Offset computes the overlay's top relative to the container, never below
// zero. anchorTop and containerTop are document-relative.
func Offset(align Align, anchorTop, anchorHeight, overlayHeight, containerTop float64) float64 {
	top := anchorTop
	if align == AlignCenter {
		top = anchorTop + anchorHeight/2 - overlayHeight/2
	}
	return max(0, top-containerTop)
}

// Config describes one overlay.
type Config struct {
	Name      string
	Anchor    string
	Container string
	// Element selects the rendered overlay itself, used to measure its
	// height for AlignCenter. Optional.
	Element string
	Align   Align
	Trigger Trigger
}

// View is a positioner's render state.
type View struct {
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Top     float64 `json:"top"`
}

// Positioner aligns one overlay with its anchor.
type Positioner struct {
	cfg     Config
	env     Env
	mounted bool
	visible bool
	top     float64

	cancelTrigger func()
	removers      []func()
}

// New returns an unmounted positioner.
func New(cfg Config) *Positioner {
	return &Positioner{cfg: cfg}
}

// Name returns the configured name.
func (p *Positioner) Name() string { return p.cfg.Name }

// Config returns the configuration the positioner was built with.
func (p *Positioner) Config() Config { return p.cfg }

// Mount starts watching the trigger.
func (p *Positioner) Mount(env Env) {
	if p.mounted {
		return
	}
	p.env = env
	p.mounted = true
	p.cancelTrigger = p.cfg.Trigger.Watch(env, p.sync)
	p.sync()
}

// Unmount stops watching and hides the overlay.
func (p *Positioner) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	if p.cancelTrigger != nil {
		p.cancelTrigger()
		p.cancelTrigger = nil
	}
	p.hide()
}

// Visible reports whether the overlay is rendered.
func (p *Positioner) Visible() bool { return p.visible }

// Top returns the current offset. ok is false while the overlay is hidden.
func (p *Positioner) Top() (top float64, ok bool) {
	if !p.visible {
		return 0, false
	}
	return p.top, true
}

// View returns the render state. Hidden overlays report a zero offset.
func (p *Positioner) View() View {
	top, _ := p.Top()
	return View{Name: p.cfg.Name, Visible: p.visible, Top: top}
}

// GaveUp reports whether the trigger stopped waiting for its anchor.
func (p *Positioner) GaveUp() bool {
	t, ok := p.cfg.Trigger.(interface{ Err() error })
	return ok && t.Err() != nil
}

func (p *Positioner) sync() {
	if !p.mounted {
		return
	}
	active := p.cfg.Trigger.Active()
	switch {
	case active && !p.visible:
		p.visible = true
		p.update()
		p.removers = append(p.removers,
			p.env.Win.AddListener(dom.Resize, p.update),
			p.env.Win.AddListener(dom.Scroll, p.update),
		)
	case !active && p.visible:
		p.hide()
	}
}

func (p *Positioner) hide() {
	p.visible = false
	p.top = 0
	for _, r := range p.removers {
		r()
	}
	p.removers = nil
}

// update recomputes the offset. Missing elements leave it untouched.
func (p *Positioner) update() {
	if !p.visible {
		return
	}
	doc := p.env.Doc
	anchor, ok := doc.Query(p.cfg.Anchor)
	if !ok {
		return
	}
	container, ok := doc.Query(p.cfg.Container)
	if !ok {
		return
	}

	a := anchor.Rect()
	c := container.Rect()
	var overlayHeight float64
	if p.cfg.Align == AlignCenter {
		overlayHeight = c.Width - estimatePadding + estimateCaption
		if p.cfg.Element != "" {
			if el, ok := doc.Query(p.cfg.Element); ok {
				if h := el.Rect().Height; h > 0 {
					overlayHeight = h
				}
			}
		}
	}

	p.top = Offset(p.cfg.Align, doc.ScrollY()+a.Top, a.Height, overlayHeight, doc.ScrollY()+c.Top)
}
