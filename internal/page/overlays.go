package page

import (
	"fmt"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/overlay"
	"github.com/yorkei04/portfolio/internal/state"
)

// Containers overlays are positioned within.
const (
	PageContainer    = "#page"
	SidebarContainer = "aside"
)

// Trigger kinds in a Definition.
const (
	TriggerHover   = "hover"
	TriggerSection = "section"
)

// Definition is the browser-facing description of one overlay: which image
// to show, which element it follows and when.
type Definition struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption"`
	Anchor    string `json:"anchor"`
	Container string `json:"container"`
	Element   string `json:"element"`
	Align     string `json:"align"`
	Trigger   string `json:"trigger"`
	// Ref is the hovered entry id for hover triggers and the section id for
	// section triggers.
	Ref       string  `json:"ref"`
	Threshold float64 `json:"threshold,omitempty"`
}

// AnchorSelector returns the selector for an entry of the given kind.
func AnchorSelector(kind, ref string) string {
	switch kind {
	case content.AnchorSection:
		return "#" + ref
	default:
		return fmt.Sprintf(`[data-%s-id=%q]`, kind, ref)
	}
}

// ElementSelector returns the selector of a rendered overlay.
func ElementSelector(name string) string {
	return fmt.Sprintf(`[data-overlay=%q]`, name)
}

// Definitions describes every showcase in p as an overlay.
func Definitions(p content.Portfolio) []Definition {
	defs := make([]Definition, 0, len(p.Showcases))
	for _, s := range p.Showcases {
		d := Definition{
			Name:      s.Name,
			Image:     s.Image,
			Alt:       s.Alt,
			Caption:   s.Caption,
			Anchor:    AnchorSelector(s.Anchor, s.Ref),
			Container: PageContainer,
			Element:   ElementSelector(s.Name),
			Align:     overlay.ParseAlign(s.Align).String(),
			Trigger:   TriggerHover,
			Ref:       s.Ref,
		}
		if s.Anchor == content.AnchorSection {
			d.Container = SidebarContainer
			d.Trigger = TriggerSection
			d.Threshold = overlay.SectionThreshold
		}
		defs = append(defs, d)
	}
	return defs
}

// Positioners builds an unmounted positioner per definition. Hover triggers
// read hover.
func Positioners(defs []Definition, hover *state.Hover) []*overlay.Positioner {
	ps := make([]*overlay.Positioner, 0, len(defs))
	for _, d := range defs {
		var trig overlay.Trigger
		if d.Trigger == TriggerSection {
			trig = overlay.NewSectionTrigger(d.Anchor)
		} else {
			trig = overlay.HoverTrigger{Hover: hover, ID: d.Ref}
		}
		ps = append(ps, overlay.New(overlay.Config{
			Name:      d.Name,
			Anchor:    d.Anchor,
			Container: d.Container,
			Element:   d.Element,
			Align:     overlay.ParseAlign(d.Align),
			Trigger:   trig,
		}))
	}
	return ps
}
