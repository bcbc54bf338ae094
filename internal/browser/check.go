package browser

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/dom"
	"github.com/yorkei04/portfolio/internal/eventloop"
	"github.com/yorkei04/portfolio/internal/overlay"
	"github.com/yorkei04/portfolio/internal/page"
	"github.com/yorkei04/portfolio/internal/web"
)

// Tolerance is how far, in pixels, the page script's overlay offset may
// drift from the model's before a step fails.
const Tolerance = 2.0

// settle is how much virtual time the model gets after each browser action.
const settle = 200 * time.Millisecond

// Step is one checked expectation.
type Step struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report is the outcome of Check.
type Report struct {
	URL   string `json:"url"`
	Steps []Step `json:"steps"`
}

// Failed counts the failed steps.
func (r Report) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if !s.OK {
			n++
		}
	}
	return n
}

type checker struct {
	tab     *Tab
	loop    *eventloop.Loop
	win     *dom.Window
	session *page.Session
	report  Report
	logger  *log.Logger
}

// Check drives the loaded page through every overlay trigger and compares
// what the page script shows with what the interaction model, measuring the
// same page, says it should show.
func Check(tab *Tab, url string, p content.Portfolio, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &checker{
		tab:     tab,
		loop:    eventloop.NewVirtual(time.Now()),
		win:     dom.NewWindow(),
		session: page.New(p),
		report:  Report{URL: url},
		logger:  logger,
	}

	html, err := tab.HTML()
	if err != nil {
		return c.report, err
	}
	c.record("anchors", web.VerifyAnchors(strings.NewReader(html), c.session.Definitions()))

	if err := tab.ScrollTo(0); err != nil {
		return c.report, err
	}
	c.session.Mount(overlay.Env{Loop: c.loop, Doc: tab, Win: c.win, Logger: logger})
	defer c.session.Unmount()

	if err := c.sync(); err != nil {
		return c.report, err
	}
	c.compare("top of page")

	for _, d := range c.session.Definitions() {
		var err error
		switch d.Trigger {
		case page.TriggerHover:
			err = c.checkHover(d)
		case page.TriggerSection:
			err = c.checkSection(d)
		}
		if err != nil {
			return c.report, err
		}
	}
	return c.report, nil
}

func (c *checker) checkHover(d page.Definition) error {
	if err := c.scrollToAnchor(d.Anchor); err != nil {
		return err
	}
	if err := c.tab.Hover(d.Anchor); err != nil {
		return err
	}
	c.session.Enter(d.Ref)
	if err := c.sync(); err != nil {
		return err
	}
	c.expectHovered("hover "+d.Ref, d.Name)

	if err := c.tab.Unhover(d.Anchor); err != nil {
		return err
	}
	c.session.Leave(d.Ref)
	if err := c.sync(); err != nil {
		return err
	}
	c.expectHidden("leave "+d.Ref, d.Name)
	return nil
}

func (c *checker) checkSection(d page.Definition) error {
	if err := c.scrollToAnchor(d.Anchor); err != nil {
		return err
	}
	if err := c.sync(); err != nil {
		return err
	}
	name := "section " + d.Ref
	if !slices.Contains(c.session.Layer().Visible(), d.Name) {
		c.record(name, fmt.Errorf("model does not show %s", d.Name))
		return nil
	}
	c.compare(name)
	return nil
}

// scrollToAnchor brings the anchor's top edge a little below the viewport top.
func (c *checker) scrollToAnchor(selector string) error {
	el, ok := c.tab.Query(selector)
	if !ok {
		return fmt.Errorf("anchor %s: %w", selector, web.ErrMissingAnchor)
	}
	return c.tab.ScrollTo(max(0, dom.DocumentTop(c.tab, el)-100))
}

// sync replays the browser's scroll into the model and lets its timers run.
func (c *checker) sync() error {
	c.win.Dispatch(dom.Scroll)
	c.loop.Advance(settle)
	return c.tab.Wait(settle)
}

func (c *checker) record(name string, err error) {
	s := Step{Name: name, OK: err == nil}
	if err != nil {
		s.Detail = err.Error()
		c.logger.Warn("check failed", "step", name, "err", err)
	} else {
		c.logger.Debug("check passed", "step", name)
	}
	c.report.Steps = append(c.report.Steps, s)
}

// expectHovered checks that overlayName is the only hover overlay shown.
// Section overlays may be visible too, depending on where the page is.
func (c *checker) expectHovered(name, overlayName string) {
	var hovered []string
	for _, d := range c.session.Definitions() {
		if d.Trigger == page.TriggerHover && slices.Contains(c.session.Layer().Visible(), d.Name) {
			hovered = append(hovered, d.Name)
		}
	}
	if !slices.Equal(hovered, []string{overlayName}) {
		c.record(name, fmt.Errorf("model shows %v, want [%s]", hovered, overlayName))
		return
	}
	c.compare(name)
}

func (c *checker) expectHidden(name, overlayName string) {
	if slices.Contains(c.session.Layer().Visible(), overlayName) {
		c.record(name, fmt.Errorf("model still shows %s", overlayName))
		return
	}
	c.compare(name)
}

func (c *checker) compare(name string) {
	got, err := c.tab.Overlays(c.session.Definitions())
	if err != nil {
		c.record(name, err)
		return
	}
	c.record(name, Compare(c.session.Layer().Views(), got))
}

// Compare reports every overlay whose page state disagrees with the model.
func Compare(model []overlay.View, shown []Overlay) error {
	byName := make(map[string]Overlay, len(shown))
	for _, o := range shown {
		byName[o.Name] = o
	}
	var diffs []string
	for _, v := range model {
		o, ok := byName[v.Name]
		switch {
		case !ok:
			diffs = append(diffs, fmt.Sprintf("%s: not on page", v.Name))
		case o.Visible != v.Visible:
			diffs = append(diffs, fmt.Sprintf("%s: page visible=%t, model visible=%t", v.Name, o.Visible, v.Visible))
		case v.Visible && math.Abs(o.Top-v.Top) > Tolerance:
			diffs = append(diffs, fmt.Sprintf("%s: page top %.1f, model top %.1f", v.Name, o.Top, v.Top))
		}
	}
	if len(diffs) == 0 {
		return nil
	}
	return fmt.Errorf("overlays differ: %s", strings.Join(diffs, "; "))
}
