// Package browser drives the portfolio page in headless Chrome. A Tab
// satisfies dom.Document, so the same interaction model that the tests run
// against an in-memory tree can be pointed at the real rendered page.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"

	"github.com/yorkei04/portfolio/internal/dom"
	"github.com/yorkei04/portfolio/internal/page"
)

// Options configure Open.
type Options struct {
	// Timeout bounds the whole browser session. Defaults to one minute.
	Timeout time.Duration
	Width   int
	Height  int
	Logger  *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = time.Minute
	}
	if o.Width == 0 {
		o.Width = 1440
	}
	if o.Height == 0 {
		o.Height = 900
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Tab is one loaded page.
type Tab struct {
	ctx    context.Context
	cancel []context.CancelFunc
	logger *log.Logger
}

// Open starts a headless browser, loads url and waits for the page body.
func Open(ctx context.Context, url string, opts Options) (*Tab, error) {
	opts = opts.withDefaults()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(opts.Width, opts.Height),
		)...,
	)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, opts.Timeout)

	t := &Tab{
		ctx:    browserCtx,
		cancel: []context.CancelFunc{cancelTimeout, cancelBrowser, cancelAlloc},
		logger: opts.Logger,
	}
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("load %s: %w", url, err)
	}
	opts.Logger.Debug("page loaded", "url", url)
	return t, nil
}

// Close shuts the browser down.
func (t *Tab) Close() {
	for _, c := range t.cancel {
		c()
	}
}

func (t *Tab) eval(expr string, out any) error {
	return chromedp.Run(t.ctx, chromedp.Evaluate(expr, out))
}

// Query reports whether selector matches. The returned element re-measures
// itself on every Rect call.
func (t *Tab) Query(selector string) (dom.Element, bool) {
	var found bool
	if err := t.eval(fmt.Sprintf(`document.querySelector(%s) !== null`, strconv.Quote(selector)), &found); err != nil {
		t.logger.Warn("query failed", "selector", selector, "err", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return element{tab: t, selector: selector}, true
}

// ScrollY returns window.scrollY.
func (t *Tab) ScrollY() float64 {
	var y float64
	if err := t.eval(`window.scrollY`, &y); err != nil {
		t.logger.Warn("reading scroll position", "err", err)
	}
	return y
}

// ViewportHeight returns window.innerHeight.
func (t *Tab) ViewportHeight() float64 {
	var h float64
	if err := t.eval(`window.innerHeight`, &h); err != nil {
		t.logger.Warn("reading viewport height", "err", err)
	}
	return h
}

// ScrollTo scrolls the window to document offset y and lets the page's
// scroll listeners run.
func (t *Tab) ScrollTo(y float64) error {
	expr := fmt.Sprintf(`window.scrollTo(0, %s)`, strconv.FormatFloat(y, 'f', -1, 64))
	return chromedp.Run(t.ctx,
		chromedp.Evaluate(expr, nil),
		chromedp.Sleep(100*time.Millisecond),
	)
}

// Hover sends mouseenter to the element matching selector.
func (t *Tab) Hover(selector string) error {
	return t.dispatch(selector, "mouseenter")
}

// Unhover sends mouseleave to the element matching selector.
func (t *Tab) Unhover(selector string) error {
	return t.dispatch(selector, "mouseleave")
}

func (t *Tab) dispatch(selector, event string) error {
	var ok bool
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return false;
		el.dispatchEvent(new MouseEvent(%s));
		return true;
	})()`, strconv.Quote(selector), strconv.Quote(event))
	if err := t.eval(expr, &ok); err != nil {
		return fmt.Errorf("%s %s: %w", event, selector, err)
	}
	if !ok {
		return fmt.Errorf("%s %s: no such element", event, selector)
	}
	return chromedp.Run(t.ctx, chromedp.Sleep(50*time.Millisecond))
}

// Wait sleeps inside the page's context.
func (t *Tab) Wait(d time.Duration) error {
	return chromedp.Run(t.ctx, chromedp.Sleep(d))
}

// HTML returns the current document markup.
func (t *Tab) HTML() (string, error) {
	var html string
	if err := chromedp.Run(t.ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	return html, nil
}

// Overlay is an overlay figure as the page script left it.
type Overlay struct {
	Name    string  `json:"name"`
	Visible bool    `json:"visible"`
	Top     float64 `json:"top"`
}

// Overlays reads the figure of every definition. Top is where the figure
// actually sits, measured from the top of its container.
func (t *Tab) Overlays(defs []page.Definition) ([]Overlay, error) {
	expr, err := overlaysExpr(defs)
	if err != nil {
		return nil, err
	}
	var out []Overlay
	if err := t.eval(expr, &out); err != nil {
		return nil, fmt.Errorf("read overlays: %w", err)
	}
	return out, nil
}

func overlaysExpr(defs []page.Definition) (string, error) {
	b, err := json.Marshal(defs)
	if err != nil {
		return "", fmt.Errorf("encode definitions: %w", err)
	}
	return fmt.Sprintf(`%s.flatMap(def => {
		const el = document.querySelector(def.element);
		if (!el) return [];
		const c = document.querySelector(def.container);
		const visible = !el.hidden;
		const top = visible && c ? el.getBoundingClientRect().top - c.getBoundingClientRect().top : 0;
		return [{name: def.name, visible: visible, top: top}];
	})`, b), nil
}

type element struct {
	tab      *Tab
	selector string
}

func (e element) Rect() dom.Rect {
	var r dom.Rect
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return {Top: 0, Left: 0, Width: 0, Height: 0};
		const r = el.getBoundingClientRect();
		return {Top: r.top, Left: r.left, Width: r.width, Height: r.height};
	})()`, strconv.Quote(e.selector))
	if err := e.tab.eval(expr, &r); err != nil {
		e.tab.logger.Warn("measuring element", "selector", e.selector, "err", err)
	}
	return r
}

var _ dom.Document = (*Tab)(nil)
