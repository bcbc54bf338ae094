package overlay

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkei04/portfolio/internal/dom"
	"github.com/yorkei04/portfolio/internal/eventloop"
	"github.com/yorkei04/portfolio/internal/state"
)

type fixture struct {
	loop  *eventloop.Loop
	tree  *dom.Tree
	win   *dom.Window
	hover *state.Hover
	env   Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		loop:  eventloop.NewVirtual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		tree:  dom.NewTree(800),
		win:   dom.NewWindow(),
		hover: state.NewHover(),
	}
	f.env = Env{Loop: f.loop, Doc: f.tree, Win: f.win, Logger: log.New(io.Discard)}
	return f
}

func (f *fixture) scroll(y float64) {
	f.tree.ScrollTo(y)
	f.win.Dispatch(dom.Scroll)
}

func (f *fixture) projectOverlay(id string) *Positioner {
	return New(Config{
		Name:      "project-" + id,
		Anchor:    `[data-project-id="` + id + `"]`,
		Container: "#page",
		Align:     AlignTop,
		Trigger:   HoverTrigger{Hover: f.hover, ID: id},
	})
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name          string
		align         Align
		anchorTop     float64
		anchorHeight  float64
		overlayHeight float64
		containerTop  float64
		want          float64
	}{
		{"top aligned", AlignTop, 1500, 300, 0, 100, 1400},
		{"top clamps at zero", AlignTop, 50, 300, 0, 100, 0},
		{"centered", AlignCenter, 1000, 600, 400, 200, 900},
		{"centered clamps at zero", AlignCenter, 0, 100, 800, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offset(tt.align, tt.anchorTop, tt.anchorHeight, tt.overlayHeight, tt.containerTop)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestParseAlign(t *testing.T) {
	assert.Equal(t, AlignCenter, ParseAlign("center"))
	assert.Equal(t, AlignTop, ParseAlign("top"))
	assert.Equal(t, AlignTop, ParseAlign(""))
	assert.Equal(t, "center", AlignCenter.String())
}

func TestHoverOverlay_HiddenUntilHovered(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(0, 5000, "#page")
	f.tree.Add(2400, 500, `[data-project-id="2"]`)

	p := f.projectOverlay("2")
	p.Mount(f.env)

	assert.False(t, p.Visible())
	_, ok := p.Top()
	assert.False(t, ok)
	assert.Equal(t, 0, f.win.Listeners(dom.Scroll))

	f.hover.Enter("2")
	require.True(t, p.Visible())
	top, ok := p.Top()
	require.True(t, ok)
	assert.Equal(t, 2400.0, top)
	assert.Equal(t, 1, f.win.Listeners(dom.Scroll))
	assert.Equal(t, 1, f.win.Listeners(dom.Resize))

	f.hover.Leave("2")
	assert.False(t, p.Visible())
	assert.Equal(t, View{Name: "project-2"}, p.View())
	assert.Equal(t, 0, f.win.Listeners(dom.Scroll))
	assert.Equal(t, 0, f.win.Listeners(dom.Resize))
}

func TestHoverOverlay_OffsetIndependentOfScroll(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(64, 5000, "#page")
	card := f.tree.Add(2400, 500, `[data-project-id="1"]`)

	p := f.projectOverlay("1")
	p.Mount(f.env)
	f.hover.Enter("1")

	f.scroll(1800)
	top, _ := p.Top()
	assert.Equal(t, 2336.0, top)

	card.Move(2600)
	f.win.Dispatch(dom.Resize)
	top, _ = p.Top()
	assert.Equal(t, 2536.0, top)
}

func TestHoverOverlay_MissingAnchorSkipsSilently(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(0, 5000, "#page")

	p := f.projectOverlay("9")
	p.Mount(f.env)
	f.hover.Enter("9")

	assert.True(t, p.Visible())
	top, ok := p.Top()
	assert.True(t, ok)
	assert.Equal(t, 0.0, top)

	f.tree.Add(3000, 100, `[data-project-id="9"]`)
	f.scroll(10)
	top, _ = p.Top()
	assert.Equal(t, 3000.0, top)
}

func TestSectionOverlay_CenteredWhileInView(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(900, 4000, "aside").SetWidth(800, 500)
	f.tree.Add(1000, 1000, "#about")

	p := New(Config{
		Name:      "about",
		Anchor:    "#about",
		Container: "aside",
		Element:   ".robocon-container",
		Align:     AlignCenter,
		Trigger:   NewSectionTrigger("#about"),
	})
	p.Mount(f.env)
	assert.False(t, p.Visible(), "about starts below the fold")

	// 19% visible.
	f.scroll(390)
	assert.False(t, p.Visible())

	f.scroll(500)
	require.True(t, p.Visible())
	// No rendered overlay yet: estimate from the column width.
	// center 1500 - (500-48+100)/2 = 1224, minus column top 900.
	top, _ := p.Top()
	assert.Equal(t, 324.0, top)

	f.tree.Add(0, 400, ".robocon-container")
	f.scroll(600)
	top, _ = p.Top()
	assert.Equal(t, 400.0, top)

	f.scroll(2500)
	assert.False(t, p.Visible())
}

func TestSectionOverlay_ZeroHeightOverlayUsesEstimate(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(900, 4000, "aside").SetWidth(800, 500)
	f.tree.Add(1000, 1000, "#about")
	// A hidden figure is in the document but has no height.
	f.tree.Add(0, 0, ".robocon-container")

	p := New(Config{
		Name:      "about",
		Anchor:    "#about",
		Container: "aside",
		Element:   ".robocon-container",
		Align:     AlignCenter,
		Trigger:   NewSectionTrigger("#about"),
	})
	p.Mount(f.env)
	f.scroll(500)
	require.True(t, p.Visible())

	top, _ := p.Top()
	assert.Equal(t, 324.0, top)
}

func TestSectionOverlay_RetriesUntilAnchorAppears(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(0, 4000, "aside")

	trig := NewSectionTrigger("#about")
	p := New(Config{Name: "about", Anchor: "#about", Container: "aside", Align: AlignCenter, Trigger: trig})
	p.Mount(f.env)

	f.loop.Advance(3 * RetryDelay)
	assert.Equal(t, 4, trig.Attempts())

	f.tree.Add(100, 600, "#about")
	f.loop.Advance(RetryDelay)
	assert.Equal(t, 5, trig.Attempts())
	assert.True(t, p.Visible())
	assert.False(t, p.GaveUp())

	f.loop.Advance(time.Minute)
	assert.Equal(t, 5, trig.Attempts())
}

func TestSectionOverlay_GivesUpAfterMaxAttempts(t *testing.T) {
	f := newFixture(t)
	trig := NewSectionTrigger("#about")
	trig.MaxAttempts = 3
	p := New(Config{Name: "about", Anchor: "#about", Container: "aside", Trigger: trig})
	p.Mount(f.env)

	f.loop.Advance(time.Minute)
	assert.Equal(t, 3, trig.Attempts())
	assert.ErrorIs(t, trig.Err(), ErrAnchorTimeout)
	assert.True(t, p.GaveUp())
	assert.False(t, p.Visible())
	assert.Equal(t, 0, f.loop.Pending())
}

func TestSectionOverlay_RemountStartsFreshRetries(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(0, 4000, "aside")
	trig := NewSectionTrigger("#about")
	trig.MaxAttempts = 3
	p := New(Config{Name: "about", Anchor: "#about", Container: "aside", Trigger: trig})

	p.Mount(f.env)
	f.loop.Advance(150 * time.Millisecond)
	assert.Equal(t, 2, trig.Attempts())
	p.Unmount()

	p.Mount(f.env)
	assert.Equal(t, 1, trig.Attempts())
	assert.False(t, p.GaveUp())
	assert.Equal(t, 1, f.loop.Pending())

	f.tree.Add(100, 600, "#about")
	f.loop.Advance(RetryDelay)
	assert.Equal(t, 2, trig.Attempts())
	assert.True(t, p.Visible())
	assert.False(t, p.GaveUp())
}

func TestSectionOverlay_RemountAfterGiveUp(t *testing.T) {
	f := newFixture(t)
	trig := NewSectionTrigger("#about")
	trig.MaxAttempts = 2
	p := New(Config{Name: "about", Anchor: "#about", Container: "aside", Trigger: trig})

	p.Mount(f.env)
	f.loop.Advance(time.Minute)
	require.True(t, p.GaveUp())
	p.Unmount()

	f.tree.Add(0, 4000, "aside")
	f.tree.Add(100, 600, "#about")
	p.Mount(f.env)
	assert.False(t, p.GaveUp())
	assert.NoError(t, trig.Err())
	assert.True(t, p.Visible())
}

func TestSectionOverlay_UnmountCancelsRetry(t *testing.T) {
	f := newFixture(t)
	trig := NewSectionTrigger("#about")
	p := New(Config{Name: "about", Anchor: "#about", Container: "aside", Trigger: trig})
	p.Mount(f.env)
	p.Unmount()

	assert.Equal(t, 0, f.loop.Pending())
	f.loop.Advance(time.Minute)
	assert.Equal(t, 1, trig.Attempts())
}

func TestLayer_OnlyHoveredProjectVisible(t *testing.T) {
	f := newFixture(t)
	f.tree.Add(0, 8000, "#page")
	for i, id := range []string{"1", "2", "3", "4"} {
		f.tree.Add(float64(2000+i*600), 500, `[data-project-id="`+id+`"]`)
	}
	layer := NewLayer(f.projectOverlay("1"), f.projectOverlay("2"), f.projectOverlay("3"), f.projectOverlay("4"))
	layer.Mount(f.env)
	assert.Empty(t, layer.Visible())

	f.scroll(2400)
	f.hover.Enter("2")
	assert.Equal(t, []string{"project-2"}, layer.Visible())

	f.hover.Enter("3")
	assert.Equal(t, []string{"project-3"}, layer.Visible())

	for _, v := range layer.Views() {
		assert.GreaterOrEqual(t, v.Top, 0.0)
		if v.Name != "project-3" {
			assert.False(t, v.Visible)
		}
	}

	p, ok := layer.Get("project-3")
	require.True(t, ok)
	top, _ := p.Top()
	assert.Equal(t, 3200.0, top)

	layer.Unmount()
	assert.Empty(t, layer.Visible())
	assert.Equal(t, 0, f.win.Listeners(dom.Scroll))
}
