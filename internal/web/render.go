package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/page"
	"github.com/yorkei04/portfolio/internal/typing"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet and script tree.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Timing is the hero pacing handed to the page script.
type Timing struct {
	StageGap    time.Duration
	WarmUp      time.Duration
	CursorBlink time.Duration
	Greeting    time.Duration
	Name        time.Duration
	Tagline     time.Duration
	Description time.Duration
}

var heroTiming = Timing{
	StageGap:    typing.StageGap,
	WarmUp:      typing.WarmUp,
	CursorBlink: typing.CursorBlink,
	Greeting:    typing.GreetingDelay,
	Name:        typing.NameDelay,
	Tagline:     typing.TaglineDelay,
	Description: typing.DescriptionRate,
}

type pageView struct {
	P              content.Portfolio
	Overlays       []page.Definition
	HeroParagraphs []string
	Timing         Timing
	ScrolledOffset int
	Year           int
}

// In returns the overlays positioned within container. Each figure is
// rendered as a child of its container so that its offset is measured from
// the same box the page script measures against.
func (v pageView) In(container string) []page.Definition {
	var out []page.Definition
	for _, d := range v.Overlays {
		if d.Container == container {
			out = append(out, d)
		}
	}
	return out
}

func newPageView(p content.Portfolio, now time.Time) pageView {
	return pageView{
		P:              p,
		Overlays:       page.Definitions(p),
		HeroParagraphs: typing.SplitParagraphs(p.Hero.Description),
		Timing:         heroTiming,
		ScrolledOffset: page.ScrolledOffset,
		Year:           now.Year(),
	}
}

type privacyView struct {
	Meta          content.Meta
	Title         string
	Name          string
	RetentionDays int
}

func newPrivacyView(p content.Portfolio, retention time.Duration) privacyView {
	meta := p.Meta
	meta.Title = "Privacy Policy"
	return privacyView{
		Meta:          meta,
		Title:         "Privacy Policy",
		Name:          p.Name,
		RetentionDays: int(retention / (24 * time.Hour)),
	}
}

// Templates parses every page and fragment for p.
func Templates(p content.Portfolio) (*template.Template, error) {
	funcs := template.FuncMap{
		"initials": content.Initials,
		"isLink":   content.IsLink,
		"mentions": content.Segments,
		"join":     strings.Join,
		"ms":       func(d time.Duration) int64 { return d.Milliseconds() },
		"json": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		"projectTitle": func(id string) string {
			pr, err := p.Project(id)
			if err != nil {
				return id
			}
			return pr.Title
		},
	}
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// RenderPage writes the portfolio page.
func RenderPage(w io.Writer, t *template.Template, p content.Portfolio, now time.Time) error {
	return t.ExecuteTemplate(w, "index.html", newPageView(p, now))
}

// RenderPrivacy writes the privacy policy page.
func RenderPrivacy(w io.Writer, t *template.Template, p content.Portfolio, retention time.Duration) error {
	return t.ExecuteTemplate(w, "privacy.html", newPrivacyView(p, retention))
}
