package web

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/page"
)

// ErrMissingAnchor is wrapped by VerifyAnchors for every selector that
// matches nothing.
var ErrMissingAnchor = errors.New("missing anchor")

// VerifyAnchors parses a rendered page and checks that every section and
// every element an overlay depends on is present exactly where the page
// script will look for it. Overlay figures must be direct children of the
// container their offset is computed against.
func VerifyAnchors(r io.Reader, defs []page.Definition) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	var errs []error
	want := func(selector string) {
		switch n := doc.Find(selector).Length(); {
		case n == 0:
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingAnchor, selector))
		case n > 1:
			errs = append(errs, fmt.Errorf("selector %s matches %d elements", selector, n))
		}
	}

	for _, id := range content.Sections() {
		want("#" + id)
	}
	want(page.PageContainer)
	want(page.SidebarContainer)
	for _, d := range defs {
		want(d.Anchor)
		want(d.Container + " > " + d.Element)
	}
	return errors.Join(errs...)
}
