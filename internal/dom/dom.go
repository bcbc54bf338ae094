// Package dom describes the slice of a rendered page that the interaction
// model needs: element lookup by selector, bounding boxes, the scroll
// position and window events.
//
// Two implementations exist. Tree in this package is an in-memory page used
// by tests; internal/browser backs Document with a headless Chrome tab.
package dom

// Rect is an element's bounding box relative to the viewport, the way
// getBoundingClientRect reports it.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom returns the viewport-relative bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Element is a node found in a Document.
type Element interface {
	Rect() Rect
}

// Document is the queryable page.
type Document interface {
	// Query returns the first element matching selector, or false.
	Query(selector string) (Element, bool)
	// ScrollY is the vertical scroll offset of the viewport.
	ScrollY() float64
	// ViewportHeight is the height of the visible area.
	ViewportHeight() float64
}

// DocumentTop converts el's viewport-relative top edge to a document offset.
func DocumentTop(doc Document, el Element) float64 {
	return doc.ScrollY() + el.Rect().Top
}

// VisibleRatio returns the fraction of el's height inside the viewport, in
// [0, 1]. Zero-height elements count as visible when their top edge is.
func VisibleRatio(doc Document, el Element) float64 {
	r := el.Rect()
	vh := doc.ViewportHeight()
	if r.Height <= 0 {
		if r.Top >= 0 && r.Top <= vh {
			return 1
		}
		return 0
	}
	top := max(r.Top, 0)
	bottom := min(r.Bottom(), vh)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / r.Height
}
