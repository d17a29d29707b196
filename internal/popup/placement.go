// Package popup implements the glossary popup: where the floating panel
// is placed relative to the trigger point, when it opens and closes, and
// what a resolved entry looks like when presented. The embedded site
// script mirrors these rules in the browser; this package is the
// authoritative model and is what the tests exercise.
package popup

// Placement constants, in logical pixels.
const (
	// PanelWidth is the fixed width of the anchored floating panel.
	PanelWidth = 320

	// PanelHeightEstimate approximates the rendered panel height for the
	// open-upward heuristic. The real height is not measured up front;
	// the imprecision is accepted.
	PanelHeightEstimate = 300

	// VerticalOffset separates the panel from the trigger point when
	// opening downward.
	VerticalOffset = 10

	// SmallViewportBreakpoint divides the full-screen modal layout from
	// the anchored panel layout.
	SmallViewportBreakpoint = 768
)

// Point is a position in viewport coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Viewport is the visible page area.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsSmall classifies the viewport. Callers must re-evaluate this on every
// resize; it is a level-triggered check, not a one-time one.
func (v Viewport) IsSmall() bool {
	return v.Width < SmallViewportBreakpoint
}

// Layout selects between the two popup presentations.
type Layout string

const (
	// LayoutPanel is the anchored floating panel used on large viewports.
	LayoutPanel Layout = "panel"
	// LayoutModal is the centered full-screen presentation used on small
	// viewports. The anchor point is ignored.
	LayoutModal Layout = "modal"
)

// Placement is the computed on-screen position for one popup instance.
// Left and Top are meaningful only for LayoutPanel.
type Placement struct {
	Layout Layout `json:"layout"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
}

// Compute determines where the popup appears for a trigger at anchor in
// the given viewport.
//
// Panel layout: the left edge is clamped so the panel never overflows the
// right viewport edge. Vertically, a trigger in the lower half opens
// upward by the estimated panel height, otherwise downward past a small
// offset. The top is intentionally never clamped against the viewport's
// top edge; a panel may render partly off-screen there.
func Compute(anchor Point, vp Viewport) Placement {
	if vp.IsSmall() {
		return Placement{Layout: LayoutModal}
	}

	left := anchor.X
	if max := vp.Width - PanelWidth; left > max {
		left = max
	}

	top := anchor.Y + VerticalOffset
	if anchor.Y > vp.Height/2 {
		top = anchor.Y - PanelHeightEstimate
	}

	return Placement{Layout: LayoutPanel, Left: left, Top: top}
}

// Contains reports whether a pointer-down at pt lands inside the popup's
// rendered bounds. The full-screen modal covers the viewport, so nothing
// is outside it; the panel uses its fixed width and estimated height.
func (p Placement) Contains(pt Point) bool {
	if p.Layout == LayoutModal {
		return true
	}
	return pt.X >= p.Left && pt.X < p.Left+PanelWidth &&
		pt.Y >= p.Top && pt.Y < p.Top+PanelHeightEstimate
}
