package popup

import "testing"

func TestComputeClampsRightEdge(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 768}

	for _, x := range []int{0, 100, 500, 704, 705, 900, 1024} {
		p := Compute(Point{X: x, Y: 100}, vp)
		if p.Left > vp.Width-PanelWidth {
			t.Errorf("x=%d: left %d overflows right edge", x, p.Left)
		}
		if p.Left < 0 {
			t.Errorf("x=%d: negative left %d", x, p.Left)
		}
		if x <= vp.Width-PanelWidth && p.Left != x {
			t.Errorf("x=%d: expected unclamped left, got %d", x, p.Left)
		}
	}
}

func TestComputeVerticalHeuristic(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 768}

	// Upper half opens downward.
	p := Compute(Point{X: 10, Y: 50}, vp)
	if p.Top != 50+VerticalOffset {
		t.Errorf("expected downward open at %d, got %d", 50+VerticalOffset, p.Top)
	}
	// Exactly the midpoint still opens downward.
	p = Compute(Point{X: 10, Y: 384}, vp)
	if p.Top != 384+VerticalOffset {
		t.Errorf("midpoint: expected %d, got %d", 384+VerticalOffset, p.Top)
	}
	// Lower half opens upward.
	p = Compute(Point{X: 10, Y: 700}, vp)
	if p.Top != 700-PanelHeightEstimate {
		t.Errorf("expected upward open at %d, got %d", 700-PanelHeightEstimate, p.Top)
	}
}

func TestComputeNoTopClamp(t *testing.T) {
	// On a short viewport (midpoint below the panel height estimate), a
	// trigger just past the midpoint opens upward and places the panel
	// partly off-screen. That is the specified behavior.
	vp := Viewport{Width: 1024, Height: 500}
	p := Compute(Point{X: 10, Y: 260}, vp)
	if p.Top != 260-PanelHeightEstimate {
		t.Errorf("expected top %d, got %d", 260-PanelHeightEstimate, p.Top)
	}
	if p.Top >= 0 {
		t.Errorf("expected negative top in this scenario, got %d", p.Top)
	}
}

func TestComputeSmallViewportIsModal(t *testing.T) {
	p := Compute(Point{X: 100, Y: 100}, Viewport{Width: 480, Height: 800})
	if p.Layout != LayoutModal {
		t.Fatalf("expected modal layout, got %s", p.Layout)
	}

	// The breakpoint itself is a large viewport.
	p = Compute(Point{X: 100, Y: 100}, Viewport{Width: SmallViewportBreakpoint, Height: 800})
	if p.Layout != LayoutPanel {
		t.Errorf("expected panel layout at the breakpoint, got %s", p.Layout)
	}
}

func TestContains(t *testing.T) {
	p := Placement{Layout: LayoutPanel, Left: 100, Top: 50}

	inside := []Point{{100, 50}, {250, 200}, {100 + PanelWidth - 1, 50 + PanelHeightEstimate - 1}}
	for _, pt := range inside {
		if !p.Contains(pt) {
			t.Errorf("expected %v inside panel", pt)
		}
	}

	outside := []Point{{99, 50}, {100, 49}, {100 + PanelWidth, 50}, {100, 50 + PanelHeightEstimate}, {0, 0}}
	for _, pt := range outside {
		if p.Contains(pt) {
			t.Errorf("expected %v outside panel", pt)
		}
	}

	// The modal covers the viewport; no point is outside it.
	modal := Placement{Layout: LayoutModal}
	if !modal.Contains(Point{X: 5, Y: 5}) {
		t.Error("expected every point inside modal")
	}
}
