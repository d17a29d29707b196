package popup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

func testIndex(t *testing.T) *glossary.Index {
	t.Helper()
	idx, err := glossary.NewIndex([]glossary.Entry{
		{
			ID: "dns", Term: "DNS", Aliases: []string{"dns"},
			Definition: "The naming system.", Category: glossary.CategoryProtocol,
			RelatedIDs: []string{"tcp"},
		},
		{
			ID: "tcp", Term: "TCP",
			Definition: "Reliable transport.", Category: glossary.CategoryProtocol,
			RelatedIDs: []string{"r1", "r2", "r3", "r4", "r5"},
		},
		{ID: "r1", Term: "R1", Definition: "d", Category: glossary.CategoryGeneral},
		{ID: "r2", Term: "R2", Definition: "d", Category: glossary.CategoryGeneral},
		{ID: "r3", Term: "R3", Definition: "d", Category: glossary.CategoryGeneral},
		{ID: "r4", Term: "R4", Definition: "d", Category: glossary.CategoryGeneral},
		{ID: "r5", Term: "R5", Definition: "d", Category: glossary.CategoryGeneral},
	})
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx
}

func openPopup(t *testing.T) *Controller {
	t.Helper()
	c := NewController(testIndex(t))
	if !c.Trigger("DNS", Point{X: 100, Y: 50}, Viewport{Width: 1024, Height: 768}) {
		t.Fatal("expected trigger to open popup")
	}
	if c.State() != StateOpen {
		t.Fatalf("expected open state, got %s", c.State())
	}
	return c
}

func TestTriggerMissIsNoOp(t *testing.T) {
	c := NewController(testIndex(t))
	var diag []string
	c.SetDiagnostics(func(format string, args ...any) {
		diag = append(diag, fmt.Sprintf(format, args...))
	})

	if c.Trigger("quic", Point{X: 10, Y: 10}, Viewport{Width: 1024, Height: 768}) {
		t.Fatal("expected miss")
	}
	if c.State() != StateClosed {
		t.Errorf("expected closed state after miss, got %s", c.State())
	}
	if len(diag) != 1 || !strings.Contains(diag[0], "quic") {
		t.Errorf("expected one diagnostic naming the query, got %v", diag)
	}
}

func TestDismissalCompleteness(t *testing.T) {
	// Each dismissal trigger independently closes an open popup.
	t.Run("close action", func(t *testing.T) {
		c := openPopup(t)
		c.Close()
		if c.State() != StateClosed {
			t.Errorf("expected closed, got %s", c.State())
		}
	})

	t.Run("outside pointer-down", func(t *testing.T) {
		c := openPopup(t)
		c.PointerDown(Point{X: 5, Y: 5})
		if c.State() != StateClosed {
			t.Errorf("expected closed, got %s", c.State())
		}
	})

	t.Run("escape key", func(t *testing.T) {
		c := openPopup(t)
		c.Escape()
		if c.State() != StateClosed {
			t.Errorf("expected closed, got %s", c.State())
		}
	})
}

func TestPointerDownInsideKeepsOpen(t *testing.T) {
	c := openPopup(t)
	p := c.Placement()
	c.PointerDown(Point{X: p.Left + 10, Y: p.Top + 10})
	if c.State() != StateOpen {
		t.Errorf("expected popup to stay open on inside press, got %s", c.State())
	}
}

func TestRetriggerRecreatesState(t *testing.T) {
	c := openPopup(t)

	// Same term again: open fresh, not toggled closed.
	if !c.Trigger("DNS", Point{X: 200, Y: 600}, Viewport{Width: 1024, Height: 768}) {
		t.Fatal("expected re-trigger to succeed")
	}
	if c.State() != StateOpen {
		t.Fatalf("expected open after re-trigger, got %s", c.State())
	}
	if c.Placement().Top != 600-PanelHeightEstimate {
		t.Errorf("expected placement recomputed from new anchor, got %+v", c.Placement())
	}

	// Different term replaces the displayed content.
	c.Trigger("TCP", Point{X: 50, Y: 50}, Viewport{Width: 1024, Height: 768})
	entry, ok := c.Entry()
	if !ok || entry.ID != "tcp" {
		t.Errorf("expected tcp displayed, got %+v ok=%v", entry, ok)
	}
}

func TestDismissalClearsState(t *testing.T) {
	c := openPopup(t)
	c.Close()

	if _, ok := c.Entry(); ok {
		t.Error("expected no entry after dismissal")
	}
	if _, ok := c.View(); ok {
		t.Error("expected no view after dismissal")
	}
	if c.Placement() != (Placement{}) {
		t.Errorf("expected cleared placement, got %+v", c.Placement())
	}
}

func TestResizeReclassifiesViewport(t *testing.T) {
	c := openPopup(t)
	if c.Placement().Layout != LayoutPanel {
		t.Fatalf("expected panel layout, got %s", c.Placement().Layout)
	}

	// Shrinking below the breakpoint switches the open popup to modal.
	c.Resize(Viewport{Width: 480, Height: 800})
	if c.Placement().Layout != LayoutModal {
		t.Errorf("expected modal after shrink, got %s", c.Placement().Layout)
	}

	// Growing back restores the anchored panel.
	c.Resize(Viewport{Width: 1024, Height: 768})
	if c.Placement().Layout != LayoutPanel {
		t.Errorf("expected panel after grow, got %s", c.Placement().Layout)
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Clicking "DNS" at (100, 50) on a 1024x768 viewport.
	c := openPopup(t)

	p := c.Placement()
	if p.Left != 100 {
		t.Errorf("expected left=100, got %d", p.Left)
	}
	if p.Top != 50+VerticalOffset {
		t.Errorf("expected top=%d, got %d", 50+VerticalOffset, p.Top)
	}

	v, ok := c.View()
	if !ok {
		t.Fatal("expected view")
	}
	if v.Term != "DNS" {
		t.Errorf("expected DNS, got %s", v.Term)
	}
	if v.CategoryLabel != "Protocol" {
		t.Errorf("expected Protocol badge, got %s", v.CategoryLabel)
	}
	if len(v.Related) != 1 || v.Related[0].Term != "TCP" {
		t.Errorf("expected one related chip TCP, got %+v", v.Related)
	}
}
