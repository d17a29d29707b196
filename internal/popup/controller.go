package popup

import (
	"log"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

// State is the popup lifecycle state.
type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// Controller manages one trigger wrapper's popup: open/closed state, the
// captured anchor point, and the three dismissal triggers. Each wrapper
// owns its own Controller; instances share nothing mutable.
type Controller struct {
	idx *glossary.Index

	state     State
	anchor    Point
	viewport  Viewport
	placement Placement
	entry     glossary.Entry

	// logf receives lookup-miss diagnostics. Defaults to log.Printf.
	logf func(format string, args ...any)
}

// NewController creates a closed controller backed by the given index.
func NewController(idx *glossary.Index) *Controller {
	return &Controller{idx: idx, state: StateClosed, logf: log.Printf}
}

// SetDiagnostics redirects lookup-miss diagnostics, mainly for tests and
// for the check command.
func (c *Controller) SetDiagnostics(logf func(format string, args ...any)) {
	if logf != nil {
		c.logf = logf
	}
}

// Trigger handles an activation of the wrapper with the given lookup
// query at the given pointer position. If the term resolves the popup
// opens with fresh state, replacing whatever was shown before; a second
// activation on the same term is an open-fresh, not a toggle. If the term
// does not resolve the interaction is a no-op and a diagnostic is
// emitted.
func (c *Controller) Trigger(query string, anchor Point, vp Viewport) bool {
	entry, ok := c.idx.Lookup(query)
	if !ok {
		c.logf("glossary: no entry for %q", query)
		return false
	}

	c.state = StateOpen
	c.anchor = anchor
	c.viewport = vp
	c.entry = entry
	c.placement = Compute(anchor, vp)
	return true
}

// Close handles the explicit close affordance.
func (c *Controller) Close() {
	c.dismiss()
}

// PointerDown handles a pointer-down anywhere in the document. A press
// outside the popup's rendered bounds dismisses it.
func (c *Controller) PointerDown(pt Point) {
	if c.state != StateOpen {
		return
	}
	if !c.placement.Contains(pt) {
		c.dismiss()
	}
}

// Escape handles the Escape key while the popup is open.
func (c *Controller) Escape() {
	c.dismiss()
}

// Resize re-evaluates the viewport classification and recomputes the
// placement from the original anchor. Called on every viewport resize
// while the popup is open.
func (c *Controller) Resize(vp Viewport) {
	c.viewport = vp
	if c.state == StateOpen {
		c.placement = Compute(c.anchor, vp)
	}
}

// dismiss tears the popup down and clears the trigger-point state.
func (c *Controller) dismiss() {
	c.state = StateClosed
	c.anchor = Point{}
	c.entry = glossary.Entry{}
	c.placement = Placement{}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Entry returns the displayed entry; ok is false unless the popup is open.
func (c *Controller) Entry() (glossary.Entry, bool) {
	if c.state != StateOpen {
		return glossary.Entry{}, false
	}
	return c.entry, true
}

// Placement returns the computed placement for the open popup.
func (c *Controller) Placement() Placement { return c.placement }

// View builds the presentation for the open popup; ok is false when the
// popup is closed.
func (c *Controller) View() (View, bool) {
	if c.state != StateOpen {
		return View{}, false
	}
	return BuildView(c.entry, c.idx, c.placement.Layout), true
}
