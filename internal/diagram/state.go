// Package diagram manages diagram rendering for article pages: a render
// state machine per diagram instance, light/dark configuration presets,
// and a mermaid renderer producing the markup the site script hydrates.
package diagram

import (
	"context"
	"sync"
)

// Status is the phase of one render attempt.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusRendered Status = "rendered"
	StatusFailed   Status = "failed"
)

// RenderState is the tagged result of a render attempt: Markup is set
// only when rendered, Message only when failed.
type RenderState struct {
	Status  Status `json:"status"`
	Markup  string `json:"markup,omitempty"`
	Message string `json:"message,omitempty"`
}

// Request describes one render attempt.
type Request struct {
	// Description is the diagram source text.
	Description string
	// Token identifies the diagram for the rendering library. Generated
	// when empty.
	Token string
	// Dark selects the dark theme preset.
	Dark bool
}

// Instance is one diagram's lifecycle. Render resets the state to
// loading before each attempt so stale output is never shown alongside
// new input; when attempts overlap, results apply last-writer-wins and a
// stale attempt never overwrites a newer one.
type Instance struct {
	renderer Renderer

	mu    sync.Mutex
	gen   uint64
	state RenderState
}

// NewInstance creates an instance in the loading state.
func NewInstance(r Renderer) *Instance {
	return &Instance{renderer: r, state: RenderState{Status: StatusLoading}}
}

// Render runs one attempt. The transition to loading happens before the
// renderer is invoked; the rendered or failed result is applied only if
// no newer attempt has started in the meantime.
func (i *Instance) Render(ctx context.Context, req Request) RenderState {
	if req.Token == "" {
		req.Token = NewToken()
	}

	i.mu.Lock()
	i.gen++
	gen := i.gen
	i.state = RenderState{Status: StatusLoading}
	i.mu.Unlock()

	markup, err := i.renderer.Render(ctx, req.Description, ConfigFor(req))

	i.mu.Lock()
	defer i.mu.Unlock()
	if gen != i.gen {
		// A newer attempt owns the state now.
		return i.state
	}
	if err != nil {
		i.state = RenderState{Status: StatusFailed, Message: err.Error()}
	} else {
		i.state = RenderState{Status: StatusRendered, Markup: markup}
	}
	return i.state
}

// State returns the current render state.
func (i *Instance) State() RenderState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}
