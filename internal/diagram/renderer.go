package diagram

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// Renderer is the external rendering routine contract: diagram source and
// configuration in, markup or an error out. Failures are recovered by the
// caller and shown as an in-place error panel; they never propagate
// further.
type Renderer interface {
	Render(ctx context.Context, description string, cfg Config) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, description string, cfg Config) (string, error)

func (f RendererFunc) Render(ctx context.Context, description string, cfg Config) (string, error) {
	return f(ctx, description, cfg)
}

// diagramKinds are the mermaid diagram headers the site supports.
var diagramKinds = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"stateDiagram",
	"stateDiagram-v2",
	"classDiagram",
	"erDiagram",
	"timeline",
	"packet-beta",
}

// Mermaid emits the placeholder markup the embedded site script hydrates
// with mermaid.js. The source is validated here so an authoring mistake
// fails at build time with a message instead of a blank box in the
// browser.
type Mermaid struct{}

func (Mermaid) Render(ctx context.Context, description string, cfg Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	source := strings.TrimSpace(description)
	if source == "" {
		return "", fmt.Errorf("empty diagram description")
	}
	if err := Validate(source); err != nil {
		return "", err
	}

	return fmt.Sprintf(`<div class="diagram mermaid" id="%s" data-theme-mode="%s">%s</div>`,
		html.EscapeString(cfg.Token), cfg.Theme.Mode, html.EscapeString(source)), nil
}

// Validate checks that the source starts with a known diagram header and
// that any subgraph blocks are balanced.
func Validate(source string) error {
	first := ""
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		first = line
		break
	}
	if first == "" {
		return fmt.Errorf("diagram has no content")
	}

	kind := strings.Fields(first)[0]
	known := false
	for _, k := range diagramKinds {
		if kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown diagram kind %q", kind)
	}

	depth := 0
	for _, line := range strings.Split(source, "\n") {
		switch trimmed := strings.TrimSpace(line); {
		case strings.HasPrefix(trimmed, "subgraph "):
			depth++
		case trimmed == "end":
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced subgraph blocks: extra end")
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced subgraph blocks: %d unclosed", depth)
	}
	return nil
}

// EscapeLabel escapes characters with special meaning in mermaid node
// labels, for code that builds diagram sources programmatically.
func EscapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "(", "#lpar;")
	s = strings.ReplaceAll(s, ")", "#rpar;")
	s = strings.ReplaceAll(s, "[", "#lsqb;")
	s = strings.ReplaceAll(s, "]", "#rsqb;")
	s = strings.ReplaceAll(s, "{", "#lbrace;")
	s = strings.ReplaceAll(s, "}", "#rbrace;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}
