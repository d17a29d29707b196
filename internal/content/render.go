package content

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/rfcpress/rfcpress/internal/diagram"
	"github.com/rfcpress/rfcpress/internal/glossary"
)

// Renderer converts article markdown into sanitized page HTML with
// hydrated diagram placeholders and glossary trigger spans.
type Renderer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	idx      *glossary.Index
	diagrams diagram.Renderer
}

// Rendered is the output of one article render.
type Rendered struct {
	HTML string
	// Misses are glossary triggers whose term did not resolve. The
	// trigger text still renders, unstyled; these are diagnostics for
	// the author.
	Misses []TermMiss
}

// NewRenderer builds the article pipeline around a glossary index.
func NewRenderer(idx *glossary.Index) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithUnsafe(),
		),
	)

	return &Renderer{
		md:       md,
		policy:   sitePolicy(),
		idx:      idx,
		diagrams: diagram.Mermaid{},
	}
}

// sitePolicy is the sanitization policy for rendered article HTML. It
// keeps the classes chroma emits, the details/summary disclosure
// elements, and the attributes the glossary and diagram runtimes need.
func sitePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("details", "summary", "figure", "figcaption")
	p.AllowAttrs("open").OnElements("details")
	p.AllowAttrs("class").OnElements("span", "div", "code", "pre", "table", "details", "summary")
	p.AllowAttrs("id").OnElements("div", "h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("data-term-id", "data-term", "tabindex").OnElements("span")
	p.AllowAttrs("data-theme-mode").OnElements("div")
	return p
}

// Render runs the full pipeline for one article.
func (r *Renderer) Render(a Article) (Rendered, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(a.Markdown, &buf); err != nil {
		return Rendered{}, fmt.Errorf("converting %s: %w", a.Path, err)
	}

	out := r.processDiagrams(buf.String(), a.Slug)
	out = r.policy.Sanitize(out)
	out, misses := WrapTriggers(out, r.idx, a.OutputPath())

	return Rendered{HTML: out, Misses: misses}, nil
}

// processDiagrams replaces fenced mermaid code blocks with diagram
// placeholders. A diagram whose source fails validation becomes an
// in-place error panel carrying the message; the rest of the page is
// unaffected.
func (r *Renderer) processDiagrams(htmlContent, slug string) string {
	const openTag = `<pre><code class="language-mermaid">`
	const closeTag = `</code></pre>`

	n := 0
	for {
		idx := strings.Index(htmlContent, openTag)
		if idx == -1 {
			break
		}
		endIdx := strings.Index(htmlContent[idx:], closeTag)
		if endIdx == -1 {
			break
		}
		endIdx += idx

		source := html.UnescapeString(htmlContent[idx+len(openTag) : endIdx])
		token := fmt.Sprintf("diagram-%s-%d", slug, n)
		n++

		markup, err := r.diagrams.Render(context.Background(), source, diagram.Config{Token: token, Theme: diagram.Light()})
		if err != nil {
			markup = fmt.Sprintf(`<div class="diagram diagram-error">Diagram failed to render: %s</div>`,
				html.EscapeString(err.Error()))
		}

		htmlContent = htmlContent[:idx] + markup + htmlContent[endIdx+len(closeTag):]
	}

	return htmlContent
}
