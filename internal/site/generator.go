// Package site turns loaded articles and the glossary into a static
// HTML site: one page per article, an index page per the series
// grouping, and the JSON and asset files the in-page runtimes read.
package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/rfcpress/rfcpress/internal/config"
	"github.com/rfcpress/rfcpress/internal/content"
	"github.com/rfcpress/rfcpress/internal/glossary"
	"github.com/rfcpress/rfcpress/internal/progress"
)

// Generator builds the static site described by a Config.
type Generator struct {
	cfg      *config.Config
	reporter progress.Reporter
}

// NewGenerator creates a Generator. A nil reporter disables progress
// output.
func NewGenerator(cfg *config.Config, reporter progress.Reporter) *Generator {
	return &Generator{cfg: cfg, reporter: reporter}
}

// BuildResult summarizes one site build.
type BuildResult struct {
	Pages    int
	Articles []content.Article
	// Misses are glossary triggers across all pages that did not
	// resolve. They are reported to the author after the build.
	Misses []content.TermMiss
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	SiteName string
	RFC      string
	Summary  string
	Theme    string
	Content  template.HTML
	NavHTML  template.HTML
	BasePath string
}

// Generate builds the full static site: glossary index, article pages,
// the landing page, and static assets.
func (g *Generator) Generate() (*BuildResult, error) {
	idx, err := glossary.LoadFile(filepath.Join(g.cfg.ContentDir, g.cfg.Glossary))
	if err != nil {
		return nil, err
	}

	articles, err := content.LoadDir(g.cfg.ContentDir, g.cfg.Include, g.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	if g.reporter != nil {
		g.reporter.Start(len(articles) + 1) // +1 for assets
		defer g.reporter.Finish()
	}

	if err := os.MkdirAll(filepath.Join(g.cfg.OutputDir, "articles"), 0o755); err != nil {
		return nil, err
	}

	if err := g.writeAssets(idx); err != nil {
		return nil, fmt.Errorf("writing assets: %w", err)
	}
	if g.reporter != nil {
		g.reporter.Update(1, "assets")
	}

	searchEntries := BuildSearchIndex(articles)
	if err := WriteSearchIndex(searchEntries, filepath.Join(g.cfg.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}

	nav := BuildNav(articles)
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	renderer := content.NewRenderer(idx)
	result := &BuildResult{Articles: articles}

	for i, a := range articles {
		rendered, err := renderer.Render(a)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", a.Path, err)
		}
		result.Misses = append(result.Misses, rendered.Misses...)

		if err := g.writePage(tmpl, nav, a, rendered.HTML); err != nil {
			return nil, fmt.Errorf("writing %s: %w", a.OutputPath(), err)
		}
		result.Pages++
		if g.reporter != nil {
			g.reporter.Update(i+2, a.Slug)
		}
	}

	if err := g.writeIndexPage(tmpl, nav, articles); err != nil {
		return nil, fmt.Errorf("writing index page: %w", err)
	}
	result.Pages++

	return result, nil
}

// writePage renders one article into its output file.
func (g *Generator) writePage(tmpl *template.Template, nav *Nav, a content.Article, body string) error {
	outPath := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(a.OutputPath()))

	data := pageData{
		Title:    a.Title,
		SiteName: g.cfg.SiteName,
		RFC:      a.RFC,
		Summary:  a.Summary,
		Theme:    string(g.cfg.Theme),
		Content:  template.HTML(body),
		NavHTML:  template.HTML(nav.ToHTML(a.Slug, "../")),
		BasePath: "../",
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// writeIndexPage renders the landing page: the series listing with
// article summaries.
func (g *Generator) writeIndexPage(tmpl *template.Template, nav *Nav, articles []content.Article) error {
	var b strings.Builder
	b.WriteString(`<h1 id="welcome">` + template.HTMLEscapeString(g.cfg.SiteName) + `</h1>` + "\n")

	for _, series := range nav.Series {
		if series.Name != "" {
			b.WriteString(`<h2>` + template.HTMLEscapeString(series.Name) + `</h2>` + "\n")
		}
		b.WriteString(`<ul class="article-list">` + "\n")
		for _, item := range series.Items {
			b.WriteString(`<li><a href="` + template.HTMLEscapeString("articles/"+item.Slug+".html") + `">`)
			b.WriteString(template.HTMLEscapeString(item.Title))
			b.WriteString(`</a>`)
			if item.RFC != "" {
				b.WriteString(` <span class="rfc-tag">` + template.HTMLEscapeString(item.RFC) + `</span>`)
			}
			if item.Summary != "" {
				b.WriteString(`<p>` + template.HTMLEscapeString(item.Summary) + `</p>`)
			}
			b.WriteString(`</li>` + "\n")
		}
		b.WriteString(`</ul>` + "\n")
	}

	data := pageData{
		Title:    g.cfg.SiteName,
		SiteName: g.cfg.SiteName,
		Theme:    string(g.cfg.Theme),
		Content:  template.HTML(b.String()),
		NavHTML:  template.HTML(nav.ToHTML("", "")),
		BasePath: "",
	}

	f, err := os.Create(filepath.Join(g.cfg.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
