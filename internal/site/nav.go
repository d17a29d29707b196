package site

import (
	"fmt"
	"strings"

	"github.com/rfcpress/rfcpress/internal/content"
)

// NavItem is one article link in the sidebar.
type NavItem struct {
	Slug    string
	Title   string
	RFC     string
	Summary string
}

// NavSeries is one sidebar group. Articles without a series land in an
// unnamed group that renders without a heading.
type NavSeries struct {
	Name  string
	Items []NavItem
}

// Nav is the sidebar navigation, grouped by series in article order.
type Nav struct {
	Series []NavSeries
}

// BuildNav groups articles by series. LoadDir already sorts by series,
// order, then title, so groups come out in stable order.
func BuildNav(articles []content.Article) *Nav {
	nav := &Nav{}
	byName := make(map[string]int)

	for _, a := range articles {
		i, ok := byName[a.Series]
		if !ok {
			nav.Series = append(nav.Series, NavSeries{Name: a.Series})
			i = len(nav.Series) - 1
			byName[a.Series] = i
		}
		nav.Series[i].Items = append(nav.Series[i].Items, NavItem{
			Slug:    a.Slug,
			Title:   a.Title,
			RFC:     a.RFC,
			Summary: a.Summary,
		})
	}

	return nav
}

// ToHTML renders the sidebar as nested list HTML. activeSlug highlights
// the current article; basePath is the relative prefix back to the site
// root (e.g. "../" from an article page).
func (n *Nav) ToHTML(activeSlug, basePath string) string {
	var b strings.Builder

	homeActive := ""
	if activeSlug == "" {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, homeActive)

	for _, series := range n.Series {
		if series.Name != "" {
			fmt.Fprintf(&b, `<div class="nav-series">%s</div>`+"\n", escapeHTML(series.Name))
		}
		b.WriteString("<ul>\n")
		for _, item := range series.Items {
			activeClass := ""
			if item.Slug == activeSlug {
				activeClass = ` class="active"`
			}
			fmt.Fprintf(&b, `<li class="nav-article"><a href="%sarticles/%s.html"%s>%s</a></li>`+"\n",
				basePath, item.Slug, activeClass, escapeHTML(item.Title))
		}
		b.WriteString("</ul>\n")
	}

	return b.String()
}

// escapeHTML escapes the characters that matter in text content.
func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
