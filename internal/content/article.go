// Package content loads and renders the site's articles: markdown with
// YAML front matter, mermaid diagram blocks, syntax-highlighted code
// snippets, and inline glossary triggers.
package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header every article carries.
type FrontMatter struct {
	Title   string `yaml:"title"`
	Slug    string `yaml:"slug"`
	RFC     string `yaml:"rfc"`    // e.g. "RFC 1034"
	Series  string `yaml:"series"` // sidebar grouping
	Summary string `yaml:"summary"`
	Order   int    `yaml:"order"`
	Draft   bool   `yaml:"draft"`
}

// Article is one loaded article, pre-render.
type Article struct {
	FrontMatter
	Path     string // source path relative to the content dir
	Markdown []byte
}

// frontMatterDelim separates the YAML header from the body.
var frontMatterDelim = []byte("---")

// ParseArticle splits front matter from the markdown body. The header is
// required; an article without one is an authoring error.
func ParseArticle(relPath string, data []byte) (Article, error) {
	a := Article{Path: filepath.ToSlash(relPath)}

	rest, ok := bytes.CutPrefix(data, frontMatterDelim)
	if !ok {
		return a, fmt.Errorf("%s: missing front matter", relPath)
	}
	idx := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if idx < 0 {
		return a, fmt.Errorf("%s: unterminated front matter", relPath)
	}
	header := rest[:idx]
	body := rest[idx+1+len(frontMatterDelim):]
	body = bytes.TrimPrefix(body, []byte("\n"))

	if err := yaml.Unmarshal(header, &a.FrontMatter); err != nil {
		return a, fmt.Errorf("%s: parsing front matter: %w", relPath, err)
	}
	if a.Title == "" {
		return a, fmt.Errorf("%s: front matter missing title", relPath)
	}
	if a.Slug == "" {
		a.Slug = strings.TrimSuffix(filepath.Base(relPath), ".md")
	}

	a.Markdown = body
	return a, nil
}

// LoadDir walks the content directory and parses every article matching
// the include/exclude patterns. Drafts are skipped. Articles come back
// sorted by series, order, then title.
func LoadDir(dir string, include, exclude []string) ([]Article, error) {
	var articles []Article

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !MatchesInclude(rel, include) || MatchesExclude(rel, exclude) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		a, err := ParseArticle(rel, data)
		if err != nil {
			return err
		}
		if a.Draft {
			return nil
		}
		articles = append(articles, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content dir: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("no articles found in %s", dir)
	}

	sort.Slice(articles, func(i, j int) bool {
		if articles[i].Series != articles[j].Series {
			return articles[i].Series < articles[j].Series
		}
		if articles[i].Order != articles[j].Order {
			return articles[i].Order < articles[j].Order
		}
		return articles[i].Title < articles[j].Title
	})
	return articles, nil
}

// OutputPath is the article's path in the generated site.
func (a Article) OutputPath() string {
	return "articles/" + a.Slug + ".html"
}
