package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rfcpress/rfcpress/internal/content"
)

// SearchEntry represents a single searchable page.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	RFC     string `json:"rfc,omitempty"`
	Series  string `json:"series,omitempty"`
	Summary string `json:"summary,omitempty"`
	Content string `json:"content"`
}

// maxSearchContent caps the indexed body text per page.
const maxSearchContent = 2000

// BuildSearchIndex builds the client-side search index from loaded
// articles. The body is indexed as plain markdown with trigger markers
// stripped down to their display text.
func BuildSearchIndex(articles []content.Article) []SearchEntry {
	entries := make([]SearchEntry, 0, len(articles))

	for _, a := range articles {
		body := searchText(string(a.Markdown))
		if len(body) > maxSearchContent {
			body = body[:maxSearchContent]
		}
		entries = append(entries, SearchEntry{
			Path:    a.OutputPath(),
			Title:   a.Title,
			RFC:     a.RFC,
			Series:  a.Series,
			Summary: a.Summary,
			Content: body,
		})
	}

	return entries
}

// searchText flattens markdown for indexing: heading markers dropped,
// glossary trigger syntax reduced to its visible text.
func searchText(md string) string {
	var lines []string
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		lines = append(lines, line)
	}
	text := strings.Join(lines, " ")

	// [[display|Term]] -> display, [[Term]] -> Term.
	for {
		open := strings.Index(text, "[[")
		if open == -1 {
			break
		}
		close := strings.Index(text[open:], "]]")
		if close == -1 {
			break
		}
		close += open
		inner := text[open+2 : close]
		if pipe := strings.Index(inner, "|"); pipe >= 0 {
			inner = inner[:pipe]
		}
		text = text[:open] + inner + text[close+2:]
	}

	return text
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
