package content

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

// Inline glossary triggers are authored as [[DNS]] or, with an explicit
// term override, [[the naming system|DNS]]. Without an override the
// wrapped text itself is the lookup query. Wrapping is the only
// integration contract between articles and the popup.
var triggerPattern = regexp.MustCompile(`\[\[([^\[\]|]+?)(?:\|([^\[\]|]+?))?\]\]`)

// TermMiss is a trigger whose query did not resolve in the index.
type TermMiss struct {
	Query string
	Page  string
}

// WrapTriggers rewrites trigger markers in rendered HTML into glossary
// trigger spans. Markers inside <pre> or <code> blocks are left alone so
// code snippets can show the syntax literally. A marker whose term does
// not resolve renders as its plain display text and is reported as a
// miss, never as an error.
func WrapTriggers(htmlContent string, idx *glossary.Index, page string) (string, []TermMiss) {
	var (
		b        strings.Builder
		misses   []TermMiss
		preDepth int
	)

	rest := htmlContent
	for len(rest) > 0 {
		lt := strings.IndexByte(rest, '<')
		if lt == -1 {
			b.WriteString(wrapSegment(rest, idx, page, preDepth > 0, &misses))
			break
		}

		b.WriteString(wrapSegment(rest[:lt], idx, page, preDepth > 0, &misses))
		rest = rest[lt:]

		gt := strings.IndexByte(rest, '>')
		if gt == -1 {
			b.WriteString(rest)
			break
		}
		tag := rest[:gt+1]
		switch {
		case strings.HasPrefix(tag, "<pre"), strings.HasPrefix(tag, "<code"):
			preDepth++
		case strings.HasPrefix(tag, "</pre"), strings.HasPrefix(tag, "</code"):
			if preDepth > 0 {
				preDepth--
			}
		}
		b.WriteString(tag)
		rest = rest[gt+1:]
	}

	return b.String(), misses
}

// wrapSegment processes one text segment between tags.
func wrapSegment(text string, idx *glossary.Index, page string, verbatim bool, misses *[]TermMiss) string {
	if verbatim || !strings.Contains(text, "[[") {
		return text
	}

	return triggerPattern.ReplaceAllStringFunc(text, func(m string) string {
		groups := triggerPattern.FindStringSubmatch(m)
		display := strings.TrimSpace(groups[1])
		query := display
		if groups[2] != "" {
			query = strings.TrimSpace(groups[2])
		}

		entry, ok := idx.Lookup(html.UnescapeString(query))
		if !ok {
			*misses = append(*misses, TermMiss{Query: query, Page: page})
			return display
		}

		return fmt.Sprintf(`<span class="glossary-term" data-term-id="%s" tabindex="0">%s</span>`,
			entry.ID, display)
	})
}
