package popup

import (
	"strings"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

// MaxRelatedCompact caps the related-term chips shown in the anchored
// panel layout. The full-screen modal shows the complete list.
const MaxRelatedCompact = 3

// BadgeStyle is the color pair for a category badge.
type BadgeStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// badgeStyles maps each category tag to its badge colors. The lookup
// falls back to the general style for unrecognized tags.
var badgeStyles = map[glossary.Category]BadgeStyle{
	glossary.CategoryProtocol: {Background: "#e7f5ff", Text: "#1971c2"},
	glossary.CategoryNetwork:  {Background: "#e6fcf5", Text: "#087f5b"},
	glossary.CategorySecurity: {Background: "#fff0f6", Text: "#c2255c"},
	glossary.CategoryWeb:      {Background: "#f3f0ff", Text: "#6741d9"},
	glossary.CategoryEmail:    {Background: "#fff9db", Text: "#e8590c"},
	glossary.CategoryGeneral:  {Background: "#f1f3f5", Text: "#495057"},
}

// StyleFor returns the badge style for a category, falling back to the
// general style for anything unrecognized.
func StyleFor(cat glossary.Category) BadgeStyle {
	if s, ok := badgeStyles[cat]; ok {
		return s
	}
	return badgeStyles[glossary.CategoryGeneral]
}

// RelatedChip is one cross-reference in the related-terms list.
type RelatedChip struct {
	ID   string `json:"id"`
	Term string `json:"term"`
}

// View is the fully resolved presentation of a glossary entry: everything
// the popup renders, with no further lookups required.
type View struct {
	Term          string        `json:"term"`
	Definition    string        `json:"definition"`
	CategoryLabel string        `json:"category_label"`
	Badge         BadgeStyle    `json:"badge"`
	Related       []RelatedChip `json:"related,omitempty"`
	Layout        Layout        `json:"layout"`
}

// BuildView resolves an entry's related ids through the index and
// assembles the popup presentation. Unresolvable related ids are skipped
// silently; in the panel layout the list is truncated to
// MaxRelatedCompact entries.
func BuildView(entry glossary.Entry, idx *glossary.Index, layout Layout) View {
	v := View{
		Term:          entry.Term,
		Definition:    entry.Definition,
		CategoryLabel: capitalize(string(entry.Category)),
		Badge:         StyleFor(entry.Category),
		Layout:        layout,
	}
	if v.CategoryLabel == "" {
		v.CategoryLabel = capitalize(string(glossary.CategoryGeneral))
	}

	for _, id := range entry.RelatedIDs {
		related, ok := idx.Get(id)
		if !ok {
			continue
		}
		v.Related = append(v.Related, RelatedChip{ID: related.ID, Term: related.Term})
		if layout == LayoutPanel && len(v.Related) == MaxRelatedCompact {
			break
		}
	}

	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
