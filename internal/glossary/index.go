package glossary

import (
	"fmt"
	"strings"
)

// Index holds the glossary entries and their lookup tables. It is
// read-only after construction; concurrent readers need no locking.
type Index struct {
	entries []Entry
	byID    map[string]*Entry
	byAlias map[string]*Entry // normalized term and alias strings
}

// NewIndex builds an Index from entries. Malformed entries (empty id or
// term, duplicate ids, unknown category) are a construction error: the
// glossary is authored content and a bad file should fail the build, not
// limp along. References to missing related ids are deliberately NOT
// validated here; they degrade at display time instead.
func NewIndex(entries []Entry) (*Index, error) {
	idx := &Index{
		entries: entries,
		byID:    make(map[string]*Entry, len(entries)),
		byAlias: make(map[string]*Entry, len(entries)*2),
	}

	for i := range idx.entries {
		e := &idx.entries[i]
		if e.ID == "" {
			return nil, fmt.Errorf("glossary entry %d: missing id", i)
		}
		if e.Term == "" {
			return nil, fmt.Errorf("glossary entry %q: missing term", e.ID)
		}
		if !e.Category.Valid() {
			return nil, fmt.Errorf("glossary entry %q: unknown category %q", e.ID, e.Category)
		}
		if _, dup := idx.byID[e.ID]; dup {
			return nil, fmt.Errorf("glossary entry %q: duplicate id", e.ID)
		}
		idx.byID[e.ID] = e

		idx.byAlias[Normalize(e.Term)] = e
		for _, a := range e.Aliases {
			idx.byAlias[Normalize(a)] = e
		}
	}

	return idx, nil
}

// Lookup resolves a display string to its entry. The query is normalized
// (whitespace trim, trailing periods and surrounding quotes stripped,
// case-insensitive) and matched exactly against terms and aliases. A miss
// returns ok=false; there is no fuzzy or partial matching.
func (idx *Index) Lookup(query string) (Entry, bool) {
	e, ok := idx.byAlias[Normalize(query)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Get resolves an entry by its id, used for related-term cross-references.
func (idx *Index) Get(id string) (Entry, bool) {
	e, ok := idx.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns all entries in file order.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int { return len(idx.entries) }

// Normalize maps a query or alias to its canonical lookup key: surrounding
// whitespace trimmed, surrounding quote characters and trailing periods
// stripped, lowercased.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimRight(s, ".")
	return strings.ToLower(s)
}
