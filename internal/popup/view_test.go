package popup

import (
	"testing"

	"github.com/rfcpress/rfcpress/internal/glossary"
)

func TestRelatedTruncation(t *testing.T) {
	idx := testIndex(t)
	entry, _ := idx.Get("tcp") // five resolvable related ids

	compact := BuildView(entry, idx, LayoutPanel)
	if len(compact.Related) != MaxRelatedCompact {
		t.Errorf("panel layout: expected %d chips, got %d", MaxRelatedCompact, len(compact.Related))
	}

	full := BuildView(entry, idx, LayoutModal)
	if len(full.Related) != 5 {
		t.Errorf("modal layout: expected 5 chips, got %d", len(full.Related))
	}
}

func TestRelatedSkipsBrokenReferences(t *testing.T) {
	idx := testIndex(t)
	entry := glossary.Entry{
		ID: "x", Term: "X", Definition: "d", Category: glossary.CategoryGeneral,
		RelatedIDs: []string{"missing", "tcp", "also-missing"},
	}

	v := BuildView(entry, idx, LayoutModal)
	if len(v.Related) != 1 || v.Related[0].ID != "tcp" {
		t.Errorf("expected only tcp resolved, got %+v", v.Related)
	}
}

func TestCategoryBadge(t *testing.T) {
	idx := testIndex(t)

	entry := glossary.Entry{ID: "x", Term: "X", Definition: "d", Category: glossary.CategorySecurity}
	v := BuildView(entry, idx, LayoutPanel)
	if v.CategoryLabel != "Security" {
		t.Errorf("expected capitalized label, got %q", v.CategoryLabel)
	}
	if v.Badge != badgeStyles[glossary.CategorySecurity] {
		t.Errorf("unexpected badge style: %+v", v.Badge)
	}
}

func TestCategoryFallback(t *testing.T) {
	idx := testIndex(t)

	// An unrecognized tag renders with the general styling.
	entry := glossary.Entry{ID: "x", Term: "X", Definition: "d", Category: "nonexistent-tag"}
	v := BuildView(entry, idx, LayoutPanel)
	if v.Badge != badgeStyles[glossary.CategoryGeneral] {
		t.Errorf("expected general badge fallback, got %+v", v.Badge)
	}

	if StyleFor("bogus") != StyleFor(glossary.CategoryGeneral) {
		t.Error("StyleFor: expected general fallback for unknown category")
	}
}
