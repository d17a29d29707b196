package glossary

// Category groups glossary entries for visual styling on the site.
type Category string

const (
	CategoryProtocol Category = "protocol"
	CategoryNetwork  Category = "network"
	CategorySecurity Category = "security"
	CategoryWeb      Category = "web"
	CategoryEmail    Category = "email"
	CategoryGeneral  Category = "general"
)

// Categories lists every recognized category tag.
var Categories = []Category{
	CategoryProtocol,
	CategoryNetwork,
	CategorySecurity,
	CategoryWeb,
	CategoryEmail,
	CategoryGeneral,
}

// Valid reports whether c is one of the recognized category tags.
func (c Category) Valid() bool {
	switch c {
	case CategoryProtocol, CategoryNetwork, CategorySecurity, CategoryWeb, CategoryEmail, CategoryGeneral:
		return true
	}
	return false
}

// Entry is a single glossary definition. Entries are immutable once the
// index is built.
type Entry struct {
	ID         string   `json:"id" yaml:"id"`
	Term       string   `json:"term" yaml:"term"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Definition string   `json:"definition" yaml:"definition"`
	Category   Category `json:"category" yaml:"category"`
	RelatedIDs []string `json:"related,omitempty" yaml:"related,omitempty"`
}
