package glossary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// glossaryFile is the on-disk shape of glossary.yml.
type glossaryFile struct {
	Terms []Entry `yaml:"terms"`
}

// LoadFile reads a glossary YAML file and builds the index. A missing or
// malformed file is a startup failure, not a runtime condition.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary %s: %w", path, err)
	}

	var f glossaryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}

	idx, err := NewIndex(f.Terms)
	if err != nil {
		return nil, fmt.Errorf("building glossary index from %s: %w", path, err)
	}
	return idx, nil
}

// BrokenReferences returns, per entry id, the related ids that do not
// resolve in the index. Display code skips these silently; the check
// command reports them to authors.
func (idx *Index) BrokenReferences() map[string][]string {
	broken := make(map[string][]string)
	for _, e := range idx.entries {
		for _, rid := range e.RelatedIDs {
			if _, ok := idx.byID[rid]; !ok {
				broken[e.ID] = append(broken[e.ID], rid)
			}
		}
	}
	return broken
}
