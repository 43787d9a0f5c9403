package categorize

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of a custom categorization table.
//
//	categories:
//	  - name: Dining
//	    keywords: [swiggy, zomato]
//	  - name: Groceries
//	    keywords: [bigbasket, zepto]
//
// The YAML sequence order carries over into matching priority.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadRules reads a custom rule table from r. Entries with no label or
// no keywords are rejected rather than silently skipped, since a typo
// in the rules file would otherwise change categorization quietly.
func LoadRules(r io.Reader) ([]Rule, error) {
	var f rulesFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding category rules: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("category rules file defines no categories")
	}
	for i, rule := range f.Categories {
		if rule.Label == "" {
			return nil, fmt.Errorf("category rule %d has no name", i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("category rule %q has no keywords", rule.Label)
		}
	}
	return f.Categories, nil
}

// LoadRulesFile reads a custom rule table from the given path.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening category rules %q: %w", path, err)
	}
	defer f.Close()
	return LoadRules(f)
}
