package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/versiclehq/versicle/pkg/canon"
	"github.com/versiclehq/versicle/pkg/cipher"
)

// TableEntry is one symbol -> reference pair in a table file.
type TableEntry struct {
	Symbol    string `yaml:"symbol"`
	Reference string `yaml:"reference"`
}

// TableFile is the on-disk table format: a YAML document with an entries
// list. "space" is accepted as a spelled-out symbol name since a bare space
// is easy to lose in YAML.
type TableFile struct {
	Entries []TableEntry `yaml:"entries"`
}

// ParseTableFile parses YAML table data into cipher entries.
func ParseTableFile(data []byte) ([]cipher.Entry, error) {
	var tf TableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse table file: %w", err)
	}
	if len(tf.Entries) == 0 {
		return nil, fmt.Errorf("table file has no entries")
	}

	entries := make([]cipher.Entry, 0, len(tf.Entries))
	for i, e := range tf.Entries {
		sym, err := parseSymbol(e.Symbol)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, cipher.Entry{Symbol: sym, Reference: cipher.Reference(e.Reference)})
	}
	return entries, nil
}

func parseSymbol(s string) (rune, error) {
	if s == "space" {
		return ' ', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("symbol %q must be a single character or \"space\"", s)
	}
	return runes[0], nil
}

// LoadTable builds a codec table from the configured source. An empty file
// path yields the built-in default table. With strict set, every reference
// must parse and validate against the canon.
func LoadTable(tc TableConfig) (*cipher.Table, error) {
	var entries []cipher.Entry
	if tc.File == "" {
		entries = cipher.DefaultEntries()
	} else {
		//nolint:gosec // Table file path is controlled by the operator
		data, err := os.ReadFile(tc.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read table file %s: %w", tc.File, err)
		}
		entries, err = ParseTableFile(data)
		if err != nil {
			return nil, err
		}
	}

	if tc.Strict {
		for _, e := range entries {
			if err := canon.ValidateString(string(e.Reference)); err != nil {
				return nil, fmt.Errorf("reference %q for symbol %q: %w", e.Reference, e.Symbol, err)
			}
		}
	}

	return cipher.NewTable(entries)
}
