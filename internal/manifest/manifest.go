// Package manifest models the .pre-commit-hooks.yaml file that advertises
// the hooks this repository provides to the pre-commit framework.
package manifest

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Hook is one entry in the manifest.
type Hook struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Entry       string   `yaml:"entry"`
	Language    string   `yaml:"language"`
	Files       string   `yaml:"files"`
	Types       []string `yaml:"types,omitempty"`
	Args        []string `yaml:"args,omitempty"`
}

// Manifest is the full hook listing.
type Manifest []Hook

const cppFilePattern = `\.(c|cc|cxx|cpp|cu|h|hpp|hxx|cuh)$`

// Default returns the canonical manifest for the seven wrapped tools.
func Default() Manifest {
	entries := []struct {
		id, desc string
	}{
		{"clang-format", "Format C/C++ code with clang-format"},
		{"clang-tidy", "Diagnose C/C++ code with clang-tidy"},
		{"cppcheck", "Analyze C/C++ code with cppcheck"},
		{"cpplint", "Check C/C++ style with cpplint"},
		{"include-what-you-use", "Check C/C++ includes with include-what-you-use"},
		{"oclint", "Analyze C/C++ code with oclint"},
		{"uncrustify", "Format C/C++ code with uncrustify"},
	}

	m := make(Manifest, 0, len(entries))
	for _, e := range entries {
		m = append(m, Hook{
			ID:          e.id,
			Name:        e.id,
			Description: e.desc,
			Entry:       e.id + "-hook",
			Language:    "golang",
			Files:       cppFilePattern,
		})
	}
	return m
}

// Load parses a manifest from a reader.
func Load(r io.Reader) (Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// LoadFile parses a manifest from a file path.
func LoadFile(path string) (Manifest, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Validate checks that every hook has an id and entry, that entries name a
// hook binary this repository ships, and that file patterns compile.
func (m Manifest) Validate(knownEntries []string) error {
	if len(m) == 0 {
		return fmt.Errorf("manifest has no hooks")
	}

	known := make(map[string]bool, len(knownEntries))
	for _, entry := range knownEntries {
		known[entry] = true
	}

	seen := make(map[string]bool, len(m))
	for i, h := range m {
		if h.ID == "" {
			return fmt.Errorf("hook %d: missing id", i)
		}
		if seen[h.ID] {
			return fmt.Errorf("hook %q: duplicate id", h.ID)
		}
		seen[h.ID] = true

		if h.Entry == "" {
			return fmt.Errorf("hook %q: missing entry", h.ID)
		}
		if len(known) > 0 && !known[h.Entry] {
			return fmt.Errorf("hook %q: entry %q is not a known hook binary", h.ID, h.Entry)
		}
		if h.Files != "" {
			if _, err := regexp.Compile(h.Files); err != nil {
				return fmt.Errorf("hook %q: invalid files pattern: %w", h.ID, err)
			}
		}
	}
	return nil
}

// Generate writes the manifest as YAML.
func (m Manifest) Generate(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// Entries returns the entry names of every hook in the manifest.
func (m Manifest) Entries() []string {
	entries := make([]string, 0, len(m))
	for _, h := range m {
		entries = append(entries, h.Entry)
	}
	return entries
}
