// Package seedfile reads and writes the per-program seed table as YAML.
package seedfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"admissions-dashboard/internal/admissions"
)

type document struct {
	Programs []admissions.ProgramCount `yaml:"programs"`
}

// Load parses a seed file of the form
//
//	programs:
//	  - program: Computer Science
//	    applications: 1180
func Load(path string) ([]admissions.ProgramCount, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]admissions.ProgramCount, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(doc.Programs) == 0 {
		return nil, fmt.Errorf("parse seed file: no programs listed")
	}
	return doc.Programs, nil
}

// Write stores rows at path, replacing any existing file.
func Write(path string, rows []admissions.ProgramCount) error {
	out, err := yaml.Marshal(document{Programs: rows})
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
