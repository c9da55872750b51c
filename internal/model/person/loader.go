package person

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout; JSON files parse through the same
// decoder since YAML accepts JSON.
type fixtureFile struct {
	People []Person `yaml:"people"`
}

// LoadFile reads people from a YAML or JSON fixture.
func LoadFile(path string) ([]Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read people file: %w", err)
	}

	people, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse people file %s: %w", path, err)
	}
	return people, nil
}

// Decode parses a fixture document. An empty document yields no people.
func Decode(r io.Reader) ([]Person, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fixtureFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return doc.People, nil
}
