package main

import (
	"fmt"
	"go/token"

	"github.com/BurntSushi/toml"
	"github.com/rotisserie/eris"
)

// Schema is the root of a stratumgen TOML document.
type Schema struct {
	Package    string      `toml:"package"`
	Components []Component `toml:"component"`
	Managers   []Manager   `toml:"manager"`
}

// Component declares one component type. A tag component has no fields
// and compiles to an empty struct.
type Component struct {
	Name   string  `toml:"name"`
	Tag    bool    `toml:"tag"`
	Fields []Field `toml:"fields"`
}

// Field is one struct field of a storage component.
type Field struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Manager declares one manager: its local components and the names of
// its direct bases, which must be declared earlier in the document.
type Manager struct {
	Name       string   `toml:"name"`
	Components []string `toml:"components"`
	Bases      []string `toml:"bases"`
}

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	var s Schema
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, eris.Wrapf(err, "decoding %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, eris.Wrapf(err, "invalid schema %s", path)
	}
	return &s, nil
}

// Validate checks the schema for the errors the stratum runtime would
// reject at manager construction, plus generator-specific ones: names
// must be unique and exported, tag components must be field-free, and a
// manager's bases must be declared before it.
func (s *Schema) Validate() error {
	if s.Package == "" {
		return eris.New("missing package name")
	}

	comps := make(map[string]bool, len(s.Components))
	for _, c := range s.Components {
		if c.Name == "" {
			return eris.New("component with empty name")
		}
		if !token.IsExported(c.Name) {
			return eris.Errorf("component %s: name must be exported", c.Name)
		}
		if comps[c.Name] {
			return eris.Errorf("component %s declared twice", c.Name)
		}
		comps[c.Name] = true
		if c.Tag && len(c.Fields) > 0 {
			return eris.Errorf("tag component %s cannot have fields", c.Name)
		}
		if !c.Tag && len(c.Fields) == 0 {
			return eris.Errorf("storage component %s needs at least one field", c.Name)
		}
		for _, f := range c.Fields {
			if f.Name == "" || f.Type == "" {
				return eris.Errorf("component %s: field needs name and type", c.Name)
			}
		}
	}

	declared := make(map[string]bool, len(s.Managers))
	owned := make(map[string]string, len(s.Components))
	for _, m := range s.Managers {
		if m.Name == "" {
			return eris.New("manager with empty name")
		}
		if !token.IsExported(m.Name) {
			return eris.Errorf("manager %s: name must be exported", m.Name)
		}
		if declared[m.Name] {
			return eris.Errorf("manager %s declared twice", m.Name)
		}
		for _, c := range m.Components {
			if !comps[c] {
				return eris.Errorf("manager %s: unknown component %s", m.Name, c)
			}
			if by, ok := owned[c]; ok {
				return eris.Errorf("manager %s: component %s already declared by manager %s", m.Name, c, by)
			}
			owned[c] = m.Name
		}
		for _, b := range m.Bases {
			if !declared[b] {
				return eris.Errorf("manager %s: base %s is not declared earlier in the schema", m.Name, b)
			}
		}
		declared[m.Name] = true
	}

	if len(s.Managers) == 0 {
		return eris.New("schema declares no managers")
	}
	return nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("schema %s: %d components, %d managers", s.Package, len(s.Components), len(s.Managers))
}
