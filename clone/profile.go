package clone

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"mirror/member"
)

var (
	ErrUnknownType = errors.New("unknown type")
	ErrUnknownKind = errors.New("unknown kind")
)

// Profile is a named set of protections read from YAML:
//
//	defaults: true
//	types:
//	  - example.com/app.Session
//	kinds:
//	  - map
type Profile struct {
	Defaults bool     `yaml:"defaults,omitempty"`
	Types    []string `yaml:"types,omitempty"`
	Kinds    []string `yaml:"kinds,omitempty"`

	types []reflect.Type
	kinds []reflect.Kind
}

// LoadProfile loads and parses a YAML profile from the given path.
func LoadProfile(path string, types *member.TypeRegistry) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return ParseProfile(data, types)
}

// ParseProfile parses YAML data into a Profile. Type names are resolved
// against types; every name must be registered.
func ParseProfile(data []byte, types *member.TypeRegistry) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	for _, name := range p.Types {
		var (
			t  reflect.Type
			ok bool
		)

		if types != nil {
			t, ok = types.LookupName(name)
		}

		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
		}

		p.types = append(p.types, t)
	}

	for _, name := range p.Kinds {
		k, ok := parseKind(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
		}

		p.kinds = append(p.kinds, k)
	}

	return &p, nil
}

// Marshal serializes a Profile to YAML.
func (p *Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

func parseKind(name string) (reflect.Kind, bool) {
	for k := reflect.Bool; k <= reflect.UnsafePointer; k++ {
		if k.String() == name {
			return k, true
		}
	}

	return reflect.Invalid, false
}
