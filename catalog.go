package limitdoc

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// CheckSubstitution defines the |check| token used by RST tables.
const CheckSubstitution = ".. |check| unicode:: 0x2714 .. heavy check mark"

// Service is one named group of limits, with an optional note rendered above
// its table.
type Service struct {
	Name   string     `json:"name" yaml:"name"`
	Note   string     `json:"note,omitempty" yaml:"note,omitempty"`
	Limits []LimitRow `json:"limits" yaml:"limits"`
}

// Catalog is an ordered collection of services.
type Catalog struct {
	Services []Service
}

// NewCatalog orders services by name.
func NewCatalog(services ...Service) Catalog {
	out := slices.Clone(services)
	slices.SortStableFunc(out, func(a, b Service) int {
		return strings.Compare(a.Name, b.Name)
	})
	return Catalog{Services: out}
}

// Service returns the service with the given name.
func (c Catalog) Service(name string) (Service, bool) {
	for _, s := range c.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Names returns the service names in order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Services))
	for i, s := range c.Services {
		names[i] = s.Name
	}
	return names
}

// serviceEntry accepts either a bare list of limits or a mapping with a note.
type serviceEntry struct {
	Note   string     `yaml:"note"`
	Limits []LimitRow `yaml:"limits"`
}

func (e *serviceEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&e.Limits)
	}
	type plain serviceEntry
	return value.Decode((*plain)(e))
}

// LoadCatalog decodes a mapping of service name to limits from YAML or JSON.
//
//	EC2:
//	  note: Limits apply per region.
//	  limits:
//	    - {name: Elastic IP addresses (EIPs), default: 5, trusted_advisor: true}
//	S3:
//	  - {name: Buckets, default: 100, api: true}
func LoadCatalog(r io.Reader) (Catalog, error) {
	var raw map[string]serviceEntry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	services := make([]Service, 0, len(raw))
	for name, e := range raw {
		for i, l := range e.Limits {
			if strings.TrimSpace(l.Name) == "" {
				return Catalog{}, fmt.Errorf("%w: %s limit %d has no name", ErrInvalidCatalog, name, i)
			}
		}
		services = append(services, Service{Name: name, Note: strings.TrimSpace(e.Note), Limits: e.Limits})
	}
	return NewCatalog(services...), nil
}

// Render emits one RST section per service, each with a reference label,
// a heading, the optional note and the limits table, followed by the
// definition of the |check| substitution.
func (c Catalog) Render(layout Layout) (Text, error) {
	var b lineBuilder
	for _, s := range c.Services {
		table, err := RenderTable(layout, s.Limits)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", s.Name, err)
		}
		b.add(".. _limits."+s.Name+":", "", s.Name, strings.Repeat("-", widthCond.StringWidth(s.Name)+1), "")
		if s.Note != "" {
			b.add(strings.Split(s.Note, "\n")...)
			b.add("")
		}
		b.add(table...)
	}
	b.add(CheckSubstitution)
	return b.text(), nil
}
