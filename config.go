package limitdoc

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// PolicyConfig is the YAML form of a [Policy].
type PolicyConfig struct {
	MaxFullLines  int       `yaml:"max_full_lines"`
	WindowEdge    int       `yaml:"window_edge"`
	LineLengthCap int       `yaml:"line_length_cap"`
	Verbatim      bool      `yaml:"verbatim"`
	Anchors       []Matcher `yaml:"anchors"`
	Exclude       []Matcher `yaml:"exclude"`
}

// Matcher describes a line predicate. Exactly one field must be set.
type Matcher struct {
	Contains string `yaml:"contains"`
	Prefix   string `yaml:"prefix"`
	Suffix   string `yaml:"suffix"`
	Regexp   string `yaml:"regexp"`
}

// Predicate compiles the matcher.
func (m Matcher) Predicate() (Predicate, error) {
	set := 0
	for _, s := range []string{m.Contains, m.Prefix, m.Suffix, m.Regexp} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: matcher must set exactly one of contains, prefix, suffix, regexp", ErrInvalidPolicy)
	}
	switch {
	case m.Contains != "":
		return Contains(m.Contains), nil
	case m.Prefix != "":
		return HasPrefix(m.Prefix), nil
	case m.Suffix != "":
		return HasSuffix(m.Suffix), nil
	default:
		re, err := regexp.Compile(m.Regexp)
		if err != nil {
			return nil, fmt.Errorf("%w: regexp %q: %s", ErrInvalidPolicy, m.Regexp, err)
		}
		return MatchRegexp(re), nil
	}
}

// Validate checks the numeric fields and every matcher.
func (c PolicyConfig) Validate() error {
	_, _, err := c.compile()
	return err
}

func (c PolicyConfig) checkLimits() error {
	if c.MaxFullLines < 0 {
		return fmt.Errorf("%w: max_full_lines must not be negative", ErrInvalidPolicy)
	}
	if c.WindowEdge < 0 {
		return fmt.Errorf("%w: window_edge must not be negative", ErrInvalidPolicy)
	}
	if c.LineLengthCap < 0 {
		return fmt.Errorf("%w: line_length_cap must not be negative", ErrInvalidPolicy)
	}
	return nil
}

// compile checks the numeric fields and compiles each matcher once.
func (c PolicyConfig) compile() (anchors, exclude []Predicate, err error) {
	if err := c.checkLimits(); err != nil {
		return nil, nil, err
	}
	for i, m := range c.Anchors {
		pred, err := m.Predicate()
		if err != nil {
			return nil, nil, fmt.Errorf("anchors[%d]: %w", i, err)
		}
		anchors = append(anchors, pred)
	}
	for i, m := range c.Exclude {
		pred, err := m.Predicate()
		if err != nil {
			return nil, nil, fmt.Errorf("exclude[%d]: %w", i, err)
		}
		exclude = append(exclude, pred)
	}
	return anchors, exclude, nil
}

// Policy builds a Policy with defaults filled in. Multiple exclude matchers
// are combined; a line matching any of them is dropped.
func (c PolicyConfig) Policy() (Policy, error) {
	anchors, exclude, err := c.compile()
	if err != nil {
		return Policy{}, err
	}
	p := Policy{
		MaxFullLines:  c.MaxFullLines,
		WindowEdge:    c.WindowEdge,
		LineLengthCap: c.LineLengthCap,
		Verbatim:      c.Verbatim,
		Anchors:       anchors,
	}
	if len(exclude) > 0 {
		p.Exclude = AnyOf(exclude...)
	}
	return p.withDefaults(), nil
}

// LoadPolicy decodes a YAML policy from r. Empty input yields the default
// policy.
func LoadPolicy(r io.Reader) (Policy, error) {
	var c PolicyConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("%w: %s", ErrInvalidPolicy, err)
	}
	return c.Policy()
}
