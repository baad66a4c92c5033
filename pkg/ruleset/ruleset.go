package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/livecheck/pkg/validation"
	"github.com/dmitrymomot/livecheck/pkg/validator"
)

// Rule binds one named check to a field.
type Rule struct {
	Field   string `yaml:"field"`
	Check   string `yaml:"check"`
	Arg     any    `yaml:"arg,omitempty"`
	Message string `yaml:"message"`
	// Optional accepts empty values without running the check.
	Optional bool `yaml:"optional,omitempty"`

	factory validator.Factory
}

// Combination is a named check over several fields.
type Combination struct {
	Fields  []string `yaml:"fields"`
	Check   string   `yaml:"check"`
	Message string   `yaml:"message"`

	test combinationTest
}

// Ruleset is a parsed rule file.
//
//	rules:
//	  - field: Name
//	    check: required
//	    message: name is required
//	  - field: Name
//	    check: max_len
//	    arg: 32
//	    message: name is too long
//	combinations:
//	  - fields: [Password, Confirm]
//	    check: equal
//	    message: passwords differ
//
// Rules for the same field form its chain in file order.
type Ruleset struct {
	Rules        []Rule        `yaml:"rules"`
	Combinations []Combination `yaml:"combinations"`
}

// Parse decodes and compiles a rule document. Unknown keys are rejected.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if err := rs.compile(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// MustParse works like Parse but panics on error.
func MustParse(data []byte) *Ruleset {
	rs, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("ruleset: %v", err))
	}
	return rs
}

// Load reads and parses the rule file at path.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return Parse(data)
}

// Fields returns every field named by the ruleset in first-use order.
func (rs *Ruleset) Fields() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(f string) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, r := range rs.Rules {
		add(r.Field)
	}
	for _, c := range rs.Combinations {
		for _, f := range c.Fields {
			add(f)
		}
	}
	return out
}

func (rs *Ruleset) compile() error {
	var errs []error

	for i := range rs.Rules {
		r := &rs.Rules[i]
		if r.Field == "" || r.Message == "" {
			errs = append(errs, fmt.Errorf("rule %d: %w: field and message are required", i, ErrInvalidRule))
			continue
		}
		build, ok := checks[r.Check]
		if !ok {
			errs = append(errs, fmt.Errorf("rule %d (%s): %w %q", i, r.Field, ErrUnknownCheck, r.Check))
			continue
		}
		f, err := build(r.Arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): %w", i, r.Field, err))
			continue
		}
		if r.Optional {
			f = validator.IgnoreEmpty(f)
		}
		r.factory = f
	}

	for i := range rs.Combinations {
		c := &rs.Combinations[i]
		if len(c.Fields) == 0 || c.Message == "" {
			errs = append(errs, fmt.Errorf("combination %d: %w: fields and message are required", i, ErrInvalidRule))
			continue
		}
		test, ok := combinations[c.Check]
		if !ok {
			errs = append(errs, fmt.Errorf("combination %d: %w %q", i, ErrUnknownCheck, c.Check))
			continue
		}
		c.test = test
	}

	return errors.Join(errs...)
}

// Apply registers every rule and combination with v. Values are read through
// the context's reader, so the entity must implement observable.Getter or the
// context must be built with validation.WithReader.
//
// A Ruleset built in code instead of parsed is compiled here.
func Apply[T any](rs *Ruleset, v *validation.Context[T]) error {
	if err := rs.compile(); err != nil {
		return err
	}

	for _, r := range rs.Rules {
		if err := v.AddCheck(r.Message, r.factory(r.Field)); err != nil {
			return fmt.Errorf("ruleset: field %s: %w", r.Field, err)
		}
	}

	for _, c := range rs.Combinations {
		fields, test := c.Fields, c.test
		err := v.AddCombination(c.Message, func(T) bool {
			values := make([]any, len(fields))
			for i, f := range fields {
				values[i], _ = v.Value(f)
			}
			return test(values)
		}, fields...)
		if err != nil {
			return fmt.Errorf("ruleset: combination %v: %w", fields, err)
		}
	}

	return nil
}
