// Package parser loads structure models from YAML.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// validate is shared; building a validator is expensive.
var validate = validator.New()

// YamlModelLoader implements ModelLoader for YAML.
type YamlModelLoader struct {
	strict bool
}

// LoaderOption configures a YamlModelLoader.
type LoaderOption func(*YamlModelLoader)

// WithStrictFields rejects keys that match no model field.
func WithStrictFields(enabled bool) LoaderOption {
	return func(l *YamlModelLoader) {
		l.strict = enabled
	}
}

// NewYamlModelLoader creates a new YamlModelLoader. Unknown keys are rejected
// by default.
func NewYamlModelLoader(opts ...LoaderOption) ports.ModelLoader {
	l := &YamlModelLoader{strict: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load unmarshals YAML bytes into a Model and validates it. Empty input is an
// empty model.
func (l *YamlModelLoader) Load(data []byte) (*entities.Model, error) {
	var model entities.Model
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(l.strict)
	if err := dec.Decode(&model); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}
	if err := validate.Struct(&model); err != nil {
		return nil, fmt.Errorf("model validation failed: %w", err)
	}
	if err := checkReferences(&model); err != nil {
		return nil, fmt.Errorf("model validation failed: %w", err)
	}
	return &model, nil
}

// checkReferences rejects duplicate numbers and names and references to
// entities the model does not define.
func checkReferences(m *entities.Model) error {
	nodes := make(map[int]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if nodes[n.Number] {
			return fmt.Errorf("node %d defined twice", n.Number)
		}
		nodes[n.Number] = true
	}
	supports := names(m.Supports, func(s entities.SupportRecord) string { return s.Name })
	materials := names(m.Materials, func(r entities.MaterialRecord) string { return r.Name })
	sections := names(m.Sections, func(r entities.SectionRecord) string { return r.Name })
	releases := names(m.Releases, func(r entities.ReleaseRecord) string { return r.Name })

	for _, n := range m.Nodes {
		if n.Support != "" && !supports[n.Support] {
			return fmt.Errorf("node %d: unknown support %q", n.Number, n.Support)
		}
	}
	bars := make(map[int]bool, len(m.Bars))
	for _, b := range m.Bars {
		if bars[b.Number] {
			return fmt.Errorf("bar %d defined twice", b.Number)
		}
		bars[b.Number] = true
		if !nodes[b.Start] || !nodes[b.End] {
			return fmt.Errorf("bar %d: unknown node", b.Number)
		}
		for kind, ref := range map[string]struct {
			known map[string]bool
			name  string
		}{
			"section":  {sections, b.Section},
			"material": {materials, b.Material},
			"release":  {releases, b.Release},
		} {
			if ref.name != "" && !ref.known[ref.name] {
				return fmt.Errorf("bar %d: unknown %s %q", b.Number, kind, ref.name)
			}
		}
	}
	for _, s := range m.Sections {
		if s.Material != "" && !materials[s.Material] {
			return fmt.Errorf("section %q: unknown material %q", s.Name, s.Material)
		}
	}

	cases := make(map[int]bool, len(m.Cases))
	for _, c := range m.Cases {
		if cases[c.Number] {
			return fmt.Errorf("case %d defined twice", c.Number)
		}
		cases[c.Number] = true
	}
	for _, c := range m.Cases {
		for _, f := range c.Factors {
			if !cases[f.Case] || f.Case == c.Number {
				return fmt.Errorf("case %d: invalid factor case %d", c.Number, f.Case)
			}
		}
	}
	return nil
}

func names[R any](recs []R, name func(R) string) map[string]bool {
	out := make(map[string]bool, len(recs))
	for _, r := range recs {
		out[name(r)] = true
	}
	return out
}
