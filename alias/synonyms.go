package alias

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
)

// Synonyms merges the custom indexes of several tables into one keyword
// lookup. A key missing from Synonyms is meant to be used as is.
type Synonyms struct {
	values map[string]entities.EnumValue
}

// NewSynonyms merges the custom indexes of tables, in order. A keyword defined
// by two tables keeps the first definition; the conflict is logged at warn
// level to the WithLogger logger. WithStrictOverwrite has no effect here.
func NewSynonyms(tables []*Table, opts ...Option) *Synonyms {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Synonyms{values: make(map[string]entities.EnumValue)}
	for _, t := range tables {
		for k, v := range t.CustomIndex() {
			if prev, dup := s.values[k]; dup {
				cfg.logger.Warn("synonym defined twice",
					slog.String("key", k),
					slog.String("kept", prev.String()),
					slog.String("dropped", v.String()),
				)
				continue
			}
			s.values[k] = v
		}
	}
	return s
}

// Resolve returns the value of key. When ok is false the caller should fall
// back to key itself.
func (s *Synonyms) Resolve(key string) (v entities.EnumValue, ok bool) {
	v, ok = s.values[key]
	return v, ok
}

// Lookup returns the value of key, or key itself when it is not a synonym.
func (s *Synonyms) Lookup(key string) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return key
}

// ResolveIn resolves key as a value of t's enumeration: first as a synonym
// of that enumeration, then as a key of t.
func (s *Synonyms) ResolveIn(t *Table, key string) (entities.EnumValue, error) {
	if v, ok := s.values[key]; ok && v.Type() == t.Enum() {
		return v, nil
	}
	if v, ok := t.Get(key); ok {
		return v, nil
	}
	return entities.EnumValue{}, &errors.ValueError{
		Value:  key,
		Reason: fmt.Sprintf("not a key of %s", t.Enum().Name()),
	}
}

// Keys returns the keywords, sorted.
func (s *Synonyms) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of keywords.
func (s *Synonyms) Len() int {
	return len(s.values)
}
