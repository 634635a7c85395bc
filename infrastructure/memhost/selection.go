package memhost

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Selection is a set of entity numbers of one family, kept ascending.
type Selection struct {
	hostType
	family func() []int
	ids    []int
	domain entities.DomainTag
}

// Domain returns the family of the selection.
func (s *Selection) Domain() entities.DomainTag {
	return s.domain
}

// FromText replaces the selection with the existing entities named by text.
//
// Text is a list of items separated by spaces or commas. An item is "all", a
// number, or a range "AtoB" with an optional step "AtoBbyK". Numbers naming
// no existing entity are dropped.
func (s *Selection) FromText(_ context.Context, text string) error {
	ids, err := ParseSelection(text, s.family())
	if err != nil {
		return err
	}
	s.ids = ids
	return nil
}

// Count returns the number of selected entities.
func (s *Selection) Count() int {
	return len(s.ids)
}

// Get returns the i-th selected number, 1-based, or 0 when out of range.
func (s *Selection) Get(i int) int {
	if i < 1 || i > len(s.ids) {
		return 0
	}
	return s.ids[i-1]
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// ParseSelection resolves text against existing, the numbers in use.
// The result is ascending and free of duplicates.
func ParseSelection(text string, existing []int) ([]int, error) {
	set := make(map[int]struct{})
	items := strings.FieldsFunc(text, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
	for _, item := range items {
		lower := strings.ToLower(item)
		if lower == "all" {
			for _, id := range existing {
				set[id] = struct{}{}
			}
			continue
		}
		from, to, step, err := parseRange(lower)
		if err != nil {
			return nil, &errors.ValueError{Value: item, Reason: fmt.Sprintf("invalid selection item: %v", err)}
		}
		for _, id := range existing {
			if id >= from && id <= to && (id-from)%step == 0 {
				set[id] = struct{}{}
			}
		}
	}
	ids := slices.AppendSeq(make([]int, 0, len(set)), maps.Keys(set))
	slices.Sort(ids)
	return ids, nil
}

func parseRange(item string) (from, to, step int, err error) {
	head, tail, isRange := strings.Cut(item, "to")
	if from, err = strconv.Atoi(head); err != nil {
		return 0, 0, 0, err
	}
	if !isRange {
		return from, from, 1, nil
	}
	bound, by, stepped := strings.Cut(tail, "by")
	if to, err = strconv.Atoi(bound); err != nil {
		return 0, 0, 0, err
	}
	step = 1
	if stepped {
		if step, err = strconv.Atoi(by); err != nil {
			return 0, 0, 0, err
		}
	}
	if step <= 0 {
		return 0, 0, 0, fmt.Errorf("step must be positive")
	}
	if to < from {
		return 0, 0, 0, fmt.Errorf("range end %d is before start %d", to, from)
	}
	return from, to, step, nil
}

// SelectionFactory creates selections and holds the current selection of
// every family.
type SelectionFactory struct {
	hostType
	current  map[entities.DomainTag]*Selection
	families map[entities.DomainTag]func() []int
	mu       sync.Mutex
}

func newSelectionFactory(families map[entities.DomainTag]func() []int) *SelectionFactory {
	return &SelectionFactory{
		hostType: factoryType,
		current:  make(map[entities.DomainTag]*Selection),
		families: families,
	}
}

func (f *SelectionFactory) newSelection(domain entities.DomainTag) (*Selection, error) {
	if domain == robotom.DomainUndefined || !robotom.ObjectType.IsDefined(int(domain)) {
		return nil, &errors.ValueError{Value: domain, Reason: "not a selectable object type"}
	}
	family, ok := f.families[domain]
	if !ok {
		family = func() []int { return nil }
	}
	return &Selection{hostType: selectionType, family: family, domain: domain}, nil
}

// Create returns a new, empty selection of the family.
func (f *SelectionFactory) Create(_ context.Context, domain entities.DomainTag) (ports.Selection, error) {
	sel, err := f.newSelection(domain)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// Get returns the current selection of the family.
func (f *SelectionFactory) Get(_ context.Context, domain entities.DomainTag) (ports.Selection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sel, ok := f.current[domain]; ok {
		return sel, nil
	}
	sel, err := f.newSelection(domain)
	if err != nil {
		return nil, err
	}
	f.current[domain] = sel
	return sel, nil
}

var selectionFactoryMembers = []bridge.TableOption{
	bridge.Method("Create", func(ctx context.Context, f *SelectionFactory, args []any) (any, error) {
		domain, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return f.Create(ctx, entities.DomainTag(domain))
	}),
	bridge.Method("Get", func(ctx context.Context, f *SelectionFactory, args []any) (any, error) {
		domain, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return f.Get(ctx, entities.DomainTag(domain))
	}),
}

var selectionMembers = []bridge.TableOption{
	bridge.Method("FromText", func(ctx context.Context, s *Selection, args []any) (any, error) {
		text, err := bridge.Arg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.FromText(ctx, text)
	}),
	bridge.ReadOnly("Count", func(_ context.Context, s *Selection) (int, error) {
		return s.Count(), nil
	}),
	bridge.Method("Get", func(_ context.Context, s *Selection, args []any) (any, error) {
		i, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return s.Get(i), nil
	}),
	bridge.Method("Clear", func(_ context.Context, s *Selection, _ []any) (any, error) {
		s.Clear()
		return nil, nil
	}),
}
