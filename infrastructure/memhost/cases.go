package memhost

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

var (
	caseTypeSimple      = memberCode(robotom.CaseType, "I_CT_SIMPLE")
	caseTypeCombination = memberCode(robotom.CaseType, "I_CT_COMBINATION")
)

func memberCode(e *entities.EnumType, name string) int {
	v, ok := e.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("memhost: %s has no member %s", e.Name(), name))
	}
	return v.Int()
}

func checkCode(e *entities.EnumType, code int) error {
	if !e.IsDefined(code) {
		return &errors.ValueError{Value: code, Reason: "not a member of " + e.Name()}
	}
	return nil
}

// loadCase is a simple case or a combination.
type loadCase interface {
	numbered
	base() *caseBase
}

type caseBase struct {
	name     string
	label    string
	number   int
	nature   int
	analysis int
	typ      int
}

// Number returns the case number.
func (c *caseBase) Number() int {
	return c.number
}

func (c *caseBase) base() *caseBase {
	return c
}

// SimpleCase is a load case holding load records.
type SimpleCase struct {
	hostType
	caseBase
}

// Combination is a weighted combination of other cases.
type Combination struct {
	hostType
	factors *FactorMngr
	caseBase
	combType int
}

// FactorMngr holds the case factors of a combination.
type FactorMngr struct {
	hostType
	cases   *store[loadCase]
	factors []*CaseFactor
}

// CaseFactor weights one case in a combination.
type CaseFactor struct {
	hostType
	caseNumber int
	factor     float64
}

// New adds a factor for the case numbered caseNumber.
func (m *FactorMngr) New(caseNumber int, factor float64) error {
	if _, ok := m.cases.lookup(caseNumber); !ok {
		return m.cases.missing(caseNumber)
	}
	m.factors = append(m.factors, &CaseFactor{hostType: factorType, caseNumber: caseNumber, factor: factor})
	return nil
}

// Count returns the number of factors.
func (m *FactorMngr) Count() int {
	return len(m.factors)
}

// Get returns the i-th factor, 1-based.
func (m *FactorMngr) Get(i int) (*CaseFactor, error) {
	if i < 1 || i > len(m.factors) {
		return nil, &errors.ValueError{Value: i, Reason: fmt.Sprintf("factor index out of range [1, %d]", len(m.factors))}
	}
	return m.factors[i-1], nil
}

// CaseServer holds the load cases of the structure.
type CaseServer struct {
	hostType
	*store[loadCase]
}

func newCaseServer() *CaseServer {
	return &CaseServer{hostType: caseServerType, store: newStore[loadCase]("case")}
}

func newCaseBase(num int, name string, nature, analysis, typ int) (caseBase, error) {
	if err := checkCode(robotom.CaseNature, nature); err != nil {
		return caseBase{}, err
	}
	if err := checkCode(robotom.CaseAnalizeType, analysis); err != nil {
		return caseBase{}, err
	}
	return caseBase{number: num, name: name, nature: nature, analysis: analysis, typ: typ}, nil
}

// CreateSimple adds a simple case.
func (s *CaseServer) CreateSimple(num int, name string, nature, analysis int) (*SimpleCase, error) {
	b, err := newCaseBase(num, name, nature, analysis, caseTypeSimple)
	if err != nil {
		return nil, err
	}
	c := &SimpleCase{hostType: simpleCaseType, caseBase: b}
	if err := s.insert(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCombination adds an empty combination.
func (s *CaseServer) CreateCombination(num int, name string, combType, nature, analysis int) (*Combination, error) {
	if err := checkCode(robotom.CombinationType, combType); err != nil {
		return nil, err
	}
	b, err := newCaseBase(num, name, nature, analysis, caseTypeCombination)
	if err != nil {
		return nil, err
	}
	c := &Combination{
		hostType: combinationType,
		caseBase: b,
		combType: combType,
		factors:  &FactorMngr{hostType: factorMngrType, cases: s.store},
	}
	if err := s.insert(c); err != nil {
		return nil, err
	}
	return c, nil
}

// caseMembers are the members shared by every case type.
func caseMembers[C loadCase]() []bridge.TableOption {
	return []bridge.TableOption{
		bridge.ReadOnly("Number", func(_ context.Context, c C) (int, error) {
			return c.base().number, nil
		}),
		bridge.ReadOnly("Type", func(_ context.Context, c C) (int, error) {
			return c.base().typ, nil
		}),
		bridge.Property("Name",
			func(_ context.Context, c C) (string, error) { return c.base().name, nil },
			func(_ context.Context, c C, v string) error { c.base().name = v; return nil },
		),
		bridge.Property("Label",
			func(_ context.Context, c C) (string, error) { return c.base().label, nil },
			func(_ context.Context, c C, v string) error { c.base().label = v; return nil },
		),
		bridge.Property("Nature",
			func(_ context.Context, c C) (int, error) { return c.base().nature, nil },
			func(_ context.Context, c C, v int) error {
				if err := checkCode(robotom.CaseNature, v); err != nil {
					return err
				}
				c.base().nature = v
				return nil
			},
		),
		bridge.Property("AnalizeType",
			func(_ context.Context, c C) (int, error) { return c.base().analysis, nil },
			func(_ context.Context, c C, v int) error {
				if err := checkCode(robotom.CaseAnalizeType, v); err != nil {
					return err
				}
				c.base().analysis = v
				return nil
			},
		),
	}
}

var simpleCaseMembers = caseMembers[*SimpleCase]()

var combinationMembers = append(caseMembers[*Combination](),
	bridge.Property("CombinationType",
		func(_ context.Context, c *Combination) (int, error) { return c.combType, nil },
		func(_ context.Context, c *Combination, v int) error {
			if err := checkCode(robotom.CombinationType, v); err != nil {
				return err
			}
			c.combType = v
			return nil
		},
	),
	bridge.ReadOnly("CaseFactors", func(_ context.Context, c *Combination) (ports.Instance, error) {
		return c.factors, nil
	}),
)

var factorMngrMembers = []bridge.TableOption{
	bridge.ReadOnly("Count", func(_ context.Context, m *FactorMngr) (int, error) {
		return m.Count(), nil
	}),
	bridge.Method("New", func(_ context.Context, m *FactorMngr, args []any) (any, error) {
		num, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		factor, err := bridge.Arg[float64](args, 1)
		if err != nil {
			return nil, err
		}
		return nil, m.New(num, factor)
	}),
	bridge.Method("Get", func(_ context.Context, m *FactorMngr, args []any) (any, error) {
		i, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return m.Get(i)
	}),
}

var factorMembers = []bridge.TableOption{
	bridge.ReadOnly("CaseNumber", func(_ context.Context, f *CaseFactor) (int, error) {
		return f.caseNumber, nil
	}),
	bridge.Property("Factor",
		func(_ context.Context, f *CaseFactor) (float64, error) { return f.factor, nil },
		func(_ context.Context, f *CaseFactor, v float64) error { f.factor = v; return nil },
	),
}

var caseServerMembers = append(containerMembers[*CaseServer](),
	bridge.Method("CreateSimple", func(_ context.Context, s *CaseServer, args []any) (any, error) {
		num, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		name, err := bridge.Arg[string](args, 1)
		if err != nil {
			return nil, err
		}
		codes, err := intArgs(args[2:], 2)
		if err != nil {
			return nil, err
		}
		return s.CreateSimple(num, name, codes[0], codes[1])
	}),
	bridge.Method("CreateCombination", func(_ context.Context, s *CaseServer, args []any) (any, error) {
		num, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		name, err := bridge.Arg[string](args, 1)
		if err != nil {
			return nil, err
		}
		codes, err := intArgs(args[2:], 3)
		if err != nil {
			return nil, err
		}
		return s.CreateCombination(num, name, codes[0], codes[1], codes[2])
	}),
)
