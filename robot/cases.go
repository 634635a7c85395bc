package robot

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/alias"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/registry"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Case wraps a host load case. The capsule is narrowed to the simple case or
// combination type according to the case's own Type.
type Case struct {
	*capsule.Capsule
	combination bool
}

func wrapCase(ctx context.Context, inst ports.Instance, opts ...capsule.Option) (*Case, error) {
	generic, err := capsule.New(inst, robotom.IRobotCase, opts...)
	if err != nil {
		return nil, err
	}
	typ, err := capsule.ReadAs[int](ctx, generic, "Type")
	if err != nil {
		return nil, err
	}
	combination := typ == CaseType.MustGet("COMB").Int()
	required, name := robotom.IRobotSimpleCase, "SimpleCase"
	if combination {
		required, name = robotom.IRobotCaseCombination, "Combination"
	}
	c, err := generic.Wrap(inst, required, capsule.WithName(name))
	if err != nil {
		return nil, err
	}
	return &Case{Capsule: c, combination: combination}, nil
}

// Number returns the case number.
func (c *Case) Number(ctx context.Context) (int, error) {
	return capsule.ReadAs[int](ctx, c.Capsule, "Number")
}

// Name returns the case name.
func (c *Case) Name(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, c.Capsule, "Name")
}

// Label returns the short case label, such as "G1".
func (c *Case) Label(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, c.Capsule, "Label")
}

// SetLabel changes the short case label.
func (c *Case) SetLabel(ctx context.Context, label string) error {
	return c.Write(ctx, "Label", label)
}

// Nature returns the case nature.
func (c *Case) Nature(ctx context.Context) (entities.EnumValue, error) {
	return c.enum(ctx, "Nature", CaseNature)
}

// Analysis returns the case analysis type.
func (c *Case) Analysis(ctx context.Context) (entities.EnumValue, error) {
	return c.enum(ctx, "AnalizeType", AnalysisType)
}

// Type returns the case type.
func (c *Case) Type(ctx context.Context) (entities.EnumValue, error) {
	return c.enum(ctx, "Type", CaseType)
}

func (c *Case) enum(ctx context.Context, name string, table *alias.Table) (entities.EnumValue, error) {
	code, err := capsule.ReadAs[int](ctx, c.Capsule, name)
	if err != nil {
		return entities.EnumValue{}, err
	}
	return table.Make(code, true)
}

// IsCombination reports whether the case is a combination.
func (c *Case) IsCombination() bool {
	return c.combination
}

// Factor weights one case of a combination.
type Factor struct {
	Case   int     `json:"case" yaml:"case" validate:"gt=0"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Factors returns the factors of a combination, in insertion order. A simple
// case has none.
func (c *Case) Factors(ctx context.Context) ([]Factor, error) {
	if !c.combination {
		return nil, nil
	}
	mngr, err := capsule.ReadInstance(ctx, c.Capsule, "CaseFactors", robotom.IRobotCaseFactorMngr)
	if err != nil {
		return nil, err
	}
	count, err := capsule.ReadAs[int](ctx, mngr, "Count")
	if err != nil {
		return nil, err
	}
	out := make([]Factor, 0, count)
	for i := range count {
		raw, err := capsule.CallAs[ports.Instance](ctx, mngr, "Get", i+1)
		if err != nil {
			return nil, err
		}
		f, err := mngr.Wrap(raw, robotom.IRobotCaseFactor)
		if err != nil {
			return nil, err
		}
		num, err := capsule.ReadAs[int](ctx, f, "CaseNumber")
		if err != nil {
			return nil, err
		}
		factor, err := capsule.ReadAs[float64](ctx, f, "Factor")
		if err != nil {
			return nil, err
		}
		out = append(out, Factor{Case: num, Factor: factor})
	}
	return out, nil
}

// CaseKind is the registry kind of load cases.
var CaseKind = registry.MustDefine(registry.Kind[*Case]{
	Name:          "cases",
	ContainerType: robotom.IRobotCaseServer,
	CastType:      robotom.IRobotCase,
	DomainTag:     robotom.DomainCase,
	Result:        wrapCase,
})

// LabelPrefix maps a case nature to the prefix of the labels given to new
// cases of that nature. Natures without a prefix leave the label unset.
var LabelPrefix = map[entities.EnumValue]string{
	CaseNature.MustGet("PERM"):    "G",
	CaseNature.MustGet("IMPOSED"): "Q",
	CaseNature.MustGet("WIND"):    "W",
	CaseNature.MustGet("SNOW"):    "S",
	CaseNature.MustGet("ACC"):     "A",
}

// Cases is the registry of load cases.
type Cases struct {
	*registry.Registry[*Case]
	app *App
}

// Cases returns the case registry of the open project.
func (a *App) Cases(ctx context.Context) (*Cases, error) {
	c, err := a.container(ctx, "Cases", robotom.IRobotCaseServer)
	if err != nil {
		return nil, err
	}
	r, err := registry.New(CaseKind, c, a.host, registry.WithCatalog(a.catalog), registry.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	return &Cases{Registry: r, app: a}, nil
}

func (r *Cases) label(ctx context.Context, c *Case, nature entities.EnumValue) error {
	prefix, ok := LabelPrefix[nature]
	if !ok {
		return nil
	}
	num, err := c.Number(ctx)
	if err != nil {
		return err
	}
	return c.SetLabel(ctx, fmt.Sprintf("%s%d", prefix, num))
}

// CreateLoadCase adds a simple case and labels it after its nature.
func (r *Cases) CreateLoadCase(ctx context.Context, name string, nature, analysis entities.EnumValue, opts ...CreateOption) (*Case, error) {
	cfg, err := newCreateConfig(opts)
	if err != nil {
		return nil, err
	}
	num, err := r.Claim(ctx, cfg.number, cfg.overwrite)
	if err != nil {
		return nil, err
	}
	if _, err := r.Call(ctx, "CreateSimple", num, name, nature, analysis); err != nil {
		return nil, err
	}
	c, err := r.Get(ctx, num)
	if err != nil {
		return nil, err
	}
	if err := r.label(ctx, c, nature); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCombination adds a combination of the given factors. The combination
// is labelled after its nature.
func (r *Cases) CreateCombination(ctx context.Context, name string, factors []Factor, combType, nature, analysis entities.EnumValue, opts ...CreateOption) (*Case, error) {
	cfg, err := newCreateConfig(opts)
	if err != nil {
		return nil, err
	}
	num, err := r.Claim(ctx, cfg.number, cfg.overwrite)
	if err != nil {
		return nil, err
	}
	if _, err := r.Call(ctx, "CreateCombination", num, name, combType, nature, analysis); err != nil {
		return nil, err
	}
	c, err := r.Get(ctx, num)
	if err != nil {
		return nil, err
	}
	mngr, err := capsule.ReadInstance(ctx, c.Capsule, "CaseFactors", robotom.IRobotCaseFactorMngr)
	if err != nil {
		return nil, err
	}
	for _, f := range factors {
		if _, err := mngr.Call(ctx, "New", f.Case, f.Factor); err != nil {
			return nil, fmt.Errorf("combination %d: factor for case %d: %w", num, f.Case, err)
		}
	}
	if err := r.label(ctx, c, nature); err != nil {
		return nil, err
	}
	return c, nil
}
