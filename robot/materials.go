package robot

import (
	"context"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// MaterialProps is the payload of a material label.
type MaterialProps struct {
	Name    string  `json:"name" yaml:"name" validate:"required" jsonschema:"description=Material name"`
	Type    string  `json:"type" yaml:"type" validate:"required" jsonschema:"description=Material type keyword such as STEEL"`
	E       float64 `json:"e" yaml:"e" validate:"gt=0" jsonschema:"description=Young modulus"`
	G       float64 `json:"g" yaml:"g" validate:"gte=0" jsonschema:"description=Kirchoff modulus"`
	NU      float64 `json:"nu" yaml:"nu" validate:"gte=0,lt=0.5" jsonschema:"description=Poisson ratio"`
	RO      float64 `json:"ro" yaml:"ro" validate:"gte=0" jsonschema:"description=Unit weight"`
	Fy      float64 `json:"fy" yaml:"fy" validate:"gte=0" jsonschema:"description=Yield strength"`
	Default bool    `json:"default,omitempty" yaml:"default" jsonschema:"description=Default material of the project"`
}

func decodeMaterial(ctx context.Context, data *capsule.Capsule) (MaterialProps, error) {
	var m MaterialProps
	var err error
	if m.Name, err = capsule.ReadAs[string](ctx, data, "Name"); err != nil {
		return m, err
	}
	code, err := capsule.ReadAs[int](ctx, data, "Type")
	if err != nil {
		return m, err
	}
	typ, err := MatType.Make(code, true)
	if err != nil {
		return m, err
	}
	m.Type = aliasKey(MatType, typ)
	for _, f := range []struct {
		dst  *float64
		name string
	}{{&m.E, "E"}, {&m.G, "Kirchoff"}, {&m.NU, "NU"}, {&m.RO, "RO"}, {&m.Fy, "RE"}} {
		if *f.dst, err = capsule.ReadAs[float64](ctx, data, f.name); err != nil {
			return m, err
		}
	}
	m.Default, err = capsule.ReadAs[bool](ctx, data, "Default")
	return m, err
}

// MaterialLabel describes material labels.
var MaterialLabel = labels.MustDefineLabel(labels.LabelType[MaterialProps]{
	Name:      "Material",
	LabelType: robotom.IRobotLabel,
	DataType:  robotom.IRobotMaterialData,
	Decode:    decodeMaterial,
})

// MaterialKind is the label kind of materials.
var MaterialKind = labels.MustDefine(labels.Kind[*labels.Label[MaterialProps]]{
	Name:          "materials",
	ContainerType: robotom.IRobotLabelServer,
	CastType:      robotom.IRobotLabel,
	DataType:      robotom.IRobotMaterialData,
	KindTag:       robotom.LabelMaterial,
	Result:        labels.Wrapper(MaterialLabel),
})

// Materials is the registry of material labels, given to bars.
type Materials struct {
	*LabelRegistry[MaterialProps]
}

// Materials returns the material label registry of the open project.
func (a *App) Materials(ctx context.Context) (*Materials, error) {
	r, err := newLabelRegistry(ctx, a, MaterialKind, barTarget)
	if err != nil {
		return nil, err
	}
	return &Materials{LabelRegistry: r}, nil
}

// Create stores a material label named after m.Name.
func (r *Materials) Create(ctx context.Context, m MaterialProps) (*labels.Label[MaterialProps], error) {
	typ, err := Synonyms.ResolveIn(MatType, m.Type)
	if err != nil {
		return nil, err
	}
	return r.create(ctx, m.Name, func(ctx context.Context, data *capsule.Capsule) error {
		return writeAll(ctx, data, map[string]any{
			"Name":     m.Name,
			"Type":     typ,
			"E":        m.E,
			"Kirchoff": m.G,
			"NU":       m.NU,
			"RO":       m.RO,
			"RE":       m.Fy,
			"Default":  m.Default,
		})
	})
}
