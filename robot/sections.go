package robot

import (
	"context"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// SectionProps is the payload of a bar section label. Name is the label name;
// it is left empty when the payload is read back, see Label.Name.
type SectionProps struct {
	Name     string  `json:"name" yaml:"name" validate:"required" jsonschema:"description=Section name"`
	Material string  `json:"material,omitempty" yaml:"material" jsonschema:"description=Material label name"`
	D        float64 `json:"d,omitempty" yaml:"d" validate:"gte=0" jsonschema:"description=Depth"`
	BF       float64 `json:"bf,omitempty" yaml:"bf" validate:"gte=0" jsonschema:"description=Flange width"`
	TF       float64 `json:"tf,omitempty" yaml:"tf" validate:"gte=0" jsonschema:"description=Flange thickness"`
	IX       float64 `json:"ix" yaml:"ix" validate:"gte=0" jsonschema:"description=Torsional constant"`
	IY       float64 `json:"iy" yaml:"iy" validate:"gte=0" jsonschema:"description=Moment of inertia about y"`
	IZ       float64 `json:"iz" yaml:"iz" validate:"gte=0" jsonschema:"description=Moment of inertia about z"`
	Weight   float64 `json:"weight,omitempty" yaml:"weight" validate:"gte=0" jsonschema:"description=Weight per unit length"`
}

func (s *SectionProps) values() map[string]*float64 {
	return map[string]*float64{
		"I_BSDV_D":      &s.D,
		"I_BSDV_BF":     &s.BF,
		"I_BSDV_TF":     &s.TF,
		"I_BSDV_IX":     &s.IX,
		"I_BSDV_IY":     &s.IY,
		"I_BSDV_IZ":     &s.IZ,
		"I_BSDV_WEIGHT": &s.Weight,
	}
}

func decodeSection(ctx context.Context, data *capsule.Capsule) (SectionProps, error) {
	var s SectionProps
	var err error
	if s.Material, err = capsule.ReadAs[string](ctx, data, "MaterialName"); err != nil {
		return s, err
	}
	for member, dst := range s.values() {
		code, _ := robotom.BarSectionDataValue.Lookup(member)
		if *dst, err = capsule.CallAs[float64](ctx, data, "GetValue", code); err != nil {
			return s, err
		}
	}
	return s, nil
}

// SectionLabel describes bar section labels.
var SectionLabel = labels.MustDefineLabel(labels.LabelType[SectionProps]{
	Name:      "Section",
	LabelType: robotom.IRobotLabel,
	DataType:  robotom.IRobotBarSectionData,
	Decode:    decodeSection,
})

// SectionKind is the label kind of bar sections.
var SectionKind = labels.MustDefine(labels.Kind[*labels.Label[SectionProps]]{
	Name:          "sections",
	ContainerType: robotom.IRobotLabelServer,
	CastType:      robotom.IRobotLabel,
	DataType:      robotom.IRobotBarSectionData,
	KindTag:       robotom.LabelBarSection,
	Result:        labels.Wrapper(SectionLabel),
})

// Sections is the registry of bar section labels, given to bars.
type Sections struct {
	*LabelRegistry[SectionProps]
}

// Sections returns the bar section label registry of the open project.
func (a *App) Sections(ctx context.Context) (*Sections, error) {
	r, err := newLabelRegistry(ctx, a, SectionKind, barTarget)
	if err != nil {
		return nil, err
	}
	return &Sections{LabelRegistry: r}, nil
}

// Create stores a section label named after s.Name.
func (r *Sections) Create(ctx context.Context, s SectionProps) (*labels.Label[SectionProps], error) {
	return r.create(ctx, s.Name, func(ctx context.Context, data *capsule.Capsule) error {
		if s.Material != "" {
			if err := data.Write(ctx, "MaterialName", s.Material); err != nil {
				return err
			}
		}
		for member, v := range s.values() {
			code, _ := robotom.BarSectionDataValue.Lookup(member)
			if _, err := data.Call(ctx, "SetValue", code, *v); err != nil {
				return err
			}
		}
		return nil
	})
}
