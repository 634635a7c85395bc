package robot

import (
	"context"
	"strings"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// SupportProps is the payload of a support label. DOF holds one digit per
// degree of freedom in UX UY UZ RX RY RZ order, 1 for fixed. Name is left
// empty when the payload is read back.
type SupportProps struct {
	Name string `json:"name" yaml:"name" validate:"required" jsonschema:"description=Support name"`
	DOF  string `json:"dof" yaml:"dof" validate:"len=6,numeric" jsonschema:"description=Fixities as six 0/1 digits,pattern=^[01]{6}$"`
}

// ParseDOF parses six 0/1 digits into fixity flags.
func ParseDOF(s string) ([6]bool, error) {
	var fixed [6]bool
	if len(s) != len(fixed) {
		return fixed, &errors.ValueError{Value: s, Reason: "want six 0/1 digits"}
	}
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			fixed[i] = true
		default:
			return fixed, &errors.ValueError{Value: s, Reason: "want six 0/1 digits"}
		}
	}
	return fixed, nil
}

// FormatDOF is the inverse of ParseDOF.
func FormatDOF(fixed [6]bool) string {
	var b strings.Builder
	for _, f := range fixed {
		if f {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func decodeSupport(ctx context.Context, data *capsule.Capsule) (SupportProps, error) {
	var fixed [6]bool
	for i, dof := range robotom.DOF {
		v, err := capsule.ReadAs[bool](ctx, data, dof)
		if err != nil {
			return SupportProps{}, err
		}
		fixed[i] = v
	}
	return SupportProps{DOF: FormatDOF(fixed)}, nil
}

// SupportLabel describes node support labels.
var SupportLabel = labels.MustDefineLabel(labels.LabelType[SupportProps]{
	Name:      "Support",
	LabelType: robotom.IRobotLabel,
	DataType:  robotom.IRobotNodeSupportData,
	Decode:    decodeSupport,
})

// SupportKind is the label kind of node supports.
var SupportKind = labels.MustDefine(labels.Kind[*labels.Label[SupportProps]]{
	Name:          "supports",
	ContainerType: robotom.IRobotLabelServer,
	CastType:      robotom.IRobotLabel,
	DataType:      robotom.IRobotNodeSupportData,
	KindTag:       robotom.LabelSupport,
	Result:        labels.Wrapper(SupportLabel),
})

// Supports is the registry of support labels, given to nodes.
type Supports struct {
	*LabelRegistry[SupportProps]
}

// Supports returns the support label registry of the open project.
func (a *App) Supports(ctx context.Context) (*Supports, error) {
	r, err := newLabelRegistry(ctx, a, SupportKind, nodeTarget)
	if err != nil {
		return nil, err
	}
	return &Supports{LabelRegistry: r}, nil
}

// Create stores a support label named after s.Name.
func (r *Supports) Create(ctx context.Context, s SupportProps) (*labels.Label[SupportProps], error) {
	fixed, err := ParseDOF(s.DOF)
	if err != nil {
		return nil, err
	}
	return r.create(ctx, s.Name, func(ctx context.Context, data *capsule.Capsule) error {
		for i, f := range fixed {
			dir, _ := robotom.NodeSupportFixingDirection.Lookup("I_NSFD_" + robotom.DOF[i])
			if _, err := data.Call(ctx, "SetFixed", dir, f); err != nil {
				return err
			}
		}
		return nil
	})
}
