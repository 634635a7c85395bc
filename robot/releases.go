package robot

import (
	"context"
	"strconv"
	"strings"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// ReleaseProps is the payload of a bar release label. Start and End hold one
// release value digit per degree of freedom (see ReleaseValues). Name is left
// empty when the payload is read back.
type ReleaseProps struct {
	Name  string `json:"name" yaml:"name" validate:"required" jsonschema:"description=Release name"`
	Start string `json:"start" yaml:"start" validate:"len=6,numeric" jsonschema:"description=Start node release values,pattern=^[0-9]{6}$"`
	End   string `json:"end" yaml:"end" validate:"len=6,numeric" jsonschema:"description=End node release values,pattern=^[0-9]{6}$"`
}

func parseRelease(s string) ([6]int, error) {
	var out [6]int
	if len(s) != len(out) {
		return out, &errors.ValueError{Value: s, Reason: "want six release value digits"}
	}
	for i, r := range s {
		if r < '0' || r > '9' {
			return out, &errors.ValueError{Value: s, Reason: "want six release value digits"}
		}
		v, err := ReleaseValues.Make(int(r-'0'), false)
		if err != nil {
			return out, err
		}
		out[i] = v.Int()
	}
	return out, nil
}

func decodeEnd(ctx context.Context, data *capsule.Capsule, end string) (string, error) {
	c, err := capsule.ReadInstance(ctx, data, end, robotom.IRobotBarEndReleaseData)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, dof := range robotom.DOF {
		v, err := capsule.ReadAs[int](ctx, c, dof)
		if err != nil {
			return "", err
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String(), nil
}

func decodeRelease(ctx context.Context, data *capsule.Capsule) (ReleaseProps, error) {
	start, err := decodeEnd(ctx, data, "StartNode")
	if err != nil {
		return ReleaseProps{}, err
	}
	end, err := decodeEnd(ctx, data, "EndNode")
	if err != nil {
		return ReleaseProps{}, err
	}
	return ReleaseProps{Start: start, End: end}, nil
}

// ReleaseLabel describes bar release labels.
var ReleaseLabel = labels.MustDefineLabel(labels.LabelType[ReleaseProps]{
	Name:      "Release",
	LabelType: robotom.IRobotLabel,
	DataType:  robotom.IRobotBarReleaseData,
	Decode:    decodeRelease,
})

// ReleaseKind is the label kind of bar releases.
var ReleaseKind = labels.MustDefine(labels.Kind[*labels.Label[ReleaseProps]]{
	Name:          "releases",
	ContainerType: robotom.IRobotLabelServer,
	CastType:      robotom.IRobotLabel,
	DataType:      robotom.IRobotBarReleaseData,
	KindTag:       robotom.LabelBarRelease,
	Result:        labels.Wrapper(ReleaseLabel),
})

// Releases is the registry of bar release labels, given to bars.
type Releases struct {
	*LabelRegistry[ReleaseProps]
}

// Releases returns the bar release label registry of the open project.
func (a *App) Releases(ctx context.Context) (*Releases, error) {
	r, err := newLabelRegistry(ctx, a, ReleaseKind, barTarget)
	if err != nil {
		return nil, err
	}
	return &Releases{LabelRegistry: r}, nil
}

// Create stores a release label named after p.Name.
func (r *Releases) Create(ctx context.Context, p ReleaseProps) (*labels.Label[ReleaseProps], error) {
	start, err := parseRelease(p.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseRelease(p.End)
	if err != nil {
		return nil, err
	}
	return r.create(ctx, p.Name, func(ctx context.Context, data *capsule.Capsule) error {
		for name, values := range map[string][6]int{"StartNode": start, "EndNode": end} {
			c, err := capsule.ReadInstance(ctx, data, name, robotom.IRobotBarEndReleaseData)
			if err != nil {
				return err
			}
			for i, dof := range robotom.DOF {
				if err := c.Write(ctx, dof, values[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
