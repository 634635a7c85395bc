package memhost

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Label is a named label of one kind, holding its payload.
type Label struct {
	hostType
	data ports.Instance
	name string
	kind entities.LabelKind
}

// LabelServer holds every label of the structure, keyed by kind and name.
type LabelServer struct {
	hostType
	stored map[entities.LabelKind][]*Label
	mu     sync.Mutex
}

func newLabelServer() *LabelServer {
	return &LabelServer{hostType: labelServerType, stored: make(map[entities.LabelKind][]*Label)}
}

func newLabelData(kind entities.LabelKind) (ports.Instance, error) {
	switch kind {
	case robotom.LabelMaterial:
		return &MaterialData{hostType: materialDataType}, nil
	case robotom.LabelBarSection:
		return &BarSectionData{hostType: sectionDataType, values: make(map[int]float64)}, nil
	case robotom.LabelSupport:
		return &NodeSupportData{hostType: supportDataType}, nil
	case robotom.LabelBarRelease:
		return &BarReleaseData{
			hostType: releaseDataType,
			start:    &BarEndReleaseData{hostType: endReleaseDataType},
			end:      &BarEndReleaseData{hostType: endReleaseDataType},
		}, nil
	}
	return nil, &errors.ValueError{Value: kind, Reason: "unsupported label kind"}
}

// Create returns a new label of kind, not yet stored.
func (s *LabelServer) Create(_ context.Context, kind entities.LabelKind, name string) (ports.Instance, error) {
	data, err := newLabelData(kind)
	if err != nil {
		return nil, err
	}
	return &Label{hostType: labelType, data: data, name: name, kind: kind}, nil
}

func (s *LabelServer) index(kind entities.LabelKind, name string) int {
	return slices.IndexFunc(s.stored[kind], func(l *Label) bool { return l.name == name })
}

// Get returns the stored label name of kind.
func (s *LabelServer) Get(_ context.Context, kind entities.LabelKind, name string) (ports.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(kind, name)
	if i < 0 {
		return nil, fmt.Errorf("label %q of kind %d: %w", name, kind, ErrNotFound)
	}
	return s.stored[kind][i], nil
}

// Delete removes the stored label name of kind.
func (s *LabelServer) Delete(_ context.Context, kind entities.LabelKind, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(kind, name)
	if i < 0 {
		return fmt.Errorf("label %q of kind %d: %w", name, kind, ErrNotFound)
	}
	s.stored[kind] = slices.Delete(s.stored[kind], i, i+1)
	return nil
}

// Exist reports whether a label name of kind is stored.
func (s *LabelServer) Exist(_ context.Context, kind entities.LabelKind, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(kind, name) >= 0, nil
}

// AvailableNames returns the names stored under kind, in storage order.
func (s *LabelServer) AvailableNames(_ context.Context, kind entities.LabelKind) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.stored[kind]))
	for i, l := range s.stored[kind] {
		names[i] = l.name
	}
	return names, nil
}

// Store saves label under name, replacing a stored label of the same kind and name.
func (s *LabelServer) Store(_ context.Context, label ports.Instance, name string) error {
	l, ok := label.(*Label)
	if !ok {
		actual := entities.TypeTag("")
		if label != nil {
			actual = label.HostType()
		}
		return &errors.TypeMismatchError{Required: RobotLabel, Actual: actual}
	}
	if name == "" {
		return &errors.ValueError{Value: name, Reason: "label name cannot be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l.name = name
	if i := s.index(l.kind, name); i >= 0 {
		s.stored[l.kind][i] = l
		return nil
	}
	s.stored[l.kind] = append(s.stored[l.kind], l)
	return nil
}

// MaterialData is the payload of a material label.
type MaterialData struct {
	hostType
	name      string
	typ       int
	e         float64
	kirchoff  float64
	nu        float64
	ro        float64
	re        float64
	isDefault bool
}

// BarSectionData is the payload of a bar section label.
type BarSectionData struct {
	hostType
	values   map[int]float64
	material string
}

// NodeSupportData is the payload of a support label.
type NodeSupportData struct {
	hostType
	fixed [6]bool
}

// BarReleaseData is the payload of a bar release label.
type BarReleaseData struct {
	hostType
	start *BarEndReleaseData
	end   *BarEndReleaseData
}

// BarEndReleaseData holds the release values at one bar end.
type BarEndReleaseData struct {
	hostType
	values [6]int
}

var labelServerMembers = []bridge.TableOption{
	bridge.Method("Create", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		kind, name, err := kindAndName(args)
		if err != nil {
			return nil, err
		}
		return s.Create(ctx, kind, name)
	}),
	bridge.Method("Get", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		kind, name, err := kindAndName(args)
		if err != nil {
			return nil, err
		}
		return s.Get(ctx, kind, name)
	}),
	bridge.Method("Exist", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		kind, name, err := kindAndName(args)
		if err != nil {
			return nil, err
		}
		return s.Exist(ctx, kind, name)
	}),
	bridge.Method("Delete", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		kind, name, err := kindAndName(args)
		if err != nil {
			return nil, err
		}
		return nil, s.Delete(ctx, kind, name)
	}),
	bridge.Method("GetAvailableNames", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		kind, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return s.AvailableNames(ctx, entities.LabelKind(kind))
	}),
	bridge.Method("StoreWithName", func(ctx context.Context, s *LabelServer, args []any) (any, error) {
		label, err := bridge.Arg[ports.Instance](args, 0)
		if err != nil {
			return nil, err
		}
		name, err := bridge.Arg[string](args, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.Store(ctx, label, name)
	}),
}

func kindAndName(args []any) (entities.LabelKind, string, error) {
	kind, err := bridge.Arg[int](args, 0)
	if err != nil {
		return 0, "", err
	}
	name, err := bridge.Arg[string](args, 1)
	if err != nil {
		return 0, "", err
	}
	return entities.LabelKind(kind), name, nil
}

var labelMembers = []bridge.TableOption{
	bridge.ReadOnly("Name", func(_ context.Context, l *Label) (string, error) {
		return l.name, nil
	}),
	bridge.ReadOnly("Type", func(_ context.Context, l *Label) (int, error) {
		return int(l.kind), nil
	}),
	bridge.ReadOnly("Data", func(_ context.Context, l *Label) (ports.Instance, error) {
		return l.data, nil
	}),
}

func floatField[I ports.Instance](name string, field func(I) *float64) bridge.TableOption {
	return bridge.Property(name,
		func(_ context.Context, inst I) (float64, error) { return *field(inst), nil },
		func(_ context.Context, inst I, v float64) error { *field(inst) = v; return nil },
	)
}

var materialDataMembers = []bridge.TableOption{
	bridge.Property("Name",
		func(_ context.Context, d *MaterialData) (string, error) { return d.name, nil },
		func(_ context.Context, d *MaterialData, v string) error { d.name = v; return nil },
	),
	bridge.Property("Type",
		func(_ context.Context, d *MaterialData) (int, error) { return d.typ, nil },
		func(_ context.Context, d *MaterialData, v int) error {
			if err := checkCode(robotom.MaterialType, v); err != nil {
				return err
			}
			d.typ = v
			return nil
		},
	),
	floatField("E", func(d *MaterialData) *float64 { return &d.e }),
	floatField("Kirchoff", func(d *MaterialData) *float64 { return &d.kirchoff }),
	floatField("NU", func(d *MaterialData) *float64 { return &d.nu }),
	floatField("RO", func(d *MaterialData) *float64 { return &d.ro }),
	floatField("RE", func(d *MaterialData) *float64 { return &d.re }),
	bridge.Property("Default",
		func(_ context.Context, d *MaterialData) (bool, error) { return d.isDefault, nil },
		func(_ context.Context, d *MaterialData, v bool) error { d.isDefault = v; return nil },
	),
}

var sectionDataMembers = []bridge.TableOption{
	bridge.Method("GetValue", func(_ context.Context, d *BarSectionData, args []any) (any, error) {
		code, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		if err := checkCode(robotom.BarSectionDataValue, code); err != nil {
			return nil, err
		}
		return d.values[code], nil
	}),
	bridge.Method("SetValue", func(_ context.Context, d *BarSectionData, args []any) (any, error) {
		code, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		if err := checkCode(robotom.BarSectionDataValue, code); err != nil {
			return nil, err
		}
		v, err := bridge.Arg[float64](args, 1)
		if err != nil {
			return nil, err
		}
		d.values[code] = v
		return nil, nil
	}),
	bridge.Property("MaterialName",
		func(_ context.Context, d *BarSectionData) (string, error) { return d.material, nil },
		func(_ context.Context, d *BarSectionData, v string) error { d.material = v; return nil },
	),
}

func supportDataMembers() []bridge.TableOption {
	opts := []bridge.TableOption{
		bridge.Method("SetFixed", func(_ context.Context, d *NodeSupportData, args []any) (any, error) {
			dir, err := bridge.Arg[int](args, 0)
			if err != nil {
				return nil, err
			}
			if err := checkCode(robotom.NodeSupportFixingDirection, dir); err != nil {
				return nil, err
			}
			fixed, err := bridge.Arg[bool](args, 1)
			if err != nil {
				return nil, err
			}
			d.fixed[dir] = fixed
			return nil, nil
		}),
	}
	for i, dof := range robotom.DOF {
		opts = append(opts, bridge.ReadOnly(dof, func(_ context.Context, d *NodeSupportData) (bool, error) {
			return d.fixed[i], nil
		}))
	}
	return opts
}

func endReleaseDataMembers() []bridge.TableOption {
	var opts []bridge.TableOption
	for i, dof := range robotom.DOF {
		opts = append(opts, bridge.Property(dof,
			func(_ context.Context, d *BarEndReleaseData) (int, error) { return d.values[i], nil },
			func(_ context.Context, d *BarEndReleaseData, v int) error {
				if err := checkCode(robotom.BarEndReleaseValue, v); err != nil {
					return err
				}
				d.values[i] = v
				return nil
			},
		))
	}
	return opts
}

var releaseDataMembers = []bridge.TableOption{
	bridge.ReadOnly("StartNode", func(_ context.Context, d *BarReleaseData) (ports.Instance, error) {
		return d.start, nil
	}),
	bridge.ReadOnly("EndNode", func(_ context.Context, d *BarReleaseData) (ports.Instance, error) {
		return d.end, nil
	}),
}
