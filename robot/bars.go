package robot

import (
	"context"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/registry"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Bar wraps a host bar.
type Bar struct {
	*capsule.Capsule
}

func wrapBar(_ context.Context, inst ports.Instance, opts ...capsule.Option) (*Bar, error) {
	c, err := capsule.New(inst, robotom.IRobotBar, append([]capsule.Option{capsule.WithName("Bar")}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Bar{Capsule: c}, nil
}

// Number returns the bar number.
func (b *Bar) Number(ctx context.Context) (int, error) {
	return capsule.ReadAs[int](ctx, b.Capsule, "Number")
}

// Nodes returns the numbers of the start and end nodes.
func (b *Bar) Nodes(ctx context.Context) (start, end int, err error) {
	if start, err = capsule.ReadAs[int](ctx, b.Capsule, "StartNode"); err != nil {
		return 0, 0, err
	}
	if end, err = capsule.ReadAs[int](ctx, b.Capsule, "EndNode"); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Section returns the name of the bar's section label.
func (b *Bar) Section(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, b.Capsule, "Section")
}

// Material returns the name of the bar's material label.
func (b *Bar) Material(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, b.Capsule, "Material")
}

// Release returns the name of the bar's release label.
func (b *Bar) Release(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, b.Capsule, "Release")
}

// BarKind is the registry kind of structure bars.
var BarKind = registry.MustDefine(registry.Kind[*Bar]{
	Name:          "bars",
	ContainerType: robotom.IRobotBarServer,
	CastType:      robotom.IRobotBar,
	DomainTag:     robotom.DomainBar,
	Result:        wrapBar,
})

// Bars is the registry of structure bars.
type Bars struct {
	*registry.Registry[*Bar]
	app *App
}

// Bars returns the bar registry of the open project.
func (a *App) Bars(ctx context.Context) (*Bars, error) {
	c, err := a.container(ctx, "Bars", robotom.IRobotBarServer)
	if err != nil {
		return nil, err
	}
	r, err := registry.New(BarKind, c, a.host, registry.WithCatalog(a.catalog), registry.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	return &Bars{Registry: r, app: a}, nil
}

// Create adds a bar from node start to node end.
func (r *Bars) Create(ctx context.Context, start, end int, opts ...CreateOption) (*Bar, error) {
	cfg, err := newCreateConfig(opts)
	if err != nil {
		return nil, err
	}
	num, err := r.Claim(ctx, cfg.number, cfg.overwrite)
	if err != nil {
		return nil, err
	}
	if _, err := r.Call(ctx, "Create", num, start, end); err != nil {
		return nil, err
	}
	return r.Get(ctx, num)
}

// BarRow is one row of a bar table.
type BarRow struct {
	Number int
	Start  int
	End    int
}

// Table returns the number and end nodes of the bars named by selector, in
// selection order.
func (r *Bars) Table(ctx context.Context, selector string) ([]BarRow, error) {
	var rows []BarRow
	for b, err := range r.Select(ctx, selector) {
		if err != nil {
			return nil, err
		}
		num, err := b.Number(ctx)
		if err != nil {
			return nil, err
		}
		start, end, err := b.Nodes(ctx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, BarRow{Number: num, Start: start, End: end})
	}
	return rows, nil
}

// SetSection gives the section label name to the bars named by selector.
func (r *Bars) SetSection(ctx context.Context, selector, name string) error {
	sections, err := r.app.Sections(ctx)
	if err != nil {
		return err
	}
	return sections.Assign(ctx, selector, name)
}

// SetMaterial gives the material label name to the bars named by selector.
func (r *Bars) SetMaterial(ctx context.Context, selector, name string) error {
	materials, err := r.app.Materials(ctx)
	if err != nil {
		return err
	}
	return materials.Assign(ctx, selector, name)
}

// SetRelease gives the release label name to the bars named by selector.
func (r *Bars) SetRelease(ctx context.Context, selector, name string) error {
	releases, err := r.app.Releases(ctx)
	if err != nil {
		return err
	}
	return releases.Assign(ctx, selector, name)
}
