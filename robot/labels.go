package robot

import (
	"context"
	"maps"
	"slices"

	"github.com/robotkit/robotkit-sdk/alias"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// LabelRegistry is a label registry whose labels are given to the entities of
// one numbered server.
type LabelRegistry[D any] struct {
	*labels.Registry[*labels.Label[D]]
	app       *App
	server    string
	serverTag entities.TypeTag
	domain    entities.DomainTag
}

type labelTarget struct {
	server    string
	serverTag entities.TypeTag
	domain    entities.DomainTag
}

var (
	nodeTarget = labelTarget{server: "Nodes", serverTag: robotom.IRobotNodeServer, domain: robotom.DomainNode}
	barTarget  = labelTarget{server: "Bars", serverTag: robotom.IRobotBarServer, domain: robotom.DomainBar}
)

func newLabelRegistry[D any](ctx context.Context, a *App, kind *labels.Kind[*labels.Label[D]], target labelTarget) (*LabelRegistry[D], error) {
	server, err := a.labelServer(ctx)
	if err != nil {
		return nil, err
	}
	r, err := labels.New(kind, server, a.host, labels.WithCatalog(a.catalog), labels.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	return &LabelRegistry[D]{
		Registry:  r,
		app:       a,
		server:    target.server,
		serverTag: target.serverTag,
		domain:    target.domain,
	}, nil
}

// Assign gives the label called name to the entities named by selector.
func (r *LabelRegistry[D]) Assign(ctx context.Context, selector, name string) error {
	c, err := r.app.container(ctx, r.server, r.serverTag)
	if err != nil {
		return err
	}
	setter, ok := c.(ports.LabelSetter)
	if !ok {
		return &errors.TypeMismatchError{Required: r.serverTag, Actual: c.HostType()}
	}
	return r.Registry.Assign(ctx, setter, r.domain, selector, name)
}

// create makes a new label, lets fill write its payload and stores it.
func (r *LabelRegistry[D]) create(ctx context.Context, name string, fill func(ctx context.Context, data *capsule.Capsule) error) (*labels.Label[D], error) {
	if name == "" {
		return nil, &errors.ValueError{Value: name, Reason: "label name is empty"}
	}
	raw, err := r.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	label, err := r.Wrap(raw, r.Kind().CastType)
	if err != nil {
		return nil, err
	}
	data, err := capsule.ReadInstance(ctx, label, "Data", r.Kind().DataType)
	if err != nil {
		return nil, err
	}
	if err := fill(ctx, data); err != nil {
		return nil, err
	}
	return r.Store(ctx, raw, name)
}

// aliasKey returns the first custom alias of t naming v, or the member name.
func aliasKey(t *alias.Table, v entities.EnumValue) string {
	idx := t.CustomIndex()
	for _, k := range slices.Sorted(maps.Keys(idx)) {
		if idx[k].Int() == v.Int() {
			return k
		}
	}
	return v.Name()
}

func writeAll(ctx context.Context, c *capsule.Capsule, values map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := c.Write(ctx, name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Payloads returns a zero value of every label payload type, by label type key.
func Payloads() map[string]any {
	return map[string]any{
		"MAT":      MaterialProps{},
		"BAR_SECT": SectionProps{},
		"SUPPORT":  SupportProps{},
		"RELEASE":  ReleaseProps{},
	}
}
