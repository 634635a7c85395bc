// Package robot is the domain layer over the host object model: an
// application facade with registries for nodes, bars and load cases, label
// registries for materials, sections, supports and releases, and alias
// tables for the host enumerations.
package robot

import (
	"context"
	"log/slog"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Host is the application object of the host: an instance that also hands out
// selections.
type Host interface {
	ports.Instance
	ports.Application
}

// App wraps the host application. Registries are built on every accessor
// call and hold no state of their own.
type App struct {
	*capsule.Capsule
	host    Host
	catalog *bridge.Catalog
	logger  *slog.Logger
}

type config struct {
	catalog *bridge.Catalog
	logger  *slog.Logger
}

// Option configures an App.
type Option func(*config)

// WithCatalog sets the catalog member tables are looked up in. Default is
// bridge.Default.
func WithCatalog(c *bridge.Catalog) Option {
	return func(cfg *config) {
		cfg.catalog = c
	}
}

// WithLogger sets the logger handed to every registry. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// New wraps the host application.
func New(host Host, opts ...Option) (*App, error) {
	cfg := config{catalog: bridge.Default, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := capsule.New(host, robotom.IRobotApplication,
		capsule.WithCatalog(cfg.catalog),
		capsule.WithName("App"),
	)
	if err != nil {
		return nil, err
	}
	return &App{Capsule: c, host: host, catalog: cfg.catalog, logger: cfg.logger}, nil
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Project returns the open project, wrapped.
func (a *App) Project(ctx context.Context) (*capsule.Capsule, error) {
	return capsule.ReadInstance(ctx, a.Capsule, "Project", robotom.IRobotProject)
}

// Structure returns the structure of the open project, wrapped.
func (a *App) Structure(ctx context.Context) (*capsule.Capsule, error) {
	project, err := a.Project(ctx)
	if err != nil {
		return nil, err
	}
	return capsule.ReadInstance(ctx, project, "Structure", robotom.IRobotStructure)
}

func (a *App) server(ctx context.Context, name string, tag entities.TypeTag) (ports.Instance, error) {
	structure, err := a.Structure(ctx)
	if err != nil {
		return nil, err
	}
	srv, err := capsule.ReadInstance(ctx, structure, name, tag)
	if err != nil {
		return nil, err
	}
	return srv.Instance(), nil
}

func (a *App) container(ctx context.Context, name string, tag entities.TypeTag) (ports.Container, error) {
	inst, err := a.server(ctx, name, tag)
	if err != nil {
		return nil, err
	}
	c, ok := inst.(ports.Container)
	if !ok {
		return nil, &errors.TypeMismatchError{Required: tag, Actual: inst.HostType()}
	}
	return c, nil
}

func (a *App) labelServer(ctx context.Context) (ports.NamedContainer, error) {
	inst, err := a.server(ctx, "Labels", robotom.IRobotLabelServer)
	if err != nil {
		return nil, err
	}
	c, ok := inst.(ports.NamedContainer)
	if !ok {
		return nil, &errors.TypeMismatchError{Required: robotom.IRobotLabelServer, Actual: inst.HostType()}
	}
	return c, nil
}

// ProjectType returns the type of the open project.
func (a *App) ProjectType(ctx context.Context) (entities.EnumValue, error) {
	project, err := a.Project(ctx)
	if err != nil {
		return entities.EnumValue{}, err
	}
	code, err := capsule.ReadAs[int](ctx, project, "Type")
	if err != nil {
		return entities.EnumValue{}, err
	}
	return ProjType.Make(code, true)
}

// SetProjectType changes the type of the open project. key is a project type
// keyword such as "SHELL" or a host member name.
func (a *App) SetProjectType(ctx context.Context, key string) error {
	v, err := Synonyms.ResolveIn(ProjType, key)
	if err != nil {
		return err
	}
	project, err := a.Project(ctx)
	if err != nil {
		return err
	}
	return project.Write(ctx, "Type", v)
}

// HasLicense reports whether any license entitlement is granted.
func (a *App) HasLicense(ctx context.Context) (bool, error) {
	ok := LicenseStatus.MustGet("OK")
	for lic := range License.All() {
		status, err := capsule.CallAs[int](ctx, a.Capsule, "LicenseCheckEntitlement", lic)
		if err != nil {
			return false, err
		}
		if status == ok.Int() {
			return true, nil
		}
	}
	return false, nil
}

// ClearSelections clears the current selection of every object type.
func (a *App) ClearSelections(ctx context.Context) error {
	undefined := ObjectType.MustGet("UNDEFINED")
	for t := range ObjectType.All() {
		if t.Int() == undefined.Int() {
			continue
		}
		sel, err := a.host.Selections().Get(ctx, entities.DomainTag(t.Int()))
		if err != nil {
			return err
		}
		sel.Clear()
	}
	return nil
}

// Show makes the host application visible.
func (a *App) Show(ctx context.Context, interactive bool) error {
	if err := a.Write(ctx, "Visible", true); err != nil {
		return err
	}
	return a.Write(ctx, "Interactive", interactive)
}

// Hide hides the host application.
func (a *App) Hide(ctx context.Context) error {
	if err := a.Write(ctx, "Visible", false); err != nil {
		return err
	}
	return a.Write(ctx, "Interactive", false)
}
