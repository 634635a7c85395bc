// Package memhost is an in-memory reference host. It serves the object model
// of the structural analysis application (application, project, structure,
// node, bar and case servers, labels and selections) through bridge member
// tables, so the framework runs against it exactly as against the real host.
//
// Like the real host it expects one call at a time; only its collections are
// guarded.
package memhost

import (
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Host owns one reference object graph and the member tables serving it.
type Host struct {
	catalog *bridge.Catalog
	app     *Application
}

type config struct {
	catalog    *bridge.Catalog
	logger     *slog.Logger
	tracer     trace.Tracer
	licenses   map[int]int
	middleware []bridge.Middleware
}

// Option configures a Host.
type Option func(*config)

// WithCatalog registers the member tables in c instead of a catalog private
// to the host.
func WithCatalog(c *bridge.Catalog) Option {
	return func(cfg *config) {
		cfg.catalog = c
	}
}

// WithLogger logs every member access to l.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithTracer records a span for every member access.
func WithTracer(t trace.Tracer) Option {
	return func(cfg *config) {
		cfg.tracer = t
	}
}

// WithMiddleware adds middleware to every member, inside the built-in ones.
func WithMiddleware(mw ...bridge.Middleware) Option {
	return func(cfg *config) {
		cfg.middleware = append(cfg.middleware, mw...)
	}
}

// WithLicense sets the status LicenseCheckEntitlement reports for an
// entitlement. By default only the local solve entitlement is granted.
func WithLicense(entitlement, status int) Option {
	return func(cfg *config) {
		cfg.licenses[entitlement] = status
	}
}

// New builds an empty reference host and registers its member tables.
func New(opts ...Option) (*Host, error) {
	cfg := config{licenses: map[int]int{licenseLocalSolve: licenseEntitled}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = bridge.NewCatalog()
	}

	mw := []bridge.Middleware{bridge.PanicRecoveryMiddleware()}
	if cfg.tracer != nil {
		mw = append(mw, bridge.TracingMiddleware(cfg.tracer))
	}
	if cfg.logger != nil {
		mw = append(mw, bridge.LoggingMiddleware(cfg.logger))
	}
	mw = append(mw, cfg.middleware...)

	if err := registerTables(cfg.catalog, mw); err != nil {
		return nil, err
	}

	labels := newLabelServer()
	nodes := newNodeServer(labels)
	bars := newBarServer(nodes, labels)
	cases := newCaseServer()
	structure := &Structure{
		hostType: structureType,
		nodes:    nodes,
		bars:     bars,
		cases:    cases,
		labels:   labels,
		selections: newSelectionFactory(map[entities.DomainTag]func() []int{
			robotom.DomainNode: nodes.ids,
			robotom.DomainBar:  bars.ids,
			robotom.DomainCase: cases.ids,
		}),
	}
	app := &Application{
		hostType: applicationType,
		project:  &Project{hostType: projectType, structure: structure, typ: defaultProjectType},
		licenses: cfg.licenses,
	}
	return &Host{catalog: cfg.catalog, app: app}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Host {
	h, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return h
}

func registerTables(catalog *bridge.Catalog, mw []bridge.Middleware) error {
	members := map[entities.TypeTag][]bridge.TableOption{
		RobotApplication:       applicationMembers,
		RobotProject:           projectMembers,
		RobotStructure:         structureMembers,
		RobotSelectionFactory:  selectionFactoryMembers,
		RobotSelection:         selectionMembers,
		RobotNodeServer:        nodeServerMembers,
		RobotNode:              nodeMembers,
		RobotBarServer:         barServerMembers,
		RobotBar:               barMembers,
		RobotCaseServer:        caseServerMembers,
		RobotSimpleCase:        simpleCaseMembers,
		RobotCaseCombination:   combinationMembers,
		RobotCaseFactorMngr:    factorMngrMembers,
		RobotCaseFactor:        factorMembers,
		RobotLabelServer:       labelServerMembers,
		RobotLabel:             labelMembers,
		RobotMaterialData:      materialDataMembers,
		RobotBarSectionData:    sectionDataMembers,
		RobotNodeSupportData:   supportDataMembers(),
		RobotBarReleaseData:    releaseDataMembers,
		RobotBarEndReleaseData: endReleaseDataMembers(),
	}

	tables := make([]*bridge.Table, 0, len(members))
	for tag, opts := range members {
		t, err := bridge.NewTable(tag, append(slices.Clone(opts), bridge.WithMiddleware(mw...))...)
		if err != nil {
			return fmt.Errorf("build member table: %w", err)
		}
		tables = append(tables, t)
	}
	return catalog.Register(tables...)
}

// Catalog returns the catalog holding the host's member tables.
func (h *Host) Catalog() *bridge.Catalog {
	return h.catalog
}

// App returns the application object.
func (h *Host) App() *Application {
	return h.app
}

// Project returns the open project.
func (h *Host) Project() *Project {
	return h.app.project
}

// Structure returns the structure of the open project.
func (h *Host) Structure() *Structure {
	return h.app.project.structure
}

// Nodes returns the node server.
func (h *Host) Nodes() *NodeServer {
	return h.Structure().nodes
}

// Bars returns the bar server.
func (h *Host) Bars() *BarServer {
	return h.Structure().bars
}

// Cases returns the case server.
func (h *Host) Cases() *CaseServer {
	return h.Structure().cases
}

// Labels returns the label server.
func (h *Host) Labels() *LabelServer {
	return h.Structure().labels
}

// Selections returns the selection factory.
func (h *Host) Selections() *SelectionFactory {
	return h.Structure().selections
}
