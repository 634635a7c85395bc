package memhost

import (
	"context"
	"sync"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Application is the root of the reference host's object graph.
type Application struct {
	hostType
	project     *Project
	licenses    map[int]int
	mu          sync.Mutex
	visible     bool
	interactive bool
}

// Selections returns the selection factory of the open project.
func (a *Application) Selections() ports.SelectionFactory {
	return a.project.structure.selections
}

// LicenseCheckEntitlement returns the status of a license entitlement.
func (a *Application) LicenseCheckEntitlement(entitlement int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if status, ok := a.licenses[entitlement]; ok {
		return status
	}
	return licenseNotEntitled
}

// Project is the open project.
type Project struct {
	hostType
	structure *Structure
	typ       int
}

// Structure holds the servers of the open project.
type Structure struct {
	hostType
	nodes      *NodeServer
	bars       *BarServer
	cases      *CaseServer
	labels     *LabelServer
	selections *SelectionFactory
}

var (
	licenseEntitled    = memberCode(robotom.LicenseEntitlementStatus, "I_LES_ENTITLED")
	licenseNotEntitled = memberCode(robotom.LicenseEntitlementStatus, "I_LES_NOT_ENTITLED")
	licenseLocalSolve  = memberCode(robotom.LicenseEntitlement, "I_LE_LOCAL_SOLVE")
	defaultProjectType = memberCode(robotom.ProjectType, "I_PT_FRAME_3D")
)

var applicationMembers = []bridge.TableOption{
	bridge.ReadOnly("Project", func(_ context.Context, a *Application) (ports.Instance, error) {
		return a.project, nil
	}),
	bridge.Property("Visible",
		func(_ context.Context, a *Application) (bool, error) { return a.visible, nil },
		func(_ context.Context, a *Application, v bool) error { a.visible = v; return nil },
	),
	bridge.Property("Interactive",
		func(_ context.Context, a *Application) (bool, error) { return a.interactive, nil },
		func(_ context.Context, a *Application, v bool) error { a.interactive = v; return nil },
	),
	bridge.Method("LicenseCheckEntitlement", func(_ context.Context, a *Application, args []any) (any, error) {
		entitlement, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return a.LicenseCheckEntitlement(entitlement), nil
	}),
}

var projectMembers = []bridge.TableOption{
	bridge.ReadOnly("Structure", func(_ context.Context, p *Project) (ports.Instance, error) {
		return p.structure, nil
	}),
	bridge.Property("Type",
		func(_ context.Context, p *Project) (int, error) { return p.typ, nil },
		func(_ context.Context, p *Project, v int) error {
			if err := checkCode(robotom.ProjectType, v); err != nil {
				return err
			}
			p.typ = v
			return nil
		},
	),
}

var structureMembers = []bridge.TableOption{
	bridge.ReadOnly("Nodes", func(_ context.Context, s *Structure) (ports.Instance, error) {
		return s.nodes, nil
	}),
	bridge.ReadOnly("Bars", func(_ context.Context, s *Structure) (ports.Instance, error) {
		return s.bars, nil
	}),
	bridge.ReadOnly("Cases", func(_ context.Context, s *Structure) (ports.Instance, error) {
		return s.cases, nil
	}),
	bridge.ReadOnly("Labels", func(_ context.Context, s *Structure) (ports.Instance, error) {
		return s.labels, nil
	}),
	bridge.ReadOnly("Selections", func(_ context.Context, s *Structure) (ports.Instance, error) {
		return s.selections, nil
	}),
}
