package memhost

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Bar is a structure bar between two nodes.
type Bar struct {
	hostType
	section  string
	material string
	release  string
	number   int
	start    int
	end      int
}

// Number returns the bar number.
func (b *Bar) Number() int {
	return b.number
}

// BarServer holds the bars of the structure.
type BarServer struct {
	hostType
	*store[*Bar]
	nodes  *NodeServer
	labels *LabelServer
}

func newBarServer(nodes *NodeServer, labels *LabelServer) *BarServer {
	return &BarServer{
		hostType: barServerType,
		store:    newStore[*Bar]("bar"),
		nodes:    nodes,
		labels:   labels,
	}
}

// Create adds the bar numbered num between two existing, distinct nodes.
func (s *BarServer) Create(num, start, end int) error {
	if start == end {
		return &errors.ValueError{Value: start, Reason: fmt.Sprintf("bar %d starts and ends at the same node", num)}
	}
	for _, n := range []int{start, end} {
		if _, ok := s.nodes.lookup(n); !ok {
			return fmt.Errorf("bar %d: %w", num, s.nodes.missing(n))
		}
	}
	return s.insert(&Bar{hostType: barType, number: num, start: start, end: end})
}

// SetLabel gives a section, material or release label to the bars of sel.
// An empty name removes the label.
func (s *BarServer) SetLabel(ctx context.Context, sel ports.Selection, kind entities.LabelKind, name string) error {
	var set func(*Bar)
	switch kind {
	case robotom.LabelBarSection:
		set = func(b *Bar) { b.section = name }
	case robotom.LabelMaterial:
		set = func(b *Bar) { b.material = name }
	case robotom.LabelBarRelease:
		set = func(b *Bar) { b.release = name }
	default:
		return &errors.ValueError{Value: kind, Reason: "bars carry section, material and release labels only"}
	}
	return assignLabel(ctx, s.store, s.labels, sel, kind, name, set)
}

var barMembers = []bridge.TableOption{
	bridge.ReadOnly("Number", func(_ context.Context, b *Bar) (int, error) {
		return b.number, nil
	}),
	bridge.ReadOnly("StartNode", func(_ context.Context, b *Bar) (int, error) {
		return b.start, nil
	}),
	bridge.ReadOnly("EndNode", func(_ context.Context, b *Bar) (int, error) {
		return b.end, nil
	}),
	bridge.ReadOnly("Section", func(_ context.Context, b *Bar) (string, error) {
		return b.section, nil
	}),
	bridge.ReadOnly("Material", func(_ context.Context, b *Bar) (string, error) {
		return b.material, nil
	}),
	bridge.ReadOnly("Release", func(_ context.Context, b *Bar) (string, error) {
		return b.release, nil
	}),
}

var barServerMembers = append(containerMembers[*BarServer](),
	bridge.Method("Create", func(_ context.Context, s *BarServer, args []any) (any, error) {
		n, err := intArgs(args, 3)
		if err != nil {
			return nil, err
		}
		return nil, s.Create(n[0], n[1], n[2])
	}),
	labelSetterMember[*BarServer](),
)
