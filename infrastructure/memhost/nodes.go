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

// Node is a structure node.
type Node struct {
	hostType
	support string
	number  int
	x, y, z float64
}

// Number returns the node number.
func (n *Node) Number() int {
	return n.number
}

// NodeServer holds the nodes of the structure.
type NodeServer struct {
	hostType
	*store[*Node]
	labels *LabelServer
}

func newNodeServer(labels *LabelServer) *NodeServer {
	return &NodeServer{
		hostType: nodeServerType,
		store:    newStore[*Node]("node"),
		labels:   labels,
	}
}

// Create adds the node numbered num at (x, y, z).
func (s *NodeServer) Create(num int, x, y, z float64) error {
	return s.insert(&Node{hostType: nodeType, number: num, x: x, y: y, z: z})
}

// SetLabel gives the support label name to the nodes of sel. An empty name
// removes the support.
func (s *NodeServer) SetLabel(ctx context.Context, sel ports.Selection, kind entities.LabelKind, name string) error {
	if kind != robotom.LabelSupport {
		return &errors.ValueError{Value: kind, Reason: "nodes carry support labels only"}
	}
	return assignLabel(ctx, s.store, s.labels, sel, kind, name, func(n *Node) { n.support = name })
}

// assignLabel checks that the label exists, then applies set to every
// existing entity of sel.
func assignLabel[E numbered](ctx context.Context, st *store[E], labels *LabelServer, sel ports.Selection, kind entities.LabelKind, name string, set func(E)) error {
	if name != "" {
		ok, err := labels.Exist(ctx, kind, name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("label %q of kind %d: %w", name, kind, ErrNotFound)
		}
	}
	for i := 1; i <= sel.Count(); i++ {
		if e, ok := st.lookup(sel.Get(i)); ok {
			set(e)
		}
	}
	return nil
}

var nodeMembers = []bridge.TableOption{
	bridge.ReadOnly("Number", func(_ context.Context, n *Node) (int, error) {
		return n.number, nil
	}),
	bridge.Property("X",
		func(_ context.Context, n *Node) (float64, error) { return n.x, nil },
		func(_ context.Context, n *Node, v float64) error { n.x = v; return nil },
	),
	bridge.Property("Y",
		func(_ context.Context, n *Node) (float64, error) { return n.y, nil },
		func(_ context.Context, n *Node, v float64) error { n.y = v; return nil },
	),
	bridge.Property("Z",
		func(_ context.Context, n *Node) (float64, error) { return n.z, nil },
		func(_ context.Context, n *Node, v float64) error { n.z = v; return nil },
	),
	bridge.ReadOnly("Support", func(_ context.Context, n *Node) (string, error) {
		return n.support, nil
	}),
}

var nodeServerMembers = append(containerMembers[*NodeServer](),
	bridge.Method("Create", func(_ context.Context, s *NodeServer, args []any) (any, error) {
		num, err := bridge.Arg[int](args, 0)
		if err != nil {
			return nil, err
		}
		coords, err := floatArgs(args[1:], 3)
		if err != nil {
			return nil, err
		}
		return nil, s.Create(num, coords[0], coords[1], coords[2])
	}),
	labelSetterMember[*NodeServer](),
)
