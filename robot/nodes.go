package robot

import (
	"cmp"
	"context"
	"math"
	"slices"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/registry"
	"github.com/robotkit/robotkit-sdk/robotom"
)

// Point is a position in the global coordinate system.
type Point struct {
	X, Y, Z float64
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt((p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y) + (p.Z-q.Z)*(p.Z-q.Z))
}

// Node wraps a host node.
type Node struct {
	*capsule.Capsule
}

var nodeOwned = capsule.NewOwned(capsule.Field{
	Name: "Point",
	Get: func(ctx context.Context, c *capsule.Capsule) (any, error) {
		return (&Node{Capsule: c}).Point(ctx)
	},
})

func wrapNode(_ context.Context, inst ports.Instance, opts ...capsule.Option) (*Node, error) {
	opts = append([]capsule.Option{capsule.WithName("Node"), capsule.WithOwned(nodeOwned)}, opts...)
	c, err := capsule.New(inst, robotom.IRobotNode, opts...)
	if err != nil {
		return nil, err
	}
	return &Node{Capsule: c}, nil
}

// Number returns the node number.
func (n *Node) Number(ctx context.Context) (int, error) {
	return capsule.ReadAs[int](ctx, n.Capsule, "Number")
}

// Point returns the node coordinates.
func (n *Node) Point(ctx context.Context) (Point, error) {
	var p Point
	for _, f := range []struct {
		dst  *float64
		name string
	}{{&p.X, "X"}, {&p.Y, "Y"}, {&p.Z, "Z"}} {
		v, err := capsule.ReadAs[float64](ctx, n.Capsule, f.name)
		if err != nil {
			return Point{}, err
		}
		*f.dst = v
	}
	return p, nil
}

// Move sets the node coordinates, writing X, Y then Z.
func (n *Node) Move(ctx context.Context, p Point) error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"X", p.X}, {"Y", p.Y}, {"Z", p.Z}} {
		if err := n.Write(ctx, f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// Support returns the name of the node's support label, "" when unsupported.
func (n *Node) Support(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, n.Capsule, "Support")
}

// DistanceTo returns the distance between n and other.
func (n *Node) DistanceTo(ctx context.Context, other *Node) (float64, error) {
	p, err := n.Point(ctx)
	if err != nil {
		return 0, err
	}
	q, err := other.Point(ctx)
	if err != nil {
		return 0, err
	}
	return p.Distance(q), nil
}

// NodeKind is the registry kind of structure nodes.
var NodeKind = registry.MustDefine(registry.Kind[*Node]{
	Name:          "nodes",
	ContainerType: robotom.IRobotNodeServer,
	CastType:      robotom.IRobotNode,
	DomainTag:     robotom.DomainNode,
	Result:        wrapNode,
})

// Nodes is the registry of structure nodes.
type Nodes struct {
	*registry.Registry[*Node]
	app *App
}

// Nodes returns the node registry of the open project.
func (a *App) Nodes(ctx context.Context) (*Nodes, error) {
	c, err := a.container(ctx, "Nodes", robotom.IRobotNodeServer)
	if err != nil {
		return nil, err
	}
	r, err := registry.New(NodeKind, c, a.host, registry.WithCatalog(a.catalog), registry.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	return &Nodes{Registry: r, app: a}, nil
}

// Create adds a node at p, at the lowest free number unless Number is given.
func (r *Nodes) Create(ctx context.Context, p Point, opts ...CreateOption) (*Node, error) {
	cfg, err := newCreateConfig(opts)
	if err != nil {
		return nil, err
	}
	num, err := r.Claim(ctx, cfg.number, cfg.overwrite)
	if err != nil {
		return nil, err
	}
	if _, err := r.Call(ctx, "Create", num, p.X, p.Y, p.Z); err != nil {
		return nil, err
	}
	return r.Get(ctx, num)
}

// CreateMany adds one node per point inside a single batch, at consecutive
// free numbers.
func (r *Nodes) CreateMany(ctx context.Context, points []Point) ([]*Node, error) {
	out := make([]*Node, 0, len(points))
	err := r.Batch(ctx, func(ctx context.Context) error {
		for _, p := range points {
			n, err := r.Create(ctx, p)
			if err != nil {
				return err
			}
			out = append(out, n)
		}
		return nil
	})
	return out, err
}

// NodeRow is one row of a node table.
type NodeRow struct {
	Number int
	Point
}

// Table returns the number and coordinates of the nodes named by selector,
// in selection order.
func (r *Nodes) Table(ctx context.Context, selector string) ([]NodeRow, error) {
	var rows []NodeRow
	for n, err := range r.Select(ctx, selector) {
		if err != nil {
			return nil, err
		}
		num, err := n.Number(ctx)
		if err != nil {
			return nil, err
		}
		p, err := n.Point(ctx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, NodeRow{Number: num, Point: p})
	}
	return rows, nil
}

// Distance returns the distance between the nodes numbered a and b.
func (r *Nodes) Distance(ctx context.Context, a, b int) (float64, error) {
	na, err := r.Get(ctx, a)
	if err != nil {
		return 0, err
	}
	nb, err := r.Get(ctx, b)
	if err != nil {
		return 0, err
	}
	return na.DistanceTo(ctx, nb)
}

// Closest returns the numbers of the count nodes named by selector closest to
// the node numbered from, closest first. A count of -1 sorts the whole
// selection. Equal distances keep selection order.
func (r *Nodes) Closest(ctx context.Context, from int, selector string, count int) ([]int, error) {
	if count == 0 || count < -1 {
		return nil, &errors.ValueError{Value: count, Reason: "count must be positive or -1"}
	}
	origin, err := r.Get(ctx, from)
	if err != nil {
		return nil, err
	}
	o, err := origin.Point(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.Table(ctx, selector)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(rows, func(a, b NodeRow) int {
		return cmp.Compare(o.Distance(a.Point), o.Distance(b.Point))
	})
	if count != -1 && count < len(rows) {
		rows = rows[:count]
	}
	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.Number
	}
	return ids, nil
}

// SetSupport gives the support label name to the nodes named by selector.
func (r *Nodes) SetSupport(ctx context.Context, selector, name string) error {
	supports, err := r.app.Supports(ctx)
	if err != nil {
		return err
	}
	return supports.Assign(ctx, selector, name)
}
