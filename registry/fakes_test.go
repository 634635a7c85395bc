package registry

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

const (
	serverType entities.TypeTag   = "IRobotNodeServer"
	entityType entities.TypeTag   = "IRobotNode"
	nodeDomain entities.DomainTag = 1
)

type entity struct{ id int }

func (e *entity) HostType() entities.TypeTag { return "RobotNode" }
func (e *entity) Satisfies(tag entities.TypeTag) bool {
	return tag == entityType || tag == "RobotNode"
}

type other struct{}

func (o *other) HostType() entities.TypeTag          { return "RobotBar" }
func (o *other) Satisfies(tag entities.TypeTag) bool { return tag == "RobotBar" }

// server is an ordered in-memory container.
type server struct {
	ids     []int
	begun   int
	ended   int
	panicOn int
	badType int
	failEnd error
	calls   []string
}

func (s *server) HostType() entities.TypeTag          { return "RobotNodeServer" }
func (s *server) Satisfies(tag entities.TypeTag) bool { return tag == serverType }

func (s *server) Get(_ context.Context, id int) (ports.Instance, error) {
	if id == s.panicOn && id != 0 {
		panic("com exception")
	}
	if id == s.badType && id != 0 {
		return &other{}, nil
	}
	if !slices.Contains(s.ids, id) {
		return nil, fmt.Errorf("no entity %d", id)
	}
	return &entity{id: id}, nil
}

func (s *server) Exist(_ context.Context, id int) (bool, error) {
	return slices.Contains(s.ids, id), nil
}

func (s *server) Delete(_ context.Context, id int) error {
	s.calls = append(s.calls, "Delete:"+strconv.Itoa(id))
	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return v == id })
	return nil
}

func (s *server) GetMany(ctx context.Context, sel ports.Selection) ([]ports.Instance, error) {
	var out []ports.Instance
	for i := 1; i <= sel.Count(); i++ {
		inst, err := s.Get(ctx, sel.Get(i))
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

func (s *server) DeleteMany(_ context.Context, sel ports.Selection) error {
	var drop []int
	for i := 1; i <= sel.Count(); i++ {
		drop = append(drop, sel.Get(i))
	}
	s.ids = slices.DeleteFunc(s.ids, func(v int) bool { return slices.Contains(drop, v) })
	return nil
}

func (s *server) FreeNumber(context.Context) (int, error) {
	n := 1
	for slices.Contains(s.ids, n) {
		n++
	}
	return n, nil
}

func (s *server) create(id int) {
	s.ids = append(s.ids, id)
}

// multiServer adds the multi-operation hooks.
type multiServer struct{ *server }

func (m multiServer) BeginMultiOperation(context.Context) error {
	m.begun++
	return nil
}

func (m multiServer) EndMultiOperation(context.Context) error {
	m.ended++
	return m.failEnd
}

// selection resolves "all" or a space separated list against the server, in
// container order.
type selection struct {
	srv *server
	ids []int
}

func (s *selection) FromText(_ context.Context, text string) error {
	s.ids = nil
	if text == "all" {
		s.ids = slices.Clone(s.srv.ids)
		return nil
	}
	for _, f := range strings.Fields(text) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("bad selection %q", text)
		}
		if slices.Contains(s.srv.ids, n) {
			s.ids = append(s.ids, n)
		}
	}
	return nil
}

func (s *selection) Count() int    { return len(s.ids) }
func (s *selection) Get(i int) int { return s.ids[i-1] }
func (s *selection) Clear()        { s.ids = nil }

type app struct {
	srv     *server
	created []entities.DomainTag
	fail    error
}

func (a *app) Selections() ports.SelectionFactory { return a }

func (a *app) Create(_ context.Context, d entities.DomainTag) (ports.Selection, error) {
	a.created = append(a.created, d)
	if a.fail != nil {
		return nil, a.fail
	}
	return &selection{srv: a.srv}, nil
}

func (a *app) Get(ctx context.Context, d entities.DomainTag) (ports.Selection, error) {
	return a.Create(ctx, d)
}

// node is the wrapped result type.
type node struct{ ID int }

func wrapNode(_ context.Context, inst ports.Instance, _ ...capsule.Option) (*node, error) {
	return &node{ID: inst.(*entity).id}, nil
}

var nodeKind = MustDefine(Kind[*node]{
	Name:          "nodes",
	ContainerType: serverType,
	CastType:      entityType,
	DomainTag:     nodeDomain,
	Result:        wrapNode,
})
