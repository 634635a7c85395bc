package labels

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

const (
	matKind  entities.LabelKind = 8
	sectKind entities.LabelKind = 1
	barsTag  entities.DomainTag = 2
)

type matData struct{ e float64 }

func (d *matData) HostType() entities.TypeTag          { return "RobotMaterialData" }
func (d *matData) Satisfies(tag entities.TypeTag) bool { return tag == "IRobotMaterialData" }

type label struct {
	data ports.Instance
	name string
	kind entities.LabelKind
}

func (l *label) HostType() entities.TypeTag          { return "RobotLabel" }
func (l *label) Satisfies(tag entities.TypeTag) bool { return tag == "IRobotLabel" }

type labelServer struct {
	stored map[entities.LabelKind][]*label
	fail   bool
}

func newServer() *labelServer {
	return &labelServer{stored: map[entities.LabelKind][]*label{}}
}

func (s *labelServer) HostType() entities.TypeTag          { return "RobotLabelServer" }
func (s *labelServer) Satisfies(tag entities.TypeTag) bool { return tag == "IRobotLabelServer" }

func (s *labelServer) Create(_ context.Context, kind entities.LabelKind, name string) (ports.Instance, error) {
	return &label{name: name, kind: kind, data: &matData{}}, nil
}

func (s *labelServer) Get(_ context.Context, kind entities.LabelKind, name string) (ports.Instance, error) {
	if s.fail {
		panic("server down")
	}
	for _, l := range s.stored[kind] {
		if l.name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("label %q not found", name)
}

func (s *labelServer) Delete(_ context.Context, kind entities.LabelKind, name string) error {
	kept := s.stored[kind][:0]
	for _, l := range s.stored[kind] {
		if l.name != name {
			kept = append(kept, l)
		}
	}
	s.stored[kind] = kept
	return nil
}

func (s *labelServer) Exist(_ context.Context, kind entities.LabelKind, name string) (bool, error) {
	for _, l := range s.stored[kind] {
		if l.name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *labelServer) AvailableNames(_ context.Context, kind entities.LabelKind) ([]string, error) {
	var names []string
	for _, l := range s.stored[kind] {
		names = append(names, l.name)
	}
	return names, nil
}

func (s *labelServer) Store(ctx context.Context, inst ports.Instance, name string) error {
	l := inst.(*label)
	_ = s.Delete(ctx, l.kind, name)
	l.name = name
	s.stored[l.kind] = append(s.stored[l.kind], l)
	return nil
}

type barServer struct {
	begun, ended int
	assigned     map[int]string
}

func (b *barServer) BeginMultiOperation(context.Context) error { b.begun++; return nil }
func (b *barServer) EndMultiOperation(context.Context) error   { b.ended++; return nil }

func (b *barServer) SetLabel(_ context.Context, sel ports.Selection, kind entities.LabelKind, name string) error {
	if kind != matKind {
		return fmt.Errorf("unexpected kind %v", kind)
	}
	for i := 1; i <= sel.Count(); i++ {
		b.assigned[sel.Get(i)] = name
	}
	return nil
}

type listSelection struct{ ids []int }

func (s *listSelection) FromText(_ context.Context, text string) error {
	if text != "1to2" {
		return fmt.Errorf("unsupported %q", text)
	}
	s.ids = []int{1, 2}
	return nil
}
func (s *listSelection) Count() int    { return len(s.ids) }
func (s *listSelection) Get(i int) int { return s.ids[i-1] }
func (s *listSelection) Clear()        { s.ids = nil }

type app struct{ domains []entities.DomainTag }

func (a *app) Selections() ports.SelectionFactory { return a }
func (a *app) Create(_ context.Context, d entities.DomainTag) (ports.Selection, error) {
	a.domains = append(a.domains, d)
	return &listSelection{}, nil
}
func (a *app) Get(ctx context.Context, d entities.DomainTag) (ports.Selection, error) {
	return a.Create(ctx, d)
}

func testCatalog(t *testing.T) *bridge.Catalog {
	t.Helper()
	catalog := bridge.NewCatalog()
	require.NoError(t, catalog.Register(
		bridge.MustTable("RobotLabel",
			bridge.ReadOnly("Name", func(_ context.Context, l *label) (string, error) { return l.name, nil }),
			bridge.ReadOnly("Data", func(_ context.Context, l *label) (ports.Instance, error) { return l.data, nil }),
		),
		bridge.MustTable("RobotMaterialData",
			bridge.Property("E",
				func(_ context.Context, d *matData) (float64, error) { return d.e, nil },
				func(_ context.Context, d *matData, v float64) error { d.e = v; return nil },
			),
		),
	))
	return catalog
}

type material struct{ E float64 }

var materialType = MustDefineLabel(LabelType[material]{
	Name:      "MaterialLabel",
	LabelType: "IRobotLabel",
	DataType:  "IRobotMaterialData",
	Decode: func(ctx context.Context, data *capsule.Capsule) (material, error) {
		e, err := capsule.ReadAs[float64](ctx, data, "E")
		return material{E: e}, err
	},
})

var materialKind = MustDefine(Kind[*Label[material]]{
	Name:          "materials",
	ContainerType: "IRobotLabelServer",
	CastType:      "IRobotLabel",
	KindTag:       matKind,
	DataType:      "IRobotMaterialData",
	Result:        Wrapper(materialType),
})

func newRegistry(t *testing.T) (*Registry[*Label[material]], *labelServer, *app) {
	t.Helper()
	srv := newServer()
	a := &app{}
	r, err := New(materialKind, srv, a, WithCatalog(testCatalog(t)))
	require.NoError(t, err)
	return r, srv, a
}

func storeMaterial(t *testing.T, r *Registry[*Label[material]], name string, e float64) *Label[material] {
	t.Helper()
	ctx := context.Background()
	raw, err := r.Create(ctx, name)
	require.NoError(t, err)
	raw.(*label).data.(*matData).e = e
	l, err := r.Store(ctx, raw, name)
	require.NoError(t, err)
	return l
}

func TestDefine_Contract(t *testing.T) {
	_, err := Define(Kind[*Label[material]]{
		Name:          "broken",
		ContainerType: "IRobotLabelServer",
		CastType:      "IRobotLabel",
		KindTag:       matKind,
		Result:        Wrapper(materialType),
	})
	var missing *errors.MissingContractAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "DataType", missing.Attribute)

	abstract, err := Define(Kind[*Label[material]]{Name: "base", Abstract: true})
	require.NoError(t, err)
	_, err = New(abstract, newServer(), &app{})
	assert.Error(t, err)

	_, err = DefineLabel(LabelType[material]{Name: "NoDecode", LabelType: "IRobotLabel", DataType: "IRobotMaterialData"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Decode", missing.Attribute)
}

func TestRegistry_GetAndData(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newRegistry(t)
	storeMaterial(t, r, "S235", 210e9)

	l, err := r.Get(ctx, "S235")
	require.NoError(t, err)
	assert.Equal(t, "S235", l.String())

	data, err := l.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, 210e9, data.E)
	assert.Same(t, materialType, l.Type())
}

func TestRegistry_GetMissing(t *testing.T) {
	ctx := context.Background()
	r, srv, _ := newRegistry(t)

	_, err := r.Get(ctx, "C30/37")
	var lookup *errors.LookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, "C30/37", lookup.Key)

	srv.fail = true
	_, err = r.Get(ctx, "C30/37")
	assert.ErrorIs(t, err, errors.ErrLookup)
	assert.ErrorIs(t, err, errors.ErrHost)
}

func TestRegistry_NamesDeleteExist(t *testing.T) {
	ctx := context.Background()
	r, srv, _ := newRegistry(t)
	storeMaterial(t, r, "S235", 1)
	storeMaterial(t, r, "S355", 2)
	storeMaterial(t, r, "C25", 3)
	srv.stored[sectKind] = []*label{{name: "IPE100", kind: sectKind}}

	names, err := r.Names(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"S235", "S355", "C25"}, names)

	steel, err := r.Names(ctx, func(n string) bool { return n[0] == 'S' })
	require.NoError(t, err)
	assert.Equal(t, []string{"S235", "S355"}, steel)

	ok, err := r.Exist(ctx, "S355")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.Delete(ctx, "S355"))
	ok, err = r.Exist(ctx, "S355")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Exist(ctx, "IPE100")
	require.NoError(t, err)
	assert.False(t, ok, "other label kinds are not visible")
}

func TestRegistry_StoreReplaces(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newRegistry(t)
	storeMaterial(t, r, "S235", 1)
	storeMaterial(t, r, "S235", 2)

	names, err := r.Names(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"S235"}, names)

	l, err := r.Get(ctx, "S235")
	require.NoError(t, err)
	data, err := l.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, data.E)
}

func TestRegistry_Assign(t *testing.T) {
	r, _, a := newRegistry(t)
	bars := &barServer{assigned: map[int]string{}}

	require.NoError(t, r.Assign(context.Background(), bars, barsTag, "1to2", "S235"))
	assert.Equal(t, map[int]string{1: "S235", 2: "S235"}, bars.assigned)
	assert.Equal(t, []entities.DomainTag{barsTag}, a.domains)
	assert.Equal(t, 1, bars.begun)
	assert.Equal(t, 1, bars.ended)

	err := r.Assign(context.Background(), bars, barsTag, "bad", "S235")
	require.Error(t, err)
}

func TestLabel_DataTypeMismatch(t *testing.T) {
	ctx := context.Background()
	catalog := testCatalog(t)
	l, err := NewLabel(&label{name: "odd", data: &label{}}, materialType, capsule.WithCatalog(catalog))
	require.NoError(t, err)

	_, err = l.Data(ctx)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	dc, err := NewLabel(&label{name: "ok", data: &matData{}}, materialType, capsule.WithCatalog(catalog))
	require.NoError(t, err)
	data, err := dc.DataCapsule(ctx)
	require.NoError(t, err)
	require.NoError(t, data.Write(ctx, "E", 5.0))
	got, err := dc.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.E)
}

func TestNewLabel_Errors(t *testing.T) {
	_, err := NewLabel[material](&label{}, nil)
	require.Error(t, err)

	_, err = NewLabel(&matData{}, materialType)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	l, err := NewLabel(&label{name: "x"}, materialType, capsule.WithCatalog(bridge.NewCatalog()))
	require.NoError(t, err)
	assert.Empty(t, l.String())
}
