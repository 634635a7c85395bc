package labels

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/contract"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Decoder reads the payload of a label into D. data wraps the payload
// instance, already narrowed to the label type's DataType.
type Decoder[D any] func(ctx context.Context, data *capsule.Capsule) (D, error)

// LabelType describes one wrapped label type.
type LabelType[D any] struct {
	// Decode reads the payload.
	Decode Decoder[D]

	// Owned lists the members the wrapped label declares.
	Owned *capsule.Owned

	// Name identifies the type in errors.
	Name string

	// LabelType is the host type the label must satisfy.
	LabelType entities.TypeTag

	// DataType is the host type the payload is narrowed to.
	DataType entities.TypeTag
}

var labelContract = contract.Require("LabelType", "DataType", "Decode")

// DefineLabel checks that a label type assigns every tag.
func DefineLabel[D any](lt LabelType[D]) (*LabelType[D], error) {
	def := lt
	if err := labelContract.Define(contract.Definition{Name: def.Name, Attributes: &def}); err != nil {
		return nil, err
	}
	return &def, nil
}

// MustDefineLabel is like DefineLabel but panics on error.
func MustDefineLabel[D any](lt LabelType[D]) *LabelType[D] {
	def, err := DefineLabel(lt)
	if err != nil {
		panic(err)
	}
	return def
}

// Label wraps one named host label and exposes its payload.
type Label[D any] struct {
	*capsule.Capsule
	typ *LabelType[D]
}

// NewLabel wraps inst as a label of type lt.
func NewLabel[D any](inst ports.Instance, lt *LabelType[D], opts ...capsule.Option) (*Label[D], error) {
	if lt == nil {
		return nil, fmt.Errorf("label type is nil")
	}
	opts = append([]capsule.Option{capsule.WithName(lt.Name), capsule.WithOwned(lt.Owned)}, opts...)
	c, err := capsule.New(inst, lt.LabelType, opts...)
	if err != nil {
		return nil, err
	}
	return &Label[D]{Capsule: c, typ: lt}, nil
}

// Wrapper returns a registry result function producing labels of type lt.
func Wrapper[D any](lt *LabelType[D]) Wrap[*Label[D]] {
	return func(_ context.Context, inst ports.Instance, opts ...capsule.Option) (*Label[D], error) {
		return NewLabel(inst, lt, opts...)
	}
}

// Type returns the label's type.
func (l *Label[D]) Type() *LabelType[D] {
	return l.typ
}

// Data narrows the label's payload to the type's DataType and decodes it.
func (l *Label[D]) Data(ctx context.Context) (D, error) {
	var zero D
	data, err := capsule.ReadInstance(ctx, l.Capsule, "Data", l.typ.DataType)
	if err != nil {
		return zero, err
	}
	return l.typ.Decode(ctx, data)
}

// DataCapsule returns the label's payload wrapped but not decoded, for writing.
func (l *Label[D]) DataCapsule(ctx context.Context) (*capsule.Capsule, error) {
	return capsule.ReadInstance(ctx, l.Capsule, "Data", l.typ.DataType)
}

// Name returns the label's name as stored on the host.
func (l *Label[D]) Name(ctx context.Context) (string, error) {
	return capsule.ReadAs[string](ctx, l.Capsule, "Name")
}

// String returns the label's name.
func (l *Label[D]) String() string {
	name, err := l.Name(context.Background())
	if err != nil {
		return ""
	}
	return name
}
