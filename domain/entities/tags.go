package entities

import "strconv"

// TypeTag names a type of the host object model, either a concrete class or an
// interface that a host instance can be narrowed to (e.g. "IRobotNode").
type TypeTag string

// String returns the tag as written in the host's type library.
func (t TypeTag) String() string {
	return string(t)
}

// DomainTag identifies an entity family to the host's selection mechanism.
// Its value is the host object-type code of the family; zero means undefined.
type DomainTag int

// String returns the numeric form of the tag.
func (t DomainTag) String() string {
	return "domain:" + strconv.Itoa(int(t))
}

// LabelKind distinguishes label sub-types that share the host's named-label container.
// Its value is the host label-type code; zero means undefined.
type LabelKind int

// String returns the numeric form of the kind.
func (k LabelKind) String() string {
	return "label:" + strconv.Itoa(int(k))
}
