package bridge

import (
	"context"

	"github.com/robotkit/robotkit-sdk/domain/entities"
)

// Op is the kind of member access being served.
type Op string

const (
	OpGet  Op = "get"
	OpSet  Op = "set"
	OpCall Op = "call"
)

// CallContext wraps a standard context.Context with the member being accessed.
// Middleware uses it to name spans and log records.
type CallContext interface {
	context.Context

	// HostType returns the host type whose member is accessed.
	HostType() entities.TypeTag

	// Member returns the name of the member being accessed.
	Member() string

	// Op returns the kind of access.
	Op() Op
}

type callContext struct {
	context.Context
	hostType entities.TypeTag
	member   string
	op       Op
}

// NewCallContext creates a CallContext wrapping ctx.
func NewCallContext(ctx context.Context, hostType entities.TypeTag, member string, op Op) CallContext {
	return &callContext{
		Context:  ctx,
		hostType: hostType,
		member:   member,
		op:       op,
	}
}

func (c *callContext) HostType() entities.TypeTag {
	return c.hostType
}

func (c *callContext) Member() string {
	return c.member
}

func (c *callContext) Op() Op {
	return c.op
}

// CallContextFrom returns ctx as a CallContext if it is one.
func CallContextFrom(ctx context.Context) (CallContext, bool) {
	cc, ok := ctx.(CallContext)
	return cc, ok
}
