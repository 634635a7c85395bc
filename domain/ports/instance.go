package ports

import "github.com/robotkit/robotkit-sdk/domain/entities"

// Instance is an opaque, borrowed handle into the host's object graph.
// Its members are reached through the member table registered for HostType.
type Instance interface {
	// HostType returns the concrete host type of the instance.
	HostType() entities.TypeTag

	// Satisfies reports whether the instance can be narrowed to tag, either
	// because tag is its concrete type or an interface it implements.
	Satisfies(tag entities.TypeTag) bool
}
