// Package ports defines the interfaces through which the SDK reaches the host
// object model. Framework packages depend on these abstractions; a concrete
// host (COM bridge, in-memory reference host) implements them.
package ports
