// Package entities provides the plain data types shared by every layer of the SDK:
// host type tags, entity family tags, enumeration values and structured error details.
// Nothing in this package talks to a host.
package entities
