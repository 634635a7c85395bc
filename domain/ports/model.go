package ports

import "github.com/robotkit/robotkit-sdk/domain/entities"

// ModelLoader parses a model description used to seed a reference host.
type ModelLoader interface {
	// Load unmarshals and validates raw model data.
	Load(data []byte) (*entities.Model, error)
}

// SchemaRegistry manages JSON schemas for label payload types.
type SchemaRegistry interface {
	// Register adds a schema generated from a Go struct.
	Register(kind string, model any) error

	// GetSchema retrieves the JSON Schema for a payload type.
	GetSchema(kind string) (string, bool)

	// List returns all registered payload type names.
	List() []string
}

// TemplateEngine renders a model file before it is loaded.
type TemplateEngine interface {
	// Render executes raw with vars available as {{.vars.name}}.
	Render(raw []byte, vars map[string]any) ([]byte, error)
}
