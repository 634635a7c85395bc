package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/infrastructure/schema"
	"github.com/robotkit/robotkit-sdk/robot"
)

// newSchemas registers the label payloads and the model.
func newSchemas() (ports.SchemaRegistry, error) {
	r := schema.NewRegistry()
	if err := schema.RegisterAll(r, robot.Payloads()); err != nil {
		return nil, err
	}
	if err := r.Register("MODEL", entities.Model{}); err != nil {
		return nil, err
	}
	return r, nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [KIND]",
		Short: "List payload kinds, or print the JSON schema of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas, err := newSchemas()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), schemas.List())
			}
			s, ok := schemas.GetSchema(args[0])
			if !ok {
				return fmt.Errorf("unknown payload kind %q", args[0])
			}
			_, err = io.WriteString(cmd.OutOrStdout(), s+"\n")
			return err
		},
	}
}
