package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "robotkit",
		Short: "Inspect a structure model through the robotkit object model",
		Long: `robotkit seeds the in-memory reference host from a YAML model and inspects
it through the same registries application code uses.

The model file is a Go template: --set span=6 makes {{.vars.span}} available.

Configuration is read from robotkit.yaml in the current directory (or --config),
ROBOTKIT_* environment variables and flags, flags taking precedence.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./robotkit.yaml)")
	root.PersistentFlags().StringP("model", "m", "", "YAML model seeding the reference host")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")
	root.PersistentFlags().Bool("trace", false, "print host member spans to stderr")
	root.PersistentFlags().StringToString("set", nil, "model template variable, as name=value (repeatable)")

	root.AddCommand(
		newEnumsCmd(),
		newSelectCmd(&cfgFile),
		newLabelsCmd(&cfgFile),
		newSchemaCmd(),
	)
	return root
}

// runSession loads the configuration, opens a session and runs fn with it.
func runSession(cmd *cobra.Command, cfgFile string, fn func(*session) error) error {
	cfg, err := loadConfig(cmd, cfgFile)
	if err != nil {
		return err
	}
	s, err := openSession(cmd.Context(), cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runErr := fn(s)
	if err := s.Close(cmd.Context()); err != nil && runErr == nil {
		runErr = fmt.Errorf("flushing traces: %w", err)
	}
	return runErr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
