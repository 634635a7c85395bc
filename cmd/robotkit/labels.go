package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robotkit/robotkit-sdk/labels"
	"github.com/robotkit/robotkit-sdk/robot"
)

type labelEntry struct {
	Name string `json:"name"`
	Data any    `json:"data"`
}

// dumpLabels decodes every label of r.
func dumpLabels[D any](ctx context.Context, r *labels.Registry[*labels.Label[D]]) ([]labelEntry, error) {
	names, err := r.Names(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]labelEntry, 0, len(names))
	for _, name := range names {
		l, err := r.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		data, err := l.Data(ctx)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", name, err)
		}
		out = append(out, labelEntry{Name: name, Data: data})
	}
	return out, nil
}

func newLabelsCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "labels materials|sections|supports|releases",
		Short: "List the labels of one kind with their payloads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, *cfgFile, func(s *session) error {
				ctx := cmd.Context()
				var entries []labelEntry
				var err error
				switch args[0] {
				case "materials":
					entries, err = dump(ctx, s.app.Materials, func(r *robot.Materials) ([]labelEntry, error) {
						return dumpLabels(ctx, r.Registry)
					})
				case "sections":
					entries, err = dump(ctx, s.app.Sections, func(r *robot.Sections) ([]labelEntry, error) {
						return dumpLabels(ctx, r.Registry)
					})
				case "supports":
					entries, err = dump(ctx, s.app.Supports, func(r *robot.Supports) ([]labelEntry, error) {
						return dumpLabels(ctx, r.Registry)
					})
				case "releases":
					entries, err = dump(ctx, s.app.Releases, func(r *robot.Releases) ([]labelEntry, error) {
						return dumpLabels(ctx, r.Registry)
					})
				default:
					return fmt.Errorf("unknown label kind %q", args[0])
				}
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
}

func dump[R any](ctx context.Context, open func(context.Context) (R, error), fn func(R) ([]labelEntry, error)) ([]labelEntry, error) {
	r, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return fn(r)
}
