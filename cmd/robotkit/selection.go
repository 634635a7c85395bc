package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSelectCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "select nodes|bars|cases SELECTOR",
		Short: "Resolve a selection against the model",
		Long: `Resolve a selection string such as "all", "1to10by2" or "1 4 7" against the
model and print the selected numbers, in host order.

Examples:
  robotkit select -m frame.yaml nodes all
  robotkit select -m frame.yaml bars "1to9by2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, *cfgFile, func(s *session) error {
				ctx := cmd.Context()
				var ids []int
				var err error
				switch args[0] {
				case "nodes":
					r, rerr := s.app.Nodes(ctx)
					if rerr != nil {
						return rerr
					}
					ids, err = r.CollectIDs(ctx, args[1])
				case "bars":
					r, rerr := s.app.Bars(ctx)
					if rerr != nil {
						return rerr
					}
					ids, err = r.CollectIDs(ctx, args[1])
				case "cases":
					r, rerr := s.app.Cases(ctx)
					if rerr != nil {
						return rerr
					}
					ids, err = r.CollectIDs(ctx, args[1])
				default:
					return fmt.Errorf("unknown domain %q: want nodes, bars or cases", args[0])
				}
				if err != nil {
					return err
				}
				if ids == nil {
					ids = []int{}
				}
				return writeJSON(cmd.OutOrStdout(), ids)
			})
		},
	}
}
