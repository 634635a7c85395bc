package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/robotkit/robotkit-sdk/robot"
)

type enumEntry struct {
	Key    string `json:"key"`
	Member string `json:"member"`
	Code   int    `json:"code"`
	Alias  bool   `json:"alias,omitempty"`
}

func newEnumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums [TABLE]",
		Short: "List alias tables, or the keys of one table",
		Long: `Without arguments, list the alias tables and the keyword synonyms.
With a table name, list every key of the table with the member it names.

Examples:
  robotkit enums
  robotkit enums CaseNature`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := robot.Tables()
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"tables":   slices.Sorted(maps.Keys(tables)),
					"synonyms": robot.Synonyms.Keys(),
				})
			}
			table, ok := tables[args[0]]
			if !ok {
				return fmt.Errorf("unknown table %q", args[0])
			}
			custom := table.CustomIndex()
			entries := make([]enumEntry, 0, table.Len())
			for key, v := range table.Entries() {
				_, isAlias := custom[key]
				entries = append(entries, enumEntry{Key: key, Member: v.Name(), Code: v.Int(), Alias: isAlias})
			}
			return writeJSON(cmd.OutOrStdout(), entries)
		},
	}
}
