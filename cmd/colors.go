package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganttplanner/ganttplanner/core/colorname"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the color names usable in project and employee definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := colorname.New(nil)
		if err != nil {
			return err
		}
		for _, name := range table.Names() {
			hex, err := table.Hex(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, hex)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}
