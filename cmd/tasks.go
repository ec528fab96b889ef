package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ganttplanner/ganttplanner/app"
	"github.com/ganttplanner/ganttplanner/config"
	"github.com/ganttplanner/ganttplanner/pkg/export"
)

var tasksFormat string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Print the resolved task list as CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		svc, err := app.New(cfg, filepath.Dir(cfgPath))
		if err != nil {
			return err
		}
		projects, err := svc.Projects()
		if err != nil {
			return err
		}
		entries := export.Flatten(projects)
		switch tasksFormat {
		case "csv":
			return export.WriteCSV(cmd.OutOrStdout(), entries)
		case "json":
			return export.WriteJSON(cmd.OutOrStdout(), entries)
		default:
			return fmt.Errorf("unknown format %q", tasksFormat)
		}
	},
}

func init() {
	tasksCmd.Flags().StringVarP(&tasksFormat, "format", "f", "csv", "output format (csv or json)")
	rootCmd.AddCommand(tasksCmd)
}
