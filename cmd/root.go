package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ganttplanner/ganttplanner/app"
	"github.com/ganttplanner/ganttplanner/config"
)

var (
	cfgPath    string
	periods    []string
	employees  []string
	resources  bool
	exportFlag bool
	scale      string
	noDetails  bool
	outputDir  string
	outputBase string
)

var rootCmd = &cobra.Command{
	Use:   "ganttplanner",
	Short: "Generate Gantt charts and planning reports from YAML project files",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringSliceVarP(&periods, "period", "p", nil, "period names to render (default: the full window)")
	rootCmd.Flags().StringSliceVarP(&employees, "employee", "m", nil, "employee ids to render dedicated charts for")
	rootCmd.Flags().BoolVarP(&resources, "resources", "r", false, "also render the collapsed resources chart")
	rootCmd.Flags().BoolVarP(&exportFlag, "export", "e", false, "write the report workbook instead of charts")
	rootCmd.Flags().StringVarP(&scale, "scale", "s", "", "override the chart scale (daily or weekly)")
	rootCmd.Flags().BoolVar(&noDetails, "no-details", false, "skip tasks marked as detail")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	rootCmd.Flags().StringVarP(&outputBase, "basename", "b", "planning", "base name of the output files")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg, filepath.Dir(cfgPath))
	if err != nil {
		return err
	}
	return svc.Run(ctx, app.RunOptions{
		Periods:    periods,
		Employees:  employees,
		Resources:  resources,
		Export:     exportFlag,
		Scale:      scale,
		NoDetails:  noDetails,
		OutputDir:  outputDir,
		OutputBase: outputBase,
	})
}
