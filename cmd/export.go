package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/examdist/pkg/export"
)

var exportOpts planFlags

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Compute the distribution and write one roster file per day",
	Long: "Compute the distribution and write the rosters with the configured exporters.\n" +
		"Available exporter types: " + strings.Join(export.Formats(), ", "),
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportOpts.register(exportCmd, true)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	svc, err := newService(&exportOpts)
	if err != nil {
		return err
	}
	defer closeService(svc)

	run, err := svc.Plan(ctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), run.Report()); err != nil {
		return err
	}
	if err := svc.Export(ctx, run); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nFiles exported (run %s)\n", run.ID)
	return err
}
