package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planOpts planFlags

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the distribution and print the summary report",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	planOpts.register(planCmd, false)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	svc, err := newService(&planOpts)
	if err != nil {
		return err
	}
	defer closeService(svc)

	run, err := svc.Plan(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), run.Report())
	return err
}
