package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/examdist/infra/roster"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <workbook>",
	Short: "List the sheets of an examinee workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	names, err := roster.Sheets(args[0])
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
			return err
		}
	}
	return nil
}
