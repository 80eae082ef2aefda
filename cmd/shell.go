package cmd

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the plan with commands read from stdin",
	Long: `Reads one command per line and prints the resulting plan.
Type "help" for the list of commands and "quit" to leave.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	return svc.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
