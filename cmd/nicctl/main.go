package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lankaid/nic/logger"
)

// NewRootCommand assembles the nicctl command tree.
func NewRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "nicctl",
		Short:        "nicctl validates and decodes Sri Lankan NIC numbers.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		NewValidateCommand(a),
		NewTraceCommand(a),
		NewSuiteCommand(a),
		NewReplCommand(a),
		NewFormatsCommand(a),
	)
	return rootCmd
}

// run executes the command tree and maps the outcome to an exit code.
// A command that silenced its errors fails without the log line either,
// so a quiet failure reports through the exit code alone.
func (a *app) run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	command, err := rootCmd.ExecuteC()
	if err != nil {
		if !command.SilenceErrors && !rootCmd.SilenceErrors {
			a.log.Error("nicctl failed", logger.Error(err))
		}
		return 1
	}
	return 0
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := NewRootCommand(a)
	// Outputs cmd.Print to stdout.
	rootCmd.SetOut(os.Stdout)
	os.Exit(a.run(rootCmd, os.Args[1:]))
}
