package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

// NewReplCommand starts the interactive loop on stdin.
func NewReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "repl",
		Short:        "Validate NIC numbers interactively",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, _ []string) error {
			return a.runRepl(command)
		},
	}
}

func (a *app) runRepl(command *cobra.Command) error {
	command.Println("Enter NIC numbers to validate.")
	command.Println("Commands: 'quit' to exit, 'suite' to run the conformance suite,")
	command.Println("          'formats' for the layout reference, 'help' for this text")
	command.Println()

	scanner := bufio.NewScanner(command.InOrStdin())
	for {
		command.Print("nic> ")
		if !scanner.Scan() {
			command.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			command.Println("Bye.")
			return nil
		case "help":
			command.Println("Type a NIC number to see its verdict, decoded fields, and trace.")
			command.Println("Commands: quit, exit, suite, formats, help")
		case "suite":
			// Suite failures are reported inline; the loop keeps running.
			_ = a.runSuite(command)
		case "formats":
			printFormats(command)
		default:
			printReport(command, buildReport(line))
			command.Println()
			printTrace(command, line)
		}
		command.Println()
	}
}
