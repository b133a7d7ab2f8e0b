package main

import (
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/spf13/cobra"

	"github.com/lankaid/nic"
)

// NewTraceCommand prints the full state trace for one input.
func NewTraceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "trace <nic>",
		Short:        "Show the state-by-state recognition trace for one input",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			printTrace(command, args[0])
			return nil
		},
	}
}

// printTrace renders the trace table followed by the verdict. Rejected input
// is not an error here; the command exists to show why recognition failed.
func printTrace(command *cobra.Command, raw string) {
	norm := nic.Normalize(raw)
	res := nic.Validate(raw)

	if norm == "" {
		command.Println("empty input, nothing to trace")
		return
	}

	w := tabwriter.NewWriter(command.OutOrStdout(), 0, 0, 2, ' ', 0)
	table := tabby.NewCustom(w)
	table.AddHeader("STEP", "BYTE", "FROM", "TO")
	for i := 0; i < len(norm); i++ {
		table.AddLine(i+1, displayByte(norm[i]), res.Trace[i].String(), res.Trace[i+1].String())
	}
	table.Print()

	command.Printf("\n%s  format: %s, final state: %s\n",
		verdict(res.Accepted), formatLabel(res.Format), res.Final)
}
