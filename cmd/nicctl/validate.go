package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lankaid/nic/logger"
)

const (
	flagJSON  = "json"
	flagQuiet = "quiet"
)

func defineOutputFlags(flags *pflag.FlagSet) {
	flags.Bool(flagJSON, false, "emit machine-readable JSON instead of text")
	flags.Bool(flagQuiet, false, "print nothing, report through the exit code only")
}

// NewValidateCommand validates each argument and decodes the accepted ones.
func NewValidateCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:          "validate <nic> [<nic>...]",
		Short:        "Validate NIC numbers and decode their fields",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			return a.runValidate(command, args)
		},
	}
	defineOutputFlags(command.Flags())
	return command
}

func (a *app) runValidate(command *cobra.Command, args []string) error {
	start := time.Now()
	jsonOut, _ := command.Flags().GetBool(flagJSON)
	quiet, _ := command.Flags().GetBool(flagQuiet)

	failed := 0
	reports := make([]report, 0, len(args))
	for _, raw := range args {
		rep := buildReport(raw)
		if !rep.ok() {
			failed++
		}
		reports = append(reports, rep)
		a.log.Debug("validated",
			logger.Component("validate"),
			a.inputAttr(rep.Normalized),
			slog.Bool("accepted", rep.Accepted),
		)
	}

	switch {
	case quiet:
		// Exit code speaks; keep cobra from printing the error too.
		command.SilenceErrors = true
	case jsonOut:
		enc := json.NewEncoder(command.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	default:
		for _, rep := range reports {
			printReport(command, rep)
		}
	}

	a.log.Debug("validate finished",
		logger.Component("validate"),
		logger.Count(len(args)),
		logger.Elapsed(start),
	)

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed validation", failed, len(args))
	}
	return nil
}
