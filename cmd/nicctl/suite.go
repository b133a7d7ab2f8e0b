package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lankaid/nic/conformance"
	"github.com/lankaid/nic/logger"
)

// NewSuiteCommand runs the conformance suite against the live validator.
func NewSuiteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "suite",
		Short:        "Run the conformance suite and report PASS/FAIL per case",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, _ []string) error {
			return a.runSuite(command)
		},
	}
}

func (a *app) runSuite(command *cobra.Command) error {
	start := time.Now()
	outcomes, passed := conformance.VerifyAll()

	for _, out := range outcomes {
		command.Printf("%s  %s\n", suiteMark(out.Passed), out.Case.Name)
		command.Printf("        input: %q\n", out.Case.Input)
		if out.Case.Note != "" {
			command.Printf("        note: %s\n", out.Case.Note)
		}
		if !out.Passed {
			command.Printf("        %s\n", strings.Join(out.Problems, "; "))
		}
	}

	failed := len(outcomes) - passed
	command.Printf("\nResults: %d passed, %d failed out of %d cases\n", passed, failed, len(outcomes))

	a.log.Debug("suite finished",
		logger.Component("suite"),
		logger.Count(len(outcomes)),
		logger.Elapsed(start),
	)

	if failed > 0 {
		return fmt.Errorf("%d conformance cases failed", failed)
	}
	return nil
}

func suiteMark(passed bool) string {
	if passed {
		return color.GreenString("✓ PASS")
	}
	return color.RedString("✗ FAIL")
}
