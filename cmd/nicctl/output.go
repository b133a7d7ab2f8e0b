package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lankaid/nic"
)

// report is one input's full evaluation, shaped for both text and JSON output.
type report struct {
	Input      string      `json:"input"`
	Normalized string      `json:"normalized"`
	Accepted   bool        `json:"accepted"`
	Format     nic.Format  `json:"format,omitempty"`
	FinalState string      `json:"final_state"`
	Record     *nic.Record `json:"record,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ok reports whether the input made it through both the lexical and the
// semantic tier.
func (r report) ok() bool {
	return r.Error == ""
}

func buildReport(raw string) report {
	res := nic.Validate(raw)
	rep := report{
		Input:      raw,
		Normalized: nic.Normalize(raw),
		Accepted:   res.Accepted,
		Format:     res.Format,
		FinalState: res.Final.String(),
	}

	rec, err := nic.Parse(raw)
	if err != nil {
		rep.Error = err.Error()
		return rep
	}
	rep.Record = rec
	return rep
}

func verdict(accepted bool) string {
	if accepted {
		return color.GreenString("✓ ACCEPTED")
	}
	return color.RedString("✗ REJECTED")
}

func formatLabel(f nic.Format) string {
	if f == nic.FormatNone {
		return "none"
	}
	return string(f)
}

// displayByte renders one input byte for the trace table, falling back to hex
// for anything unprintable.
func displayByte(b byte) string {
	if b >= ' ' && b <= '~' {
		return string(b)
	}
	return fmt.Sprintf("0x%02X", b)
}

func printReport(command *cobra.Command, rep report) {
	command.Printf("%s  %s\n", verdict(rep.Accepted), rep.Input)
	if rep.Normalized != rep.Input {
		command.Printf("    normalized: %s\n", rep.Normalized)
	}
	command.Printf("    format: %s, final state: %s\n", formatLabel(rep.Format), rep.FinalState)
	if rep.Record != nil {
		command.Printf("    %s\n", rep.Record)
		if d, err := rep.Record.BirthDate(); err == nil {
			command.Printf("    born: %s\n", d.Format("2006-01-02"))
		}
	}
	if rep.Error != "" {
		command.Printf("    %s\n", rep.Error)
	}
}
