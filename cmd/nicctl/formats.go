package main

import (
	"github.com/spf13/cobra"
)

// NewFormatsCommand describes the two recognized layouts.
func NewFormatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:          "formats",
		Short:        "Describe the two NIC layouts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, _ []string) error {
			printFormats(command)
			return nil
		},
	}
}

func printFormats(command *cobra.Command) {
	command.Print(`OLD FORMAT (10 characters): YYYYDDDSSL
  YYYY  four-digit birth year, leading digit 1 or 2
  DDD   day of year; 001-366 male, 501-866 female (day minus 500)
  SS    two-digit serial number
  L     suffix letter V or X, carried as metadata
  example: 199812345V

NEW FORMAT (12 digits): YYYYDDDSSSSS
  YYYY  four-digit birth year, leading digit 1 or 2
  DDD   day of year, same gender windows as above
  SSSSS five-digit serial number
  example: 199812345678

Input is normalized before recognition: surrounding whitespace is trimmed,
full-width characters fold to ASCII, and letters are uppercased. Anything
else (separators, wrong length, a day outside both windows) is rejected.
`)
}
