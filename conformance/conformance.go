package conformance

import (
	"errors"
	"fmt"

	"github.com/lankaid/nic"
	"github.com/lankaid/nic/automaton"
)

// Case is one expectation against the public validation surface. Input is
// passed through the normal facade, so normalization applies.
type Case struct {
	// Name is a unique, human-readable identifier, stable across releases.
	Name string

	// Input is the raw string under test, exactly as a caller would pass it.
	Input string

	// WantAccepted is the expected lexical verdict.
	WantAccepted bool

	// WantFormat is the expected layout; FormatNone for rejections.
	WantFormat nic.Format

	// WantErr, when set, is the sentinel Parse must return for an input that
	// is accepted lexically but fails the semantic tier.
	WantErr error

	// Note carries context worth surfacing in reports, such as what the
	// retired two-digit-year scheme would have made of the input.
	Note string
}

// Outcome is the result of evaluating one Case.
type Outcome struct {
	Case   Case
	Result automaton.Result
	Record *nic.Record
	Err    error

	// Passed is true when every expectation held; Problems lists each
	// mismatch otherwise.
	Passed   bool
	Problems []string
}

// Verify evaluates one case against the live validator. It is pure: no
// output, no test framework, just the observed Outcome.
func Verify(c Case) Outcome {
	out := Outcome{Case: c}
	out.Result = nic.Validate(c.Input)
	out.Record, out.Err = nic.Parse(c.Input)

	if out.Result.Accepted != c.WantAccepted {
		out.Problems = append(out.Problems,
			fmt.Sprintf("accepted=%v, want %v (final state %s)", out.Result.Accepted, c.WantAccepted, out.Result.Final))
	}
	if out.Result.Format != c.WantFormat {
		out.Problems = append(out.Problems,
			fmt.Sprintf("format=%q, want %q", out.Result.Format, c.WantFormat))
	}

	switch {
	case c.WantErr != nil:
		if !errors.Is(out.Err, c.WantErr) {
			out.Problems = append(out.Problems,
				fmt.Sprintf("error=%v, want %v", out.Err, c.WantErr))
		}
	case c.WantAccepted:
		if out.Err != nil {
			out.Problems = append(out.Problems,
				fmt.Sprintf("decode failed unexpectedly: %v", out.Err))
		}
	default:
		if !errors.Is(out.Err, nic.ErrNotAccepted) {
			out.Problems = append(out.Problems,
				fmt.Sprintf("rejected input must parse to ErrNotAccepted, got %v", out.Err))
		}
	}

	out.Passed = len(out.Problems) == 0
	return out
}

// VerifyAll evaluates every case and reports the outcomes alongside the
// pass count.
func VerifyAll() (outcomes []Outcome, passed int) {
	cases := Cases()
	outcomes = make([]Outcome, 0, len(cases))
	for _, c := range cases {
		out := Verify(c)
		if out.Passed {
			passed++
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, passed
}

// Cases returns the canonical suite. The slice is freshly allocated on each
// call; callers may reorder or filter it freely.
func Cases() []Case {
	return []Case{
		// Accepted inputs, both layouts.
		{Name: "old format male", Input: "199812345V", WantAccepted: true, WantFormat: nic.FormatOld},
		{Name: "old format with X suffix", Input: "200154321X", WantAccepted: true, WantFormat: nic.FormatOld},
		{Name: "old format female day segment", Input: "196862345V", WantAccepted: true, WantFormat: nic.FormatOld,
			Note: "day segment 623 decodes as female day 123"},
		{Name: "new format male", Input: "200012345678", WantAccepted: true, WantFormat: nic.FormatNew},
		{Name: "new format female", Input: "199851234567", WantAccepted: true, WantFormat: nic.FormatNew,
			Note: "day segment 512 decodes as female day 12"},
		{Name: "new format born 1955", Input: "195501234567", WantAccepted: true, WantFormat: nic.FormatNew},
		{Name: "male day upper edge", Input: "200036645V", WantAccepted: true, WantFormat: nic.FormatOld},
		{Name: "female day upper edge", Input: "200086645V", WantAccepted: true, WantFormat: nic.FormatOld},

		// Era digit rule: the first byte must be '1' or '2'.
		{Name: "era digit three", Input: "399812345V",
			Note: "recognition dies on the very first byte"},
		{Name: "era digit nine in new layout", Input: "900012345678"},
		{Name: "era digit zero", Input: "056234567V"},

		// Length rule: only 10 and 12 bytes are recognizable.
		{Name: "empty input", Input: ""},
		{Name: "far too short", Input: "123456V"},
		{Name: "nine characters with suffix", Input: "12345678V"},
		{Name: "nine digits without suffix", Input: "199812345"},
		{Name: "ten digits without suffix", Input: "1998123456"},
		{Name: "eleven digits", Input: "19981234567"},
		{Name: "thirteen digits", Input: "1998123456789"},

		// Alphabet rule: digits only, except the suffix position.
		{Name: "letters in the year segment", Input: "19AB12345V"},
		{Name: "letters in the serial segment", Input: "19981234AB"},
		{Name: "wrong suffix letter", Input: "199812345A"},
		{Name: "separator inside", Input: "1998-123-45V"},
		{Name: "inner space", Input: "1998 12345V"},

		// Absorption: accepting states have no outgoing edges.
		{Name: "trailing byte after old accept", Input: "199812345Vx",
			Note: "normalizes to 199812345VX; the extra byte lands in the sink"},
		{Name: "trailing digit after new accept", Input: "1998123456781"},

		// Retired two-digit-year readings. All were accepted by the legacy
		// scheme; the uniform four-digit layout rejects them on the era digit.
		{Name: "legacy male born 1989", Input: "891234567V",
			Note: "legacy reading: year 1989, day 123, male"},
		{Name: "legacy holder born 1985", Input: "851234567X",
			Note: "legacy reading: year 1985, day 123"},
		{Name: "legacy holder born 1900", Input: "001234567X",
			Note: "legacy reading: year 1900, day 123"},
		{Name: "legacy male born 1939", Input: "391234567V",
			Note: "legacy reading: year 1939, day 123, male"},
		{Name: "legacy female day segment", Input: "856234567V",
			Note: "legacy reading: year 1985, day segment 623, female day 123"},
		{Name: "legacy invalid day 901", Input: "8990123456V",
			Note: "11 bytes and a leading 8; rejected on both counts"},

		// Semantic tier: lexically accepted, day segment out of range.
		{Name: "day segment zero", Input: "199800045V", WantAccepted: true, WantFormat: nic.FormatOld,
			WantErr: nic.ErrDayOutOfRange},
		{Name: "day segment in the 367-500 gap", Input: "199836745V", WantAccepted: true, WantFormat: nic.FormatOld,
			WantErr: nic.ErrDayOutOfRange},
		{Name: "day segment exactly 500", Input: "199850045V", WantAccepted: true, WantFormat: nic.FormatOld,
			WantErr: nic.ErrDayOutOfRange, Note: "the female offset alone is not a day"},
		{Name: "day segment above 866", Input: "199886745V", WantAccepted: true, WantFormat: nic.FormatOld,
			WantErr: nic.ErrDayOutOfRange},
		{Name: "day segment 901 in new layout", Input: "199890112345", WantAccepted: true, WantFormat: nic.FormatNew,
			WantErr: nic.ErrDayOutOfRange},

		// Normalization happens before recognition.
		{Name: "surrounding whitespace and lowercase suffix", Input: " 199812345v ", WantAccepted: true,
			WantFormat: nic.FormatOld},
		{Name: "fullwidth digits", Input: "１９９８12345V", WantAccepted: true, WantFormat: nic.FormatOld},
	}
}
