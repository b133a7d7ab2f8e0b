package nic

import (
	"fmt"
	"strconv"

	"github.com/lankaid/nic/automaton"
)

// Positional layout shared by both formats: four year digits, three day
// digits, then the serial. The female day segment is offset by 500.
const (
	yearEnd      = 4
	dayEnd       = 7
	dayMax       = 366
	femaleOffset = 500
)

// Decode derives the semantic fields from an input already known to lex as
// the given format. It re-runs the recognizer and returns ErrFormatMismatch
// when input and format disagree, so a Record can never be built from an
// unrecognized string. The input must already be normalized; Decode applies
// no case or width folding of its own.
func Decode(input string, format Format) (*Record, error) {
	res := automaton.Run(input)
	if format == FormatNone || res.Format != format {
		return nil, fmt.Errorf("%w: recognized as %q", ErrFormatMismatch, res.Format)
	}

	// The recognizer guarantees digit-only year and day segments.
	year, _ := strconv.Atoi(input[:yearEnd])
	rawDay, _ := strconv.Atoi(input[yearEnd:dayEnd])

	var (
		gender Gender
		day    int
	)
	switch {
	case rawDay >= 1 && rawDay <= dayMax:
		gender, day = GenderMale, rawDay
	case rawDay > femaleOffset && rawDay <= femaleOffset+dayMax:
		gender, day = GenderFemale, rawDay-femaleOffset
	default:
		return nil, fmt.Errorf("%w: segment %03d", ErrDayOutOfRange, rawDay)
	}

	rec := &Record{
		Year:      year,
		DayOfYear: day,
		Gender:    gender,
		Format:    format,
	}
	switch format {
	case FormatOld:
		rec.Serial = input[dayEnd : len(input)-1]
		rec.Suffix = input[len(input)-1:]
	case FormatNew:
		rec.Serial = input[dayEnd:]
	}
	return rec, nil
}
