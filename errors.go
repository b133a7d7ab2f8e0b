package nic

import "errors"

// Failure tiers are deliberately separate: lexical rejection is a normal
// classification outcome carried by automaton.Result, while the sentinels
// below mark semantic failures on inputs that already passed recognition.
// Error messages never embed the raw identifier; NIC numbers encode a birth
// date and should not leak into logs through error chains.
var (
	// ErrNotAccepted indicates the input failed lexical recognition and there
	// is nothing to decode. Returned by Parse; check with errors.Is().
	ErrNotAccepted = errors.New("input not accepted by the recognizer")

	// ErrFormatMismatch indicates Decode was handed a format the input does
	// not actually lex as, e.g. a 12-digit string declared as the old format.
	ErrFormatMismatch = errors.New("input does not match the declared format")

	// ErrDayOutOfRange indicates the day-of-year segment falls outside both
	// gender windows: 1-366 for male, 501-866 for female.
	ErrDayOutOfRange = errors.New("day of year outside the 1-366 and 501-866 windows")

	// ErrDayNotInYear indicates a day number that is lexically and
	// semantically valid (such as 366) but does not exist in the concrete
	// birth year. Only BirthDate and Age perform this calendar-level check.
	ErrDayNotInYear = errors.New("day of year does not exist in the birth year")
)
