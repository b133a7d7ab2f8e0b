// Package nic validates and decodes Sri Lankan National Identity Card numbers.
//
// Validation runs an explicit deterministic finite automaton over the input
// (see the automaton subpackage), so acceptance is a pure lexical decision
// with a full state trace available for diagnostics. Decoding then derives
// the semantic fields (birth year, day of year, gender, serial) from an
// accepted string.
//
// Basic usage:
//
//	import "github.com/lankaid/nic"
//
//	rec, err := nic.Parse(" 199812345v ")
//	if err != nil {
//		// errors.Is(err, nic.ErrNotAccepted): lexical rejection
//		// errors.Is(err, nic.ErrDayOutOfRange): accepted shape, bad day segment
//		return err
//	}
//	fmt.Println(rec.Year, rec.DayOfYear, rec.Gender) // 1998 123 male
//
// For classification without decoding use Validate, which never returns an
// error:
//
//	res := nic.Validate("199812345678")
//	fmt.Println(res.Accepted, res.Format) // true new
//
// # Formats
//
// Two layouts are recognized, both starting with a four-digit birth year:
//
//   - Old (10 characters): YYYYDDDSS plus a 'V' or 'X' suffix,
//     e.g. "199812345V".
//   - New (12 digits): YYYYDDDSSSSS, e.g. "199812345678".
//
// The day-of-year segment encodes gender: 1-366 is male, 501-866 is female
// (the actual day is the value minus 500). The 'V'/'X' suffix is carried as
// metadata and takes no part in gender or validity decisions.
//
// # Failure Tiers
//
// Lexical rejection is not an error: Validate returns a Result with
// Accepted=false and the trace showing where recognition died. Errors are
// reserved for the semantic tier; package-level sentinels such as
// ErrDayOutOfRange compare with errors.Is. This package never logs, prints,
// or exits; rendering belongs to callers such as cmd/nicctl.
//
// # Privacy
//
// A NIC number encodes its holder's birth date. Record.Mask renders a
// redacted form safe for logs and support tooling, and error messages never
// include the raw identifier.
package nic
