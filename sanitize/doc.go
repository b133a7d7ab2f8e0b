// Package sanitize normalizes raw NIC input before it reaches the recognizer.
//
// The automaton operates over exact ASCII bytes, so any tolerance for messy
// real-world input (surrounding whitespace, full-width digits pasted from
// forms, a lowercase suffix letter) lives here as an explicit, separate step.
// Callers that want strict matching simply skip this package.
//
// Basic usage:
//
//	import "github.com/lankaid/nic/sanitize"
//
//	in := sanitize.Normalize("　１９９８12345v ")
//	// in == "199812345V"
//
// Normalization is intentionally conservative: it never inserts, removes, or
// reorders identifier characters, so a string that is invalid after Normalize
// was never a valid NIC to begin with.
package sanitize
