// Package automaton implements the deterministic finite automaton that recognizes
// Sri Lankan National Identity Card numbers.
//
// The machine operates on raw bytes: every state has a transition for all 256
// byte values, with unlisted pairs falling into an absorbing reject state.
// Running the machine over an input therefore never fails. It produces a
// Result carrying the accept/reject outcome, the final state, the detected
// format, and the full state trace (one entry per input byte plus the start
// state).
//
// Basic usage:
//
//	import "github.com/lankaid/nic/automaton"
//
//	m := automaton.New()
//	res := m.Run("199812345678")
//	if res.Accepted {
//		fmt.Println(res.Format) // "new"
//	}
//	for _, s := range res.Trace {
//		fmt.Println(s) // q0, q1, ..., q13
//	}
//
// # Recognized Language
//
// Two layouts are accepted, both opening with a four-digit birth year whose
// leading digit is 1 or 2:
//
//   - Old format (10 bytes): 4 year digits, 3 day digits, 2 serial digits,
//     and a trailing 'V' or 'X'.
//   - New format (12 bytes): 4 year digits, 3 day digits, 5 serial digits.
//
// The day-of-year value is not range-checked here; the machine is purely
// lexical. Semantic checks such as the 1–366/501–866 day windows belong to the
// decoding layer built on top of this package.
//
// # Determinism Guarantees
//
// Run is a pure function of its input: no allocation besides the trace slice,
// no shared mutable state, and the same input always yields the same Result.
// A Machine is safe for concurrent use.
package automaton
