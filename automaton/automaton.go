package automaton

import "fmt"

// State identifies a single automaton state. The zero value is the absorbing
// reject state, so uninitialized transition table entries reject by default.
type State uint8

const (
	// StateReject is the absorbing sink: every byte read in StateReject stays
	// in StateReject. It is the zero value on purpose.
	StateReject State = iota

	// StateStart is the initial state, before any input is consumed.
	StateStart

	// StateYear1 through StateYear4 are reached after each of the four birth
	// year digits. The first digit is restricted to '1' or '2'.
	StateYear1
	StateYear2
	StateYear3
	StateYear4

	// StateDay1 through StateDay3 are reached after each day-of-year digit.
	StateDay1
	StateDay2
	StateDay3

	// StateSerial1 and StateSerial2 cover the serial digits shared by both
	// formats. From StateSerial2 the formats diverge: 'V' or 'X' completes an
	// old-format number, a further digit continues toward the new format.
	StateSerial1
	StateSerial2
	StateSerial3

	// StateOldAccept is the accepting state for the 10-byte old format.
	StateOldAccept

	// StateSerial4 is the penultimate new-format state.
	StateSerial4

	// StateNewAccept is the accepting state for the 12-byte new format.
	StateNewAccept

	stateCount
)

// stateNames maps states to their diagram labels. Labels follow the position
// of the state on the shared spine (q0–q9), then the old-format branch (q11)
// and the new-format branch (q10, q12, q13).
var stateNames = [stateCount]string{
	StateReject:    "qReject",
	StateStart:     "q0",
	StateYear1:     "q1",
	StateYear2:     "q2",
	StateYear3:     "q3",
	StateYear4:     "q4",
	StateDay1:      "q5",
	StateDay2:      "q6",
	StateDay3:      "q7",
	StateSerial1:   "q8",
	StateSerial2:   "q9",
	StateSerial3:   "q10",
	StateOldAccept: "q11",
	StateSerial4:   "q12",
	StateNewAccept: "q13",
}

// String returns the diagram label of the state, e.g. "q0" or "qReject".
func (s State) String() string {
	if s >= stateCount {
		return fmt.Sprintf("q?(%d)", uint8(s))
	}
	return stateNames[s]
}

// Format distinguishes the two accepted NIC layouts.
type Format string

const (
	// FormatNone marks rejected or incomplete input.
	FormatNone Format = ""

	// FormatOld is the 10-character layout ending in 'V' or 'X'.
	FormatOld Format = "old"

	// FormatNew is the 12-digit layout.
	FormatNew Format = "new"
)

// Result captures a full machine run over one input.
type Result struct {
	// Accepted reports whether the final state is an accepting state.
	Accepted bool

	// Trace holds the visited states in order, starting with StateStart.
	// Its length is always len(input)+1, including runs that hit StateReject
	// early: the sink absorbs the remaining bytes.
	Trace []State

	// Final is the state after the last input byte, Trace[len(Trace)-1].
	Final State

	// Format is FormatOld or FormatNew when Accepted, FormatNone otherwise.
	Format Format
}

// Machine is the compiled recognizer. Construct it with New; the zero value
// rejects everything.
type Machine struct {
	delta [stateCount][256]State
}

// Start returns the initial state.
func (m *Machine) Start() State {
	return StateStart
}

// Step consumes one byte from state s and returns the successor state. The
// transition function is total: any byte in any state has a defined successor.
func (m *Machine) Step(s State, b byte) State {
	if s >= stateCount {
		return StateReject
	}
	return m.delta[s][b]
}

// IsAccept reports whether s is one of the two accepting states.
func (m *Machine) IsAccept(s State) bool {
	return s == StateOldAccept || s == StateNewAccept
}

// Format returns the layout recognized by an accepting state, or FormatNone
// for non-accepting states.
func (m *Machine) Format(s State) Format {
	switch s {
	case StateOldAccept:
		return FormatOld
	case StateNewAccept:
		return FormatNew
	default:
		return FormatNone
	}
}

// Run executes the machine over input byte by byte and returns the complete
// Result. Rejection does not stop the run early; the trace always covers the
// whole input.
func (m *Machine) Run(input string) Result {
	trace := make([]State, 0, len(input)+1)
	s := StateStart
	trace = append(trace, s)
	for i := 0; i < len(input); i++ {
		s = m.delta[s][input[i]]
		trace = append(trace, s)
	}
	return Result{
		Accepted: m.IsAccept(s),
		Trace:    trace,
		Final:    s,
		Format:   m.Format(s),
	}
}
