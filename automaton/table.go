package automaton

// New builds the recognizer. Only live transitions are written into the table;
// everything else stays at the zero value StateReject, which keeps the
// transition function total without enumerating dead edges.
func New() *Machine {
	m := &Machine{}

	digits := func(from, to State) {
		for b := byte('0'); b <= '9'; b++ {
			m.delta[from][b] = to
		}
	}

	// Year. The leading digit carries the century and must be 1 or 2; the
	// remaining three year digits are unconstrained.
	m.delta[StateStart]['1'] = StateYear1
	m.delta[StateStart]['2'] = StateYear1
	digits(StateYear1, StateYear2)
	digits(StateYear2, StateYear3)
	digits(StateYear3, StateYear4)

	// Day of year, three digits. Range checking is the decoder's job.
	digits(StateYear4, StateDay1)
	digits(StateDay1, StateDay2)
	digits(StateDay2, StateDay3)

	// Serial spine shared by both formats.
	digits(StateDay3, StateSerial1)
	digits(StateSerial1, StateSerial2)

	// Divergence point: a letter closes the old format, a digit continues
	// toward the new one.
	m.delta[StateSerial2]['V'] = StateOldAccept
	m.delta[StateSerial2]['X'] = StateOldAccept
	digits(StateSerial2, StateSerial3)
	digits(StateSerial3, StateSerial4)
	digits(StateSerial4, StateNewAccept)

	// Accepting states have no outgoing edges: any trailing byte rejects.

	return m
}

// shared backs the package-level Run. The table is read-only after New, so
// concurrent use needs no locking.
var shared = New()

// Run executes the shared machine over input; see Machine.Run.
func Run(input string) Result {
	return shared.Run(input)
}
