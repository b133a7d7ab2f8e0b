package automaton_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankaid/nic/automaton"
)

func TestRun_AcceptedInputs(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	t.Run("old format ending in V", func(t *testing.T) {
		t.Parallel()
		res := m.Run("199812345V")
		assert.True(t, res.Accepted)
		assert.Equal(t, automaton.FormatOld, res.Format)
		assert.Equal(t, automaton.StateOldAccept, res.Final)
		assert.Len(t, res.Trace, 11, "trace covers start state plus every byte")
	})

	t.Run("old format ending in X", func(t *testing.T) {
		t.Parallel()
		res := m.Run("200154321X")
		assert.True(t, res.Accepted)
		assert.Equal(t, automaton.FormatOld, res.Format)
	})

	t.Run("new format", func(t *testing.T) {
		t.Parallel()
		res := m.Run("199812345678")
		assert.True(t, res.Accepted)
		assert.Equal(t, automaton.FormatNew, res.Format)
		assert.Equal(t, automaton.StateNewAccept, res.Final)
		assert.Len(t, res.Trace, 13)
	})

	t.Run("female day window passes the lexical stage", func(t *testing.T) {
		t.Parallel()
		// Day 501 is out of calendar range but lexically fine; the decoding
		// layer interprets it, not the machine.
		res := m.Run("200150112345")
		assert.True(t, res.Accepted)
		assert.Equal(t, automaton.FormatNew, res.Format)
	})
}

func TestRun_RejectedInputs(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		res := m.Run("")
		assert.False(t, res.Accepted)
		assert.Equal(t, automaton.FormatNone, res.Format)
		assert.Equal(t, automaton.StateStart, res.Final, "no bytes consumed, still at start")
		assert.Len(t, res.Trace, 1)
	})

	t.Run("leading digit outside 1 and 2", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"399812345V", "056234567V", "899812345678", "999812345V"} {
			res := m.Run(in)
			assert.False(t, res.Accepted, "input %q", in)
			require.GreaterOrEqual(t, len(res.Trace), 2)
			assert.Equal(t, automaton.StateReject, res.Trace[1], "input %q must die on the first byte", in)
		}
	})

	t.Run("nine digits too short", func(t *testing.T) {
		t.Parallel()
		res := m.Run("199812345")
		assert.False(t, res.Accepted)
		assert.Equal(t, automaton.StateSerial2, res.Final, "ends mid-serial, not in the sink")
	})

	t.Run("eleven characters stranded between formats", func(t *testing.T) {
		t.Parallel()
		res := m.Run("19981234567")
		assert.False(t, res.Accepted)
		assert.Equal(t, automaton.StateSerial4, res.Final)
	})

	t.Run("thirteen digits overshoot", func(t *testing.T) {
		t.Parallel()
		res := m.Run("1998123456789")
		assert.False(t, res.Accepted)
		assert.Equal(t, automaton.StateReject, res.Final, "accepting states have no outgoing edges")
	})

	t.Run("trailing byte after old format accept", func(t *testing.T) {
		t.Parallel()
		res := m.Run("199812345Vx")
		assert.False(t, res.Accepted)
		assert.Equal(t, automaton.StateReject, res.Final)
	})

	t.Run("lowercase suffix", func(t *testing.T) {
		t.Parallel()
		res := m.Run("199812345v")
		assert.False(t, res.Accepted, "the machine is byte-exact, case folding happens upstream")
	})

	t.Run("suffix letter in the wrong position", func(t *testing.T) {
		t.Parallel()
		res := m.Run("1998V2345677")
		assert.False(t, res.Accepted)
	})

	t.Run("non ascii bytes", func(t *testing.T) {
		t.Parallel()
		res := m.Run("１９９８12345V")
		assert.False(t, res.Accepted)
		assert.Len(t, res.Trace, len("１９９８12345V")+1, "trace counts bytes, not runes")
	})

	t.Run("separators and spaces", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"1998 12345V", "1998-123-45V", " 199812345V"} {
			assert.False(t, m.Run(in).Accepted, "input %q", in)
		}
	})
}

func TestRun_TraceInvariants(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	inputs := []string{
		"",
		"1",
		"199812345V",
		"199812345678",
		"totally wrong",
		"399812345V",
		strings.Repeat("1", 64),
	}

	for _, in := range inputs {
		res := m.Run(in)

		require.Len(t, res.Trace, len(in)+1, "input %q", in)
		assert.Equal(t, automaton.StateStart, res.Trace[0], "input %q", in)
		assert.Equal(t, res.Final, res.Trace[len(res.Trace)-1], "input %q", in)

		// Once the sink is entered it is never left.
		dead := false
		for i, s := range res.Trace {
			if dead {
				assert.Equal(t, automaton.StateReject, s, "input %q trace position %d", in, i)
			}
			if s == automaton.StateReject {
				dead = true
			}
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	for _, in := range []string{"199812345V", "199812345678", "bogus", ""} {
		first := m.Run(in)
		second := m.Run(in)
		assert.Equal(t, first, second, "repeated runs over %q must agree", in)
	}
}

func TestStep(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	t.Run("replaying steps matches run trace", func(t *testing.T) {
		t.Parallel()
		const in = "199812345V"
		res := m.Run(in)

		s := m.Start()
		require.Equal(t, res.Trace[0], s)
		for i := 0; i < len(in); i++ {
			s = m.Step(s, in[i])
			assert.Equal(t, res.Trace[i+1], s, "byte %d", i)
		}
		assert.True(t, m.IsAccept(s))
	})

	t.Run("reject state absorbs every byte", func(t *testing.T) {
		t.Parallel()
		for b := 0; b < 256; b++ {
			assert.Equal(t, automaton.StateReject, m.Step(automaton.StateReject, byte(b)), "byte 0x%02x", b)
		}
	})

	t.Run("out of range state rejects", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, automaton.StateReject, m.Step(automaton.State(200), '1'))
	})
}

func TestMachine_Format(t *testing.T) {
	t.Parallel()

	m := automaton.New()

	assert.Equal(t, automaton.FormatOld, m.Format(automaton.StateOldAccept))
	assert.Equal(t, automaton.FormatNew, m.Format(automaton.StateNewAccept))
	assert.Equal(t, automaton.FormatNone, m.Format(automaton.StateStart))
	assert.Equal(t, automaton.FormatNone, m.Format(automaton.StateReject))
	assert.Equal(t, automaton.FormatNone, m.Format(automaton.StateSerial2))
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "q0", automaton.StateStart.String())
	assert.Equal(t, "q9", automaton.StateSerial2.String())
	assert.Equal(t, "q11", automaton.StateOldAccept.String())
	assert.Equal(t, "q13", automaton.StateNewAccept.String())
	assert.Equal(t, "qReject", automaton.StateReject.String())
	assert.Equal(t, "q?(200)", automaton.State(200).String())
}

func TestZeroMachineRejectsEverything(t *testing.T) {
	t.Parallel()

	var m automaton.Machine
	for _, in := range []string{"199812345V", "199812345678", "x"} {
		res := m.Run(in)
		assert.False(t, res.Accepted, "zero table has no live transitions, input %q", in)
	}
}
