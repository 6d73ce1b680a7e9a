package lex_test

import (
	"strings"
	"testing"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnfoldBasicSplit(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
	bus := diag.NewBus()
	lines, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "BEGIN", lines[0].Name)
	assert.Equal(t, "VCALENDAR", lines[0].Value)
	assert.Equal(t, "VERSION", lines[1].Name)
	assert.Equal(t, "2.0", lines[1].Value)
	assert.True(t, bus.Compliant())
}

func TestUnfoldContinuation(t *testing.T) {
	input := "SUMMARY:This is a long\r\n summary that wraps\r\n"
	bus := diag.NewBus()
	lines, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "This is a long summary that wraps", lines[0].Value)
}

func TestUnfoldIdempotent(t *testing.T) {
	input := "SUMMARY:folded\r\n value here\r\n"
	bus1 := diag.NewBus()
	first, err := lex.Unfold(strings.NewReader(input), bus1)
	require.NoError(t, err)

	// Re-applying unfold to the already-unfolded value (rejoined with CRLF and
	// no leading whitespace) must be a no-op.
	rejoined := first[0].Name + ":" + first[0].Value + "\r\n"
	bus2 := diag.NewBus()
	second, err := lex.Unfold(strings.NewReader(rejoined), bus2)
	require.NoError(t, err)
	assert.Equal(t, first[0].Value, second[0].Value)
}

func TestUnfoldDanglingContinuation(t *testing.T) {
	input := " stray continuation\r\nBEGIN:VCALENDAR\r\n"
	bus := diag.NewBus()
	_, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	assert.False(t, bus.Compliant())
}

func TestUnfoldParamsWithQuotedComma(t *testing.T) {
	input := `ATTENDEE;CN="Doe, Jane";ROLE=REQ-PARTICIPANT:mailto:jane@example.com` + "\r\n"
	bus := diag.NewBus()
	lines, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	cn, ok := lines[0].Param("CN")
	require.True(t, ok)
	assert.Equal(t, []string{"Doe, Jane"}, cn.Values)
	role, ok := lines[0].Param("ROLE")
	require.True(t, ok)
	assert.Equal(t, []string{"REQ-PARTICIPANT"}, role.Values)
}

func TestUnfoldMissingColon(t *testing.T) {
	input := "NOCOLONHERE\r\n"
	bus := diag.NewBus()
	lines, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.False(t, bus.Compliant())
}

func TestUnfoldFatalOverlength(t *testing.T) {
	input := "SUMMARY:" + strings.Repeat("a", 1200) + "\r\n"
	bus := diag.NewBus()
	_, err := lex.Unfold(strings.NewReader(input), bus)
	require.ErrorIs(t, err, lex.ErrLineTooLong)
	assert.True(t, bus.HasFatal())
}

func TestUnfoldNonCRLFWarns(t *testing.T) {
	input := "BEGIN:VCALENDAR\nEND:VCALENDAR\n"
	bus := diag.NewBus()
	_, err := lex.Unfold(strings.NewReader(input), bus)
	require.NoError(t, err)
	assert.False(t, bus.Compliant())
}
