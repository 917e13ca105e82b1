package numbers

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	got, err := Parse([]string{"12", "+18", "0", "18446744073709551615"})
	require.NoError(t, err)
	require.Equal(t, []uint64{12, 18, 0, 18446744073709551615}, got)
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestParse_NamesBadToken(t *testing.T) {
	_, err := Parse([]string{"12", "abc", "x"})
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "abc", pe.Arg)
	require.Equal(t, 2, pe.Index)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Equal(t, `invalid number "abc" (argument 2): not an unsigned integer`, err.Error())
}

func TestParseOne_Rejects(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", strconv.ErrSyntax},
		{"-1", strconv.ErrSyntax},
		{"++1", strconv.ErrSyntax},
		{"+-1", strconv.ErrSyntax},
		{"1.5", strconv.ErrSyntax},
		{" 7", strconv.ErrSyntax},
		{"0x10", strconv.ErrSyntax},
		{"18446744073709551616", strconv.ErrRange},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseOne(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseError_RangeMessage(t *testing.T) {
	_, err := Parse([]string{"99999999999999999999"})
	require.EqualError(t, err, `invalid number "99999999999999999999" (argument 1): out of range for uint64`)
}
