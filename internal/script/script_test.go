package script

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var allLibs = []string{"base", "table", "string", "math"}

func run(t *testing.T, code string, args ...uint64) (any, error) {
	t.Helper()
	return Run(context.Background(), code, args, Options{Timeout: time.Second, Libs: allLibs})
}

func TestRun_FoldArgs(t *testing.T) {
	got, err := run(t, "return gcd_fold(args)", 12, 18)
	require.NoError(t, err)
	require.Equal(t, float64(6), got)
}

func TestRun_PairwiseBinding(t *testing.T) {
	got, err := run(t, "return gcd(2*3*5*11*17, 3*7*11*13*19)")
	require.NoError(t, err)
	require.Equal(t, float64(33), got)
}

func TestRun_TableResult(t *testing.T) {
	got, err := run(t, `
local out = {}
for i = 2, #args do
  out[#out + 1] = gcd(args[1], args[i])
end
return out
`, 60, 48, 35)
	require.NoError(t, err)
	require.Equal(t, []any{float64(12), float64(5)}, got)

	s, err := Format(got)
	require.NoError(t, err)
	require.Equal(t, "[12,5]", s)
}

func TestRun_ZeroOperandRaises(t *testing.T) {
	_, err := run(t, "return gcd(0, 5)")
	require.Error(t, err)
	require.Contains(t, err.Error(), "operands must be nonzero")
}

func TestRun_BadOperandRaises(t *testing.T) {
	_, err := run(t, "return gcd(1.5, 3)")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a non-negative integer")

	_, err = run(t, "return gcd_fold({})")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no numbers to fold")
}

func TestRun_Timeout(t *testing.T) {
	_, err := Run(context.Background(), "while true do end", nil, Options{Timeout: 20 * time.Millisecond, Libs: allLibs})
	require.ErrorIs(t, err, ErrTimeout)
}

func TestRun_LibsAreSandboxed(t *testing.T) {
	_, err := Run(context.Background(), "return string.rep('a', 2)", nil, Options{Libs: []string{"base"}})
	require.Error(t, err)

	_, err = run(t, "return os.time()")
	require.Error(t, err, "os library must never be available")
}

func TestRun_DeterministicRandom(t *testing.T) {
	code := "return math.random(1, 1000000)"
	a, err := run(t, code)
	require.NoError(t, err)
	b, err := run(t, code)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRun_RejectsImpreciseArgs(t *testing.T) {
	_, err := run(t, "return 1", MaxExact+1)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "exceeds the exact integer range"))
}

func TestRun_SyntaxError(t *testing.T) {
	_, err := run(t, "return (")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{true, "true"},
		{"hi", "hi"},
		{float64(42), "42"},
		{1.5, "1.5"},
		{map[string]any{"gcd": float64(6)}, `{"gcd":6}`},
	}
	for _, tc := range tests {
		got, err := Format(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}
