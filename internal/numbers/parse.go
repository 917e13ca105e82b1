// Package numbers parses command-line tokens into unsigned 64-bit integers.
package numbers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError names the token that could not be parsed.
type ParseError struct {
	Index int // 1-based position among the numeric arguments
	Arg   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q (argument %d): %v", e.Arg, e.Index, reason(e.Err))
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts every token to a uint64, stopping at the first bad one.
func Parse(args []string) ([]uint64, error) {
	out := make([]uint64, 0, len(args))
	for i, a := range args {
		n, err := ParseOne(a)
		if err != nil {
			return nil, &ParseError{Index: i + 1, Arg: a, Err: err}
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseOne parses a single base-10 token. One leading '+' is accepted.
func ParseOne(s string) (uint64, error) {
	digits := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			return 0, ne.Err
		}
		return 0, err
	}
	return n, nil
}

func reason(err error) string {
	switch err {
	case strconv.ErrSyntax:
		return "not an unsigned integer"
	case strconv.ErrRange:
		return "out of range for uint64"
	case nil:
		return "error"
	}
	return err.Error()
}
