package root

import (
	"errors"

	"github.com/flarebyte/gcd/internal/gcd"
	"github.com/flarebyte/gcd/internal/numbers"
)

const (
	exitCodeSuccess  = 0
	exitCodeUsage    = 1
	exitCodeParse    = 2
	exitCodeInternal = 3
)

const usage = "Usage: gcd NUMBER ..."

type exitError struct {
	code int
	msg  string
}

func (e exitError) Error() string { return e.msg }
func (e exitError) ExitCode() int { return e.code }

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	var pe *numbers.ParseError
	if errors.As(err, &pe) {
		return exitCodeParse
	}
	var pv *gcd.PreconditionViolation
	if errors.As(err, &pv) {
		return exitCodeInternal
	}
	return exitCodeUsage
}
