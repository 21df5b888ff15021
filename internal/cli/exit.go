package cli

import (
	"errors"
	"strings"
)

// Exit codes.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

var (
	// errReported marks failures whose details were already written.
	errReported = errors.New("failure reported")

	errInvalidConfig = errors.New("invalid configuration")

	errNotFound = errors.New("not found")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if isFlagError(err) {
		return ExitUsageError
	}
	return ExitFailure
}

// isFlagError recognises the argument and flag errors produced by cobra and
// pflag, which carry no type of their own.
func isFlagError(err error) bool {
	msg := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
		"flag needs an argument",
		"if any flags in the group",
		"at least one of the flags in the group",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
