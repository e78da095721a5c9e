package cli

import (
	"errors"

	"github.com/ignaciocaff/xmlsp"
)

// Exit codes returned by the xmlsp binary.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitPanic           = 3
	ExitConfigError     = 10
	ExitConnectionError = 11
	ExitExecutionError  = 13
	ExitEmptyResult     = 14
)

var (
	// ErrUsage marks invalid flags, arguments or input.
	ErrUsage = errors.New("usage error")

	// ErrConfig marks an unreadable or invalid configuration.
	ErrConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the exit code for err. Returns ExitSuccess for
// nil and ExitGeneralError for unclassified errors.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, xmlsp.ErrDriverUnavailable), errors.Is(err, xmlsp.ErrConnection):
		return ExitConnectionError
	case errors.Is(err, xmlsp.ErrEmptyResult):
		return ExitEmptyResult
	case errors.Is(err, xmlsp.ErrPrepare), errors.Is(err, xmlsp.ErrBind),
		errors.Is(err, xmlsp.ErrExecute), errors.Is(err, xmlsp.ErrFetch):
		return ExitExecutionError
	default:
		return ExitGeneralError
	}
}
