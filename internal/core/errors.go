package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Invoke. Driver errors are wrapped together
// with the sentinel of the step that failed, so both can be matched with
// errors.Is.
var (
	// ErrDriverUnavailable indicates no database driver was registered.
	ErrDriverUnavailable = errors.New("database driver unavailable")

	// ErrConnection indicates the connection could not be opened or configured.
	ErrConnection = errors.New("connection failed")

	// ErrPrepare indicates the call statement could not be prepared.
	ErrPrepare = errors.New("prepare failed")

	// ErrBind indicates the parameters could not be bound.
	ErrBind = errors.New("bind failed")

	// ErrExecute indicates the prepared call failed to execute.
	ErrExecute = errors.New("execute failed")

	// ErrFetch indicates the result set could not be read.
	ErrFetch = errors.New("fetch failed")

	// ErrEmptyResult indicates the procedure completed but returned no rows.
	ErrEmptyResult = errors.New("empty result set was returned")

	// ErrMissingOutputColumn indicates a result row without the output column.
	ErrMissingOutputColumn = errors.New("output column missing from result row")
)

func wrap(step, err error) error {
	return fmt.Errorf("%w: %w", step, err)
}
