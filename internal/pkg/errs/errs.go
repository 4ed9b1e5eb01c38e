// Package errs narrows cockroachdb/errors to the three operations the
// rest of the codebase needs: wrapping with context, creating sentinels,
// and marking an error so errors.Is matches a sentinel.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr to err's identity without hiding the cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
