// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import "errors"

// StoreError wraps a failure to open, write, or read a node's store. It is
// the storage half of the error taxonomy; the ingest handler folds it into
// the uniform error response instead of letting it crash the request.
type StoreError struct {
	Op   string
	Node string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Node != "" {
		return "storage " + e.Op + " " + e.Node + ": " + e.Err.Error()
	}
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is a StoreError anywhere in its chain.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
