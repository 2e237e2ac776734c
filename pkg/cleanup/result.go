// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// RemovalError is a failure to remove, or reset, a single path.
type RemovalError struct {
	// What failed, "remove" if empty.
	Op   string
	Path string
	Err  error
}

func (e *RemovalError) Error() string {
	op := e.Op
	if op == "" {
		op = "remove"
	}
	return fmt.Sprintf("Could not %s %s: %s", op, e.Path, e.message())
}

func (e *RemovalError) Unwrap() error {
	return e.Err
}

// The path is already part of the report line, so don't repeat it.
func (e *RemovalError) message() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Err.Error()
	}
	return e.Err.Error()
}

// Result accumulates the removal errors of a single clean.
type Result struct {
	Errors []*RemovalError
}

func (r *Result) record(path string, err error) {
	r.Errors = append(r.Errors, &RemovalError{Path: path, Err: err})
}

// recordWrite records a path that should have been rewritten in place.
func (r *Result) recordWrite(path string, err error) {
	r.Errors = append(r.Errors, &RemovalError{Op: "write", Path: path, Err: err})
}

// ExitCode is 1 if anything could not be removed, 0 otherwise.
func (r *Result) ExitCode() int {
	if len(r.Errors) > 0 {
		return 1
	}
	return 0
}

// Err joins all recorded errors, or returns nil if there are none.
func (r *Result) Err() error {
	errs := make([]error, len(r.Errors))
	for i, err := range r.Errors {
		errs[i] = err
	}
	return errors.Join(errs...)
}

// WriteReport writes all recorded errors to w, one per line, below an
// "Error:" header. Nothing is written if there are no errors.
func (r *Result) WriteReport(w io.Writer) error {
	if len(r.Errors) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Error:"); err != nil {
		return err
	}
	for _, err := range r.Errors {
		if _, err := fmt.Fprintln(w, err.Error()); err != nil {
			return err
		}
	}
	return nil
}
