// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
)

// AtomicOpener prepares an [Atomic] for a target path.
type AtomicOpener struct {
	target      string
	permissions fs.FileMode
}

// Prepares to open a new [Atomic] for the file at the given target path.
func AtomicWithTarget(target string) *AtomicOpener {
	return &AtomicOpener{
		target:      target,
		permissions: fs.ModeIrregular, // "unset" marker, see wantsChmod()
	}
}

// The desired permissions for the target.
// Will rely on the umask if not called.
func (o *AtomicOpener) WithPermissions(perm os.FileMode) *AtomicOpener {
	o.permissions = perm.Perm()
	return o
}

func (o *AtomicOpener) wantsChmod() bool {
	return o.permissions.IsRegular()
}

// Open a new [Atomic] for writing. It is backed by a hidden temporary file
// next to the target. If the returned Atomic gets closed without calling
// [Atomic.Finish] before, the temporary file will be deleted without touching
// the target.
func (o *AtomicOpener) Open() (*Atomic, error) {
	target, err := filepath.Abs(o.target)
	if err != nil {
		return nil, err
	}

	fd, err := os.CreateTemp(filepath.Dir(target), fmt.Sprintf(".%s.*.tmp", filepath.Base(target)))
	if err != nil {
		return nil, err
	}

	return &Atomic{target: target, permissions: o.permissions, chmod: o.wantsChmod(), fd: fd}, nil
}

// Perform the atomic file creation or replacement. If write returns without
// an error, the temporary file will be renamed to the target name, otherwise
// it will be deleted without touching the target.
func (o *AtomicOpener) Do(write func(unbuffered io.Writer) error) (err error) {
	f, err := o.Open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := write(f); err != nil {
		return err
	}
	return f.Finish()
}

// Atomically create or replace the target file with the given content.
func (o *AtomicOpener) WriteString(content string) error {
	return o.Do(func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}

// A file that will appear atomically at its target path after [Atomic.Finish]
// has been called.
type Atomic struct {
	target      string
	permissions fs.FileMode
	chmod       bool
	fd          *os.File
	closed      atomic.Bool
}

// Write implements [io.Writer].
func (f *Atomic) Write(p []byte) (int, error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	return f.fd.Write(p)
}

// Finishes f by closing it and renaming it to its target path. If finishing
// fails, the temporary file is deleted and the target is left untouched.
func (f *Atomic) Finish() (err error) {
	if f == nil {
		return fs.ErrInvalid
	}

	if !f.closed.CompareAndSwap(false, true) {
		return &fs.PathError{Op: "close", Path: f.target, Err: fs.ErrClosed}
	}

	closeFd := true
	defer func() {
		var closeErr, removeErr error
		if closeFd {
			closeErr = f.fd.Close()
		}
		if err != nil {
			removeErr = RemoveIfExists(f.fd.Name())
		}
		err = errors.Join(err, closeErr, removeErr)
	}()

	if err = f.fd.Sync(); err != nil {
		return err
	}

	closeFd = false // If Close() fails, don't try it a second time.
	if err = f.fd.Close(); err != nil {
		return err
	}

	if f.chmod {
		if err := os.Chmod(f.fd.Name(), f.permissions); err != nil {
			return err
		}
	}

	return os.Rename(f.fd.Name(), f.target)
}

// Closes f and deletes its temporary shadow. The target remains untouched.
// This is a no-op if f has already been finished/closed.
func (f *Atomic) Close() error {
	if f == nil {
		return fs.ErrInvalid
	}

	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	return errors.Join(f.fd.Close(), RemoveIfExists(f.fd.Name()))
}
