// Copyright 2025 The taskcomm Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux
// +build linux

// Package fd provides scoped ownership of host file descriptors.
//
// FD is similar to os.File, but its Read and Write map to exactly one
// syscall each: callers renaming a task through its comm entry must see
// the byte count of a single write(2), not the result of a retry loop.
package fd

import (
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// FD owns a host file descriptor.
//
// A finalizer closes the descriptor if the owner never does; Close and
// Release both clear it.
type FD struct {
	// fd is accessed atomically so Close/Release can swap it out.
	fd int64
}

// New creates an FD, taking ownership of raw.
func New(raw int) *FD {
	if raw < 0 {
		return &FD{fd: -1}
	}
	f := &FD{fd: int64(raw)}
	runtime.SetFinalizer(f, (*FD).Close)
	return f
}

// Open is equivalent to open(2).
func Open(path string, flags int, mode uint32) (*FD, error) {
	raw, err := unix.Open(path, flags, mode)
	if err != nil {
		return nil, err
	}
	return New(raw), nil
}

// FD returns the descriptor owned by f. f retains ownership.
func (f *FD) FD() int {
	return int(atomic.LoadInt64(&f.fd))
}

// Close closes the owned descriptor.
//
// Close is safe to call multiple times, but will return an error after
// the first call.
func (f *FD) Close() error {
	runtime.SetFinalizer(f, nil)
	return unix.Close(int(atomic.SwapInt64(&f.fd, -1)))
}

// Release relinquishes ownership and returns the raw descriptor.
func (f *FD) Release() int {
	runtime.SetFinalizer(f, nil)
	return int(atomic.SwapInt64(&f.fd, -1))
}

// Read performs a single read(2).
func (f *FD) Read(b []byte) (int, error) {
	n, err := unix.Read(f.FD(), b)
	if n < 0 {
		n = 0
	}
	if n == 0 && len(b) > 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

// Write performs a single write(2) and returns its byte count
// unchanged. It never retries or continues a short write; callers that
// cannot tolerate one have to see it.
func (f *FD) Write(b []byte) (int, error) {
	n, err := unix.Write(f.FD(), b)
	if n < 0 {
		n = 0
	}
	return n, err
}
