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

// Package threadname sets and reads the kernel-visible name of threads
// of the current process.
//
// The kernel keeps a thread's name in a fixed TASK_COMM_LEN (16) byte
// buffer including the NUL terminator, so names are at most MaxLen
// bytes. Longer names are rejected with unix.ERANGE rather than
// silently truncated.
//
// All failures are returned as errno values (unix.Errno) that callers
// can match with errors.Is; nothing is logged or retried, except that
// a comm write interrupted by signal delivery is reissued verbatim.
package threadname

import (
	"bytes"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hostproc/taskcomm/pkg/fd"
)

// MaxLen is the longest thread name the kernel accepts, not counting
// the NUL terminator.
const MaxLen = 15

// commPath addresses a task's name entry in procfs. Writing it renames
// the task; this is the only mechanism for naming a thread other than
// the caller, since prctl only operates on the calling thread.
const commPath = "/proc/self/task/%d/comm"

// Thread identifies a thread of the current process. The zero Thread
// is the "no thread" sentinel and is rejected by all operations.
//
// A Thread is only meaningful inside the process that produced it.
type Thread struct {
	tid int
}

// Self returns a handle for the calling thread.
//
// Go moves goroutines between OS threads, so the result only stays the
// calling thread while the goroutine is locked with
// runtime.LockOSThread.
func Self() Thread {
	return Thread{tid: unix.Gettid()}
}

// FromTID returns a handle for the thread with kernel thread ID tid.
// The thread must belong to the current process.
func FromTID(tid int) Thread {
	return Thread{tid: tid}
}

// TID returns the kernel thread ID of t.
func (t Thread) TID() int {
	return t.tid
}

// IsSelf reports whether t identifies the calling thread.
func (t Thread) IsSelf() bool {
	return t.tid == unix.Gettid()
}

// CheckName returns unix.ERANGE if name does not fit the kernel's
// thread name buffer.
func CheckName(name string) error {
	if len(name) > MaxLen {
		return unix.ERANGE
	}
	return nil
}

// commWrite is a variable so tests can inject short and interrupted
// writes.
var commWrite = (*fd.FD).Write

// SetName sets the kernel-visible name of t to name.
//
// The zero Thread is rejected with unix.EINVAL and names longer than
// MaxLen bytes with unix.ERANGE, before any kernel call. Kernel
// failures come back as the raw errno. A comm write that lands fewer
// bytes than len(name) returns unix.EIO: a renamed-but-truncated thread
// is worse than a clearly failed rename. On failure the thread's name
// is unchanged.
func SetName(t Thread, name string) error {
	if t.tid == 0 {
		return unix.EINVAL
	}
	if err := CheckName(name); err != nil {
		return err
	}

	// Changing our own name is an easy special case.
	if t.IsSelf() {
		var buf [MaxLen + 1]byte
		copy(buf[:], name)
		return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
	}

	return setOther(t.tid, name)
}

func setOther(tid int, name string) error {
	f, err := fd.Open(fmt.Sprintf(commPath, tid), unix.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	// One write of the exact name bytes, no terminator. Only signal
	// interruption is retried; a short write is final.
	b := []byte(name)
	var n int
	for {
		n, err = commWrite(f, b)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return err
	}
	if n != len(b) {
		return unix.EIO
	}
	return nil
}

// Name returns the kernel-visible name of t.
func Name(t Thread) (string, error) {
	if t.tid == 0 {
		return "", unix.EINVAL
	}

	if t.IsSelf() {
		var buf [MaxLen + 1]byte
		if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
			return "", err
		}
		if i := bytes.IndexByte(buf[:], 0); i >= 0 {
			return string(buf[:i]), nil
		}
		return string(buf[:]), nil
	}

	f, err := fd.Open(fmt.Sprintf(commPath, t.tid), unix.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// The comm entry is the name plus a trailing newline.
	var buf [MaxLen + 2]byte
	n, err := f.Read(buf[:])
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf[:n], "\n")), nil
}
