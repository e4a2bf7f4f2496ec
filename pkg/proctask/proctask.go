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

// Package proctask inspects and renames the tasks of a process through
// its /proc/<pid>/task directory.
//
// Operating on another process requires whatever credentials procfs
// itself demands. Within the current process, package threadname is the
// cheaper path for the calling thread.
package proctask

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/hostproc/taskcomm/pkg/fd"
	"github.com/hostproc/taskcomm/pkg/threadname"
)

const (
	taskDir  = "/proc/%d/task"
	taskComm = "/proc/%d/task/%d/comm"
)

// Tasks returns the kernel thread IDs of all tasks of pid, sorted
// ascending. Tasks may appear and exit between the directory read and
// any later use of a TID.
func Tasks(pid int) ([]int, error) {
	entries, err := os.ReadDir(fmt.Sprintf(taskDir, pid))
	if err != nil {
		return nil, err
	}
	tids := make([]int, 0, len(entries))
	for _, e := range entries {
		tid, err := strconv.Atoi(e.Name())
		if err != nil {
			// Task entries are numeric; skip anything else.
			continue
		}
		tids = append(tids, tid)
	}
	sort.Ints(tids)
	return tids, nil
}

// Comm returns the name of task tid of process pid.
func Comm(pid, tid int) (string, error) {
	f, err := fd.Open(fmt.Sprintf(taskComm, pid, tid), unix.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf [threadname.MaxLen + 2]byte
	n, err := f.Read(buf[:])
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf[:n], "\n")), nil
}

// SetComm renames task tid of process pid.
//
// The rules of threadname.SetName apply here too: names longer than
// threadname.MaxLen bytes are rejected with unix.ERANGE, only a
// signal-interrupted write is retried, and a short write is reported as
// unix.EIO rather than completed.
func SetComm(pid, tid int, name string) error {
	if err := threadname.CheckName(name); err != nil {
		return err
	}

	f, err := fd.Open(fmt.Sprintf(taskComm, pid, tid), unix.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	b := []byte(name)
	var n int
	for {
		n, err = f.Write(b)
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
