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

package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/hostproc/taskcomm/pkg/proctask"
	"github.com/hostproc/taskcomm/pkg/threadname"
)

// setCmd implements subcommands.Command for the "set" command.
type setCmd struct{}

// Name implements subcommands.Command.Name.
func (*setCmd) Name() string {
	return "set"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*setCmd) Synopsis() string {
	return "renames one task of a process"
}

// Usage implements subcommands.Command.Usage.
func (*setCmd) Usage() string {
	return "set <pid> <tid> <name>\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*setCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*setCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	pid, err := parseID(f.Arg(0), "pid")
	if err != nil {
		return fatalf("%v", err)
	}
	tid, err := parseID(f.Arg(1), "tid")
	if err != nil {
		return fatalf("%v", err)
	}
	name := f.Arg(2)

	if pid == os.Getpid() {
		// Our own tasks are addressable as thread handles.
		logrus.Debugf("renaming own task %d via thread handle", tid)
		err = threadname.SetName(threadname.FromTID(tid), name)
	} else {
		err = proctask.SetComm(pid, tid, name)
	}
	if err != nil {
		return fatalf("renaming task %d of process %d: %v", tid, pid, err)
	}
	return subcommands.ExitSuccess
}
