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
	"fmt"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/hostproc/taskcomm/pkg/proctask"
)

// listCmd implements subcommands.Command for the "list" command.
type listCmd struct{}

// Name implements subcommands.Command.Name.
func (*listCmd) Name() string {
	return "list"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*listCmd) Synopsis() string {
	return "lists the tasks of a process with their names"
}

// Usage implements subcommands.Command.Usage.
func (*listCmd) Usage() string {
	return "list <pid>\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*listCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	pid, err := parseID(f.Arg(0), "pid")
	if err != nil {
		return fatalf("%v", err)
	}

	tids, err := proctask.Tasks(pid)
	if err != nil {
		return fatalf("listing tasks of process %d: %v", pid, err)
	}
	logrus.Debugf("process %d has %d tasks", pid, len(tids))

	for _, tid := range tids {
		name, err := proctask.Comm(pid, tid)
		if err != nil {
			// The task may have exited between the directory read and
			// the comm read.
			logrus.Debugf("task %d: %v", tid, err)
			continue
		}
		fmt.Printf("%d\t%s\n", tid, name)
	}
	return subcommands.ExitSuccess
}
