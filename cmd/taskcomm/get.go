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

	"github.com/hostproc/taskcomm/pkg/proctask"
)

// getCmd implements subcommands.Command for the "get" command.
type getCmd struct{}

// Name implements subcommands.Command.Name.
func (*getCmd) Name() string {
	return "get"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*getCmd) Synopsis() string {
	return "prints the name of one task of a process"
}

// Usage implements subcommands.Command.Usage.
func (*getCmd) Usage() string {
	return "get <pid> <tid>\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*getCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*getCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 2 {
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

	name, err := proctask.Comm(pid, tid)
	if err != nil {
		return fatalf("reading name of task %d of process %d: %v", tid, pid, err)
	}
	fmt.Println(name)
	return subcommands.ExitSuccess
}
