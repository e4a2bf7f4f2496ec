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

package fd

import (
	"io"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestOpenWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	f, err := Open(path, unix.O_RDWR|unix.O_CREAT, 0644)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if n, err := f.Write([]byte("hello")); n != 5 || err != nil {
		t.Fatalf("Write = (%d, %v), want (5, nil)", n, err)
	}
	if _, err := unix.Seek(f.FD(), 0, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	buf := make([]byte, 16)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := string(buf[:n]); got != "hello" {
		t.Errorf("Read = %q, want %q", got, "hello")
	}
}

func TestReadEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	f, err := Open(path, unix.O_RDWR|unix.O_CREAT, 0644)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if _, err := f.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("Read = %v, want io.EOF", err)
	}
}

func TestCloseTwice(t *testing.T) {
	f, err := Open("/dev/null", unix.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := f.Close(); err == nil {
		t.Errorf("second Close succeeded, want error")
	}
}

func TestRelease(t *testing.T) {
	f, err := Open("/dev/null", unix.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	raw := f.Release()
	if raw < 0 {
		t.Fatalf("Release = %d, want a valid descriptor", raw)
	}
	if got := f.FD(); got != -1 {
		t.Errorf("FD after Release = %d, want -1", got)
	}
	if err := unix.Close(raw); err != nil {
		t.Errorf("closing released descriptor: %v", err)
	}
}
