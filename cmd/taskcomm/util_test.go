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

import "testing"

func TestParseID(t *testing.T) {
	for _, tc := range []struct {
		arg  string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"4096", 4096, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"12ab", 0, false},
	} {
		got, err := parseID(tc.arg, "pid")
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("parseID(%q) = (%d, %v), want (%d, nil)", tc.arg, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("parseID(%q) succeeded, want error", tc.arg)
		}
	}
}
