// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package command

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"simple", "ls -la", []string{"ls", "-la"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"single quotes", "echo 'hello world'", []string{"echo", "hello world"}},
		{"quotes dropped", `grep "a"b`, []string{"grep", "ab"}},
		{"mixed quote chars toggle one state", `echo "it's fine"`, []string{"echo", "its fine"}},
		{"unterminated quote swallows rest", `echo "a b c`, []string{"echo", "a b c"}},
		{"runs of spaces", "a   b", []string{"a", "b"}},
		{"tabs and newlines separate", "a\tb\nc", []string{"a", "b", "c"}},
		{"quoted whitespace preserved", `sleep "0.1  "`, []string{"sleep", "0.1  "}},
		{"empty quotes emit nothing", `a "" b`, []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIsPure(t *testing.T) {
	const in = `echo "hello world"`
	first := Parse(in)
	second := Parse(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not deterministic: %#v vs %#v", first, second)
	}
}
