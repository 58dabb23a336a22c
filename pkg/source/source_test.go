/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPosition(t *testing.T) {
	m := NewManager()
	id := m.AddBuffer("test", "var x\nfunc y\n")
	b := m.Buffer(id)

	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},
		{6, 2, 1},
		{11, 2, 6},
		{13, 3, 1},
		{100, 3, 1},
	}

	for _, test := range tests {
		line, col := b.Position(test.offset)
		if line != test.line || col != test.col {
			t.Errorf("offset %d: wanted %d:%d, got %d:%d", test.offset, test.line, test.col, line, col)
		}
	}
}

func TestLine(t *testing.T) {
	m := NewManager()
	id := m.AddBuffer("test", "first\r\nsecond\nthird")
	b := m.Buffer(id)

	wanted := []string{"first", "second", "third"}
	for i, want := range wanted {
		if got := b.Line(i + 1); got != want {
			t.Errorf("line %d: wanted %q, got %q", i+1, want, got)
		}
	}

	if got := b.Line(4); got != "" {
		t.Errorf("line 4 should be empty, got %q", got)
	}
}

func TestAddFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.ql")
	if err := os.WriteFile(path, []byte("func main"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	id, err := m.AddFile(path)
	if err != nil {
		t.Fatal(err)
	}

	b := m.Buffer(id)
	if b == nil {
		t.Fatal("buffer handle did not resolve")
	}
	if b.Contents != "func main" {
		t.Errorf("wanted %q, got %q", "func main", b.Contents)
	}

	if _, err := m.AddFile(filepath.Join(t.TempDir(), "missing.ql")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBufferUnknownHandle(t *testing.T) {
	m := NewManager()
	if m.Buffer(0) != nil || m.Buffer(-1) != nil {
		t.Error("unknown handles should resolve to nil")
	}
}
