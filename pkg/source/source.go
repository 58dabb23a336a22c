/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package source

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// BufferID is a handle to a buffer registered with a Manager.
type BufferID int

// Buffer is one fully materialized source unit. Contents are immutable
// for the lifetime of the buffer, so any number of scanners may walk
// the same buffer concurrently.
type Buffer struct {
	ID       BufferID
	Name     string
	Contents string
}

// Position maps a byte offset into 1-based line and column numbers.
// Offsets at or past the end of the buffer map to the position just
// after the final byte.
func (b *Buffer) Position(offset int) (line, col int) {
	if offset > len(b.Contents) {
		offset = len(b.Contents)
	}

	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if b.Contents[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Line returns the text of the given 1-based line, without its
// terminating newline. Out-of-range lines return the empty string.
func (b *Buffer) Line(n int) string {
	if n < 1 {
		return ""
	}

	rest := b.Contents
	for ; n > 1; n-- {
		nl := strings.IndexByte(rest, '\n')
		if nl == -1 {
			return ""
		}
		rest = rest[nl+1:]
	}

	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[:nl]
	}
	return strings.TrimSuffix(rest, "\r")
}

// Manager owns the set of source buffers for one front-end invocation.
// Buffers are registered once and never modified or released; handles
// stay valid for the Manager's lifetime.
type Manager struct {
	buffers []*Buffer
}

func NewManager() *Manager {
	return &Manager{}
}

// AddFile reads the file at path into a new buffer.
func (m *Manager) AddFile(path string) (BufferID, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return -1, errors.Wrapf(err, "unable to read source file %s", path)
	}

	return m.AddBuffer(path, string(contents)), nil
}

// AddBuffer registers an in-memory buffer under the given name.
func (m *Manager) AddBuffer(name, contents string) BufferID {
	b := &Buffer{
		ID:       BufferID(len(m.buffers)),
		Name:     name,
		Contents: contents,
	}
	m.buffers = append(m.buffers, b)
	return b.ID
}

// Buffer resolves a handle previously returned by AddFile or
// AddBuffer. Unknown handles return nil.
func (m *Manager) Buffer(id BufferID) *Buffer {
	if id < 0 || int(id) >= len(m.buffers) {
		return nil
	}
	return m.buffers[id]
}
