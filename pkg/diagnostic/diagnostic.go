/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package diagnostic

import (
	"sync"

	"github.com/rs/zerolog"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Diagnostic is one reported problem: a byte offset into the buffer
// being scanned, a message, and a severity.
type Diagnostic struct {
	Pos      int      `json:"pos"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Sink receives diagnostics as they are found. Reporting is
// fire-and-forget: a sink never returns an error and must not panic,
// since producers treat reporting as a side channel that cannot alter
// control flow.
type Sink interface {
	Report(pos int, message string, severity Severity)
}

// Bag is a Sink that collects everything reported to it. A Bag may be
// shared between goroutines.
type Bag struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
	warnCount   int
	errorCount  int
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Report(pos int, message string, severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, Diagnostic{Pos: pos, Message: message, Severity: severity})

	switch severity {
	case Warning:
		b.warnCount++
	case Error:
		b.errorCount++
	}
}

// Diagnostics returns a copy of everything reported so far, in report
// order.
func (b *Bag) Diagnostics() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Diagnostic{}, b.diagnostics...)
}

func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// LogSink forwards diagnostics to a zerolog logger, for long-running
// processes where collecting into a Bag would grow without bound.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Report(pos int, message string, severity Severity) {
	event := s.Log.Warn()
	if severity == Error {
		event = s.Log.Error()
	}
	event.Int("pos", pos).Msg(message)
}

type discard struct{}

func (discard) Report(int, string, Severity) {}

// Discard is a Sink that drops everything reported to it.
var Discard Sink = discard{}
