/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// SourceError is a message anchored to a location in a single line of
// source. It renders with a caret under the offending span.
type SourceError struct {
	Location Location
	Message  string
	Severity string
}

func NewSourceError(loc Location, severity, m string) SourceError {
	return SourceError{Location: loc, Message: m, Severity: severity}
}

// FormatError renders the error against the line it occurred on. The
// provided input must be the single line containing Location, and the
// location offsets must be line-relative.
func (s *SourceError) FormatError(input string) string {
	repeat := s.Location.End - s.Location.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := fmt.Sprintf("%s: %s\n", s.Severity, s.Message)
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s\n", strings.Repeat(" ", s.Location.Start), strings.Repeat("~", repeat))
	return errorString
}
