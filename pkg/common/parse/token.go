/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "fmt"

// TokenType is implemented by each scanner's token kind enumeration.
type TokenType interface {
	ToString() string
}

// Location is a half-open byte range [Start, End) into a source buffer.
type Location struct {
	Start int
	End   int
}

func (l Location) Len() int {
	return l.End - l.Start
}

// Token is a classified span of a source buffer. Tokens are plain
// values; once returned by a scanner they are never mutated.
type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}

// String renders a token for debug dumps and test expectations.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) [%d:%d]", t.Type.ToString(), t.Lexeme, t.Location.Start, t.Location.End)
}
