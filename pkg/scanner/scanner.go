/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"

	"github.com/quill-lang/quill/pkg/common/parse"
	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/source"
)

// operatorChars is the set of bytes that form operator-identifiers.
const operatorChars = "/=-+*%<>!&|^"

// Scanner walks an immutable input buffer and produces one token per
// call to Emit. The cursor only moves forward; a Scanner is not safe
// for concurrent use, but any number of Scanners may share one buffer.
type Scanner struct {
	Input string
	Start int
	Pos   int
	Sink  diagnostic.Sink
}

// New creates a Scanner over the buffer registered under id. The
// buffer contents are captured once; the manager is never re-queried.
func New(mgr *source.Manager, id source.BufferID, sink diagnostic.Sink) *Scanner {
	return &Scanner{Input: mgr.Buffer(id).Contents, Sink: sink}
}

// MatchIdentifier returns the length of the next token, assuming it is
// an identifier.
//
// Grammar:
//
//	identifier      = 1*(ALPHA / DIGIT / '_' / '$')
func (s *Scanner) MatchIdentifier() int {
	size := 0
	for i := s.Pos; i < len(s.Input) && isIdentByte(s.Input[i]); i++ {
		size++
	}
	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// number. Only decimal digit runs are recognized; anything following
// the run is left for the next dispatch.
//
// Grammar:
//
//	number          = 1*DIGIT
func (s *Scanner) MatchNumber() int {
	size := 0
	for i := s.Pos; i < len(s.Input) && isDigitByte(s.Input[i]); i++ {
		size++
	}
	return size
}

// MatchOperator returns the length of the next token, assuming it is a
// run of operator characters.
//
// Grammar:
//
//	operator        = 1*("/" / "=" / "-" / "+" / "*" / "%" / "<" / ">" / "!" / "&" / "|" / "^")
func (s *Scanner) MatchOperator() int {
	size := 0
	for i := s.Pos; i < len(s.Input) && isOperatorByte(s.Input[i]); i++ {
		size++
	}
	return size
}

// Emit the next Token found on Scanner.Input. Whitespace and comments
// are skipped without producing a token. Once the end of the input is
// reached, every subsequent call returns a zero-length TOK_EOF token.
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	for {
		s.Start = s.Pos

		if s.Pos == len(s.Input) {
			t.Type = TOK_EOF
			t.Location = parse.Location{Start: s.Pos, End: s.Pos}
			return t
		}

		c := s.Input[s.Pos]
		found := true
		skip := 1

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			found = false
		case c == 0:
			// A nul before the end of the buffer is whitespace.
			s.report(s.Pos, "nul character embedded in middle of file", diagnostic.Warning)
			found = false
		case c == '(':
			t.Type = TOK_PAREN_L
		case c == ')':
			t.Type = TOK_PAREN_R
		case c == '{':
			t.Type = TOK_BRACE_L
		case c == '}':
			t.Type = TOK_BRACE_R
		case c == '[':
			t.Type = TOK_BRACKET_L
		case c == ']':
			t.Type = TOK_BRACKET_R
		case c == '.':
			t.Type = TOK_PERIOD
		case c == ',':
			t.Type = TOK_COMMA
		case c == ';':
			t.Type = TOK_SEMICOLON
		case c == ':':
			t.Type = TOK_COLON
			if s.peek(1) == ':' {
				t.Type = TOK_COLON_COLON
				skip = 2
			}
		case c == '/' && s.peek(1) == '/':
			s.Pos += 2
			s.skipLineComment()
			skip = s.Pos - s.Start
			found = false
		case isOperatorByte(c):
			skip = s.MatchOperator()
			t.Type = operatorType(s.Input[s.Start : s.Start+skip])
		case c == '$':
			t.Type = TOK_DOLLAR_IDENT
			skip = s.MatchIdentifier()
		case isDigitByte(c):
			t.Type = TOK_NUMBER
			skip = s.MatchNumber()
		case isLetterByte(c) || c == '_':
			skip = s.MatchIdentifier()
			t.Type = LookupIdentifier(s.Input[s.Start : s.Start+skip])
		default:
			s.report(s.Pos, "invalid character in source file", diagnostic.Error)
			t.Type = TOK_UNKNOWN
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	return t
}

// skipLineComment consumes characters up to and including the newline
// that ends a // comment. The cursor must be just past the second
// slash. A missing newline at the end of the buffer is reported, not
// fatal; the next Emit will produce TOK_EOF.
func (s *Scanner) skipLineComment() {
	for s.Pos < len(s.Input) {
		c := s.Input[s.Pos]
		s.Pos++

		switch c {
		case '\n', '\r':
			return
		case 0:
			// A comment is not terminated by an embedded nul.
			s.report(s.Pos-1, "nul character embedded in middle of file", diagnostic.Warning)
		}
	}

	s.report(s.Pos-1, "no newline at end of // comment", diagnostic.Warning)
}

// operatorType reclassifies the two operator spellings that are
// reserved. Every other run, whatever its content, is a plain
// operator-identifier.
func operatorType(span string) TokenType {
	switch span {
	case "=":
		return TOK_ASSIGN
	case "->":
		return TOK_ARROW
	}
	return TOK_OPERATOR
}

// peek returns the byte n positions past the cursor, or 0 at the end
// of the input.
func (s *Scanner) peek(n int) byte {
	if s.Pos+n >= len(s.Input) {
		return 0
	}
	return s.Input[s.Pos+n]
}

func (s *Scanner) report(pos int, message string, severity diagnostic.Severity) {
	if s.Sink == nil {
		return
	}
	s.Sink.Report(pos, message, severity)
}

func isLetterByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigitByte(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentByte(c byte) bool {
	return isLetterByte(c) || isDigitByte(c) || c == '_' || c == '$'
}

func isOperatorByte(c byte) bool {
	return strings.IndexByte(operatorChars, c) >= 0
}
