/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strconv"

	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/scanner"
	"github.com/quill-lang/quill/pkg/source"
)

// TokenEntry is one scanned token with its position resolved to
// line:column form.
type TokenEntry struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// TokenListing is the complete token stream of one buffer, shaped for
// the output writers. The terminating TOK_EOF is not listed.
type TokenListing struct {
	Buffer string       `json:"buffer"`
	Tokens []TokenEntry `json:"tokens"`
}

// Scan lexes an entire buffer, reporting any problems to sink.
func Scan(b *source.Buffer, sink diagnostic.Sink) TokenListing {
	listing := TokenListing{Buffer: b.Name}

	s := scanner.Scanner{Input: b.Contents, Sink: sink}
	for {
		tok := s.Emit()
		if tok.Type == scanner.TOK_EOF {
			break
		}

		line, col := b.Position(tok.Location.Start)
		listing.Tokens = append(listing.Tokens, TokenEntry{
			Kind:   tok.Type.ToString(),
			Lexeme: tok.Lexeme,
			Start:  tok.Location.Start,
			End:    tok.Location.End,
			Line:   line,
			Column: col,
		})
	}

	return listing
}

func (l TokenListing) Headers() []string {
	return []string{"POS", "KIND", "LEXEME"}
}

func (l TokenListing) Values() [][]string {
	rows := make([][]string, 0, len(l.Tokens))
	for _, tok := range l.Tokens {
		rows = append(rows, []string{
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
			tok.Kind,
			strconv.Quote(tok.Lexeme),
		})
	}
	return rows
}
