/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import "sort"

type TokenType int

const (
	TOK_UNKNOWN TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_DOLLAR_IDENT
	TOK_NUMBER
	TOK_OPERATOR

	// Reserved words
	TOK_KW_FUNC
	TOK_KW_VAR
	TOK_KW_STRUCT
	TOK_KW_TYPEALIAS
	TOK_KW_ONEOF
	TOK_KW_BUILTIN_INT32

	// Punctuation
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_BRACE_L
	TOK_BRACE_R
	TOK_BRACKET_L
	TOK_BRACKET_R
	TOK_PERIOD
	TOK_COMMA
	TOK_SEMICOLON
	TOK_COLON
	TOK_COLON_COLON
	TOK_ASSIGN
	TOK_ARROW
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_UNKNOWN:
		return "TOK_UNKNOWN"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_DOLLAR_IDENT:
		return "TOK_DOLLAR_IDENT"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_OPERATOR:
		return "TOK_OPERATOR"
	case TOK_KW_FUNC:
		return "TOK_KW_FUNC"
	case TOK_KW_VAR:
		return "TOK_KW_VAR"
	case TOK_KW_STRUCT:
		return "TOK_KW_STRUCT"
	case TOK_KW_TYPEALIAS:
		return "TOK_KW_TYPEALIAS"
	case TOK_KW_ONEOF:
		return "TOK_KW_ONEOF"
	case TOK_KW_BUILTIN_INT32:
		return "TOK_KW_BUILTIN_INT32"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_BRACE_L:
		return "TOK_BRACE_L"
	case TOK_BRACE_R:
		return "TOK_BRACE_R"
	case TOK_BRACKET_L:
		return "TOK_BRACKET_L"
	case TOK_BRACKET_R:
		return "TOK_BRACKET_R"
	case TOK_PERIOD:
		return "TOK_PERIOD"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_COLON_COLON:
		return "TOK_COLON_COLON"
	case TOK_ASSIGN:
		return "TOK_ASSIGN"
	case TOK_ARROW:
		return "TOK_ARROW"
	}
	return "TOK_INVALID"
}

var keywords = map[string]TokenType{
	"func":                 TOK_KW_FUNC,
	"var":                  TOK_KW_VAR,
	"struct":               TOK_KW_STRUCT,
	"typealias":            TOK_KW_TYPEALIAS,
	"oneof":                TOK_KW_ONEOF,
	"__builtin_int32_type": TOK_KW_BUILTIN_INT32,
}

// LookupIdentifier maps an identifier spelling to its reserved-word
// kind, or to TOK_IDENTIFIER when the spelling is not reserved. The
// lookup is exact and case-sensitive.
func LookupIdentifier(name string) TokenType {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return TOK_IDENTIFIER
}

// Keywords returns the reserved spellings in sorted order.
func Keywords() []string {
	ret := make([]string, 0, len(keywords))
	for k := range keywords {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
