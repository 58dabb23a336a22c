/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/source"
)

func scanListing(t *testing.T, input string) TokenListing {
	t.Helper()

	mgr := source.NewManager()
	id := mgr.AddBuffer("test", input)
	return Scan(mgr.Buffer(id), diagnostic.Discard)
}

func TestScan(t *testing.T) {
	listing := scanListing(t, "var x = 1\nfunc f() {}")

	wantKinds := []string{
		"TOK_KW_VAR", "TOK_IDENTIFIER", "TOK_ASSIGN", "TOK_NUMBER",
		"TOK_KW_FUNC", "TOK_IDENTIFIER", "TOK_PAREN_L", "TOK_PAREN_R",
		"TOK_BRACE_L", "TOK_BRACE_R",
	}

	if len(listing.Tokens) != len(wantKinds) {
		t.Fatalf("wanted %d tokens, got %d", len(wantKinds), len(listing.Tokens))
	}

	for i, want := range wantKinds {
		if listing.Tokens[i].Kind != want {
			t.Error("wanted", want, ", got", listing.Tokens[i].Kind)
		}
	}

	if listing.Tokens[4].Line != 2 || listing.Tokens[4].Column != 1 {
		t.Errorf("func should start line 2 column 1, got %d:%d", listing.Tokens[4].Line, listing.Tokens[4].Column)
	}
}

func TestTextWriter(t *testing.T) {
	listing := scanListing(t, "x -> y")

	buf := new(bytes.Buffer)
	NewOutputWriter(buf, "text").Write(listing)

	out := buf.String()
	for _, want := range []string{"TOK_ARROW", "LEXEME", `"x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestCSVWriter(t *testing.T) {
	listing := scanListing(t, "::")

	buf := new(bytes.Buffer)
	NewOutputWriter(buf, "csv").Write(listing)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wanted header plus one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "TOK_COLON_COLON") {
		t.Errorf("row should contain TOK_COLON_COLON: %q", lines[1])
	}
}

func TestJSONWriter(t *testing.T) {
	listing := scanListing(t, "$x")

	buf := new(bytes.Buffer)
	NewOutputWriter(buf, "json").Write(listing)

	var decoded TokenListing
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Tokens) != 1 || decoded.Tokens[0].Kind != "TOK_DOLLAR_IDENT" {
		t.Errorf("unexpected decode: %+v", decoded)
	}
}
