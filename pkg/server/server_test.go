/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestServer() Server {
	return New(zerolog.Nop(), 0, 0)
}

func TestHandleLex(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/lex?name=snippet", strings.NewReader("var x = 1 @"))
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("wanted 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("response should carry a request id")
	}

	var resp LexResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Buffer != "snippet" {
		t.Errorf("wanted buffer snippet, got %q", resp.Buffer)
	}

	wantKinds := []string{"TOK_KW_VAR", "TOK_IDENTIFIER", "TOK_ASSIGN", "TOK_NUMBER", "TOK_UNKNOWN"}
	if len(resp.Tokens) != len(wantKinds) {
		t.Fatalf("wanted %d tokens, got %d", len(wantKinds), len(resp.Tokens))
	}
	for i, want := range wantKinds {
		if resp.Tokens[i].Kind != want {
			t.Error("wanted", want, ", got", resp.Tokens[i].Kind)
		}
	}

	if len(resp.Diagnostics) != 1 {
		t.Fatalf("wanted 1 diagnostic, got %d", len(resp.Diagnostics))
	}
	if resp.Diagnostics[0].Severity != "error" || resp.Diagnostics[0].Pos != 10 {
		t.Errorf("unexpected diagnostic %+v", resp.Diagnostics[0])
	}
}

func TestHandleLexRejectsGet(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/lex", nil)
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("wanted 405, got %d", rec.Code)
	}
}

func TestMetricsHandler(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/lex", strings.NewReader("func f() -> Int"))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	mreq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	srv.metrics.Handler().ServeHTTP(mrec, mreq)

	body := mrec.Body.String()
	for _, want := range []string{"quill_lex_requests", "quill_tokens"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
