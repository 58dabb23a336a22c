/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/quill-lang/quill/pkg/diagnostic"
	"github.com/quill-lang/quill/pkg/repl"
	"github.com/quill-lang/quill/pkg/source"
	"github.com/rs/zerolog"
)

// maxRequestBytes bounds how much source one lex request may submit.
const maxRequestBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	lexPort     int
	metricsPort int
}

func New(log zerolog.Logger, lexPort, metricsPort int) Server {
	return Server{
		log,
		NewMetricsStore(),
		lexPort,
		metricsPort,
	}
}

// LexResponse is the wire shape of one lexed request.
type LexResponse struct {
	RequestID   string            `json:"request_id"`
	Buffer      string            `json:"buffer"`
	Tokens      []repl.TokenEntry `json:"tokens"`
	Diagnostics []DiagEntry       `json:"diagnostics"`
}

// DiagEntry mirrors diagnostic.Diagnostic with its position resolved
// and its severity spelled out.
type DiagEntry struct {
	Pos      int    `json:"pos"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Mux returns the lex service routes.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/lex", s.handleLex)
	return mux
}

func (s *Server) handleLex(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	if r.Method != http.MethodPost {
		s.metrics.IncRequests("method_not_allowed")
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		s.metrics.IncRequests("bad_request")
		s.log.Error().Err(err).Str("request-id", requestID).Msg("unable to read request body")
		http.Error(w, "unable to read request body", http.StatusBadRequest)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "request"
	}

	mgr := source.NewManager()
	buffer := mgr.Buffer(mgr.AddBuffer(name, string(body)))

	bag := diagnostic.NewBag()
	start := time.Now()
	listing := repl.Scan(buffer, bag)
	s.metrics.ObserveLexNS(time.Since(start).Nanoseconds())

	for _, tok := range listing.Tokens {
		s.metrics.IncTokens(tok.Kind)
	}

	resp := LexResponse{
		RequestID: requestID,
		Buffer:    name,
		Tokens:    listing.Tokens,
	}
	for _, d := range bag.Diagnostics() {
		s.metrics.IncDiagnostics(d.Severity.String())
		line, col := buffer.Position(d.Pos)
		resp.Diagnostics = append(resp.Diagnostics, DiagEntry{
			Pos:      d.Pos,
			Line:     line,
			Column:   col,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	s.metrics.IncRequests("ok")
	s.log.Info().
		Str("request-id", requestID).
		Str("buffer", name).
		Int("bytes", len(body)).
		Int("tokens", len(resp.Tokens)).
		Int("diagnostics", len(resp.Diagnostics)).
		Msg("lexed request")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error().Err(err).Str("request-id", requestID).Msg("unable to write response")
	}
}

// ServeLexer serves the lex endpoint until the process exits.
func (s *Server) ServeLexer() {
	s.log.Info().Int("lex-port", s.lexPort).Msg("listening for lex requests")

	err := http.ListenAndServe(fmt.Sprintf(":%d", s.lexPort), s.Mux())
	if err != nil {
		s.log.Error().Err(err).Msg("error listening and serving")
	}
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	http.Handle("/metrics", s.metrics.Handler())
	http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), nil)
}
