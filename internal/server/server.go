// Package server exposes the parser over HTTP and WebSocket.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlast/internal/config"
	"github.com/heathj/htmlast/internal/transcode"
	"github.com/heathj/htmlast/parser"
	"github.com/heathj/htmlast/parser/ast"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	parser *parser.Parser
	log    logrus.FieldLogger
	cfg    config.ServerConfig
}

func New(cfg config.ServerConfig, p *parser.Parser, log logrus.FieldLogger) *Server {
	return &Server{parser: p, log: log, cfg: cfg}
}

// Handler routes:
//
//	POST /parse?format=json|yaml|dump|html&charset=label
//	GET  /healthz
//	GET  /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe serves until ctx is cancelled and then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.cfg.Addr,
		Handler:     s.Handler(),
		ReadTimeout: s.cfg.ReadTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listening")
	case <-ctx.Done():
	}
	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

type errorResponse struct {
	Error  string `json:"error"`
	Around string `json:"around,omitempty"`
}

// errorStatus maps an error from the parser to a status and body.
func errorStatus(err error) (int, errorResponse) {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return http.StatusUnprocessableEntity, errorResponse{Error: pe.Msg, Around: pe.Around}
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, parser.ErrTooLarge) {
		return http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()}
	}
	return http.StatusBadRequest, errorResponse{Error: err.Error()}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("writing response")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parse reads a request body in charset and parses it.
func (s *Server) parse(body io.Reader, charset string) ([]ast.Node, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "reading body")
	}
	b, err := transcode.Bytes(raw, charset)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(bytes.NewReader(b))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	nodes, err := s.parse(body, r.URL.Query().Get("charset"))
	log := s.log.WithFields(logrus.Fields{"format": format, "remote": r.RemoteAddr})
	if err != nil {
		status, resp := errorStatus(err)
		log.WithError(err).WithField("status", status).Info("parse rejected")
		s.writeJSON(w, status, resp)
		return
	}

	out, err := ast.Format(nodes, format)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", ast.ContentType(format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.WithError(err).Warn("writing response")
	}
}
