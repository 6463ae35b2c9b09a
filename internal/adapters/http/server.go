// Package http exposes a ports.Client over a single-verb JSON envelope
// protocol: every operation is a PUT /command carrying a domain.Request and
// answered with a domain.Response. Operation failures travel inside the
// envelope (Response.Err) with HTTP status 200; only malformed transport
// produces a non-200 status.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/cellar/internal/logging"
	"github.com/aretw0/cellar/internal/metrics"
	"github.com/aretw0/cellar/pkg/domain"
	"github.com/aretw0/cellar/pkg/ports"
)

// Server dispatches envelope commands against a ports.Client.
type Server struct {
	client  ports.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the given client. Collectors are
// registered on reg and served under /metrics; pass a fresh
// prometheus.NewRegistry() per handler.
func NewHandler(client ports.Client, reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{
		client:  client,
		logger:  logging.NewNop(),
		metrics: metrics.New(reg),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Put("/command", s.handleCommand)
	return r
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	command := strings.ToUpper(req.Command)
	start := time.Now()

	resp := &domain.Response{K: req.K}
	err := s.dispatch(r, command, &req, resp)
	if err != nil {
		resp.Err = errString(err)
	}
	s.metrics.Observe(command, start, err)
	s.logger.Info("command dispatched",
		"command", command,
		"key", req.K,
		"error", err,
	)

	w.Header().Set("Content-Type", "application/json")
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

func (s *Server) dispatch(r *http.Request, command string, req *domain.Request, resp *domain.Response) error {
	ctx := r.Context()

	switch command {
	case domain.CmdGet:
		var raw json.RawMessage
		if err := s.client.Get(ctx, req.K, &raw); err != nil {
			return err
		}
		resp.V = raw
		return nil
	case domain.CmdSet:
		return s.client.Set(ctx, req.K, json.RawMessage(req.V))
	case domain.CmdSetNX:
		return s.client.SetNX(ctx, req.K, json.RawMessage(req.V))
	case domain.CmdDel:
		return s.client.Del(ctx, req.K)
	case domain.CmdAdd:
		n, err := decodeInt(req.V)
		if err != nil {
			return err
		}
		return s.client.Add(ctx, req.K, n)
	case domain.CmdDec:
		n, err := decodeInt(req.V)
		if err != nil {
			return err
		}
		return s.client.Dec(ctx, req.K, n)
	default:
		return errors.New("unknown command: " + command)
	}
}

func decodeInt(v []byte) (int64, error) {
	var n int64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, errors.New("value is not an integer")
	}
	return n, nil
}

// errString keeps the not-found sentinel stable on the wire so remote
// clients can map it back to domain.ErrKeyNotFound.
func errString(err error) string {
	if errors.Is(err, domain.ErrKeyNotFound) {
		return domain.ErrKeyNotFound.Error()
	}
	return err.Error()
}
