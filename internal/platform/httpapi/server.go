// Package httpapi serves the 2048 engine as a JSON API: stateful sessions
// kept in memory and stateless board operations.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Error codes returned in the "error" field of failed responses.
const (
	ErrCodeBadJSON           = "bad_json"
	ErrCodeMalformedBoard    = "malformed_board"
	ErrCodeInvalidDimensions = "invalid_dimensions"
	ErrCodeBadDirection      = "bad_direction"
	ErrCodeNotFound          = "not_found"
	ErrCodeSessionLimit      = "session_limit"
)

// Limits used when Config leaves them at zero.
const (
	DefaultMaxRows     = 16
	DefaultMaxCols     = 16
	DefaultMaxSessions = 1024
)

// maxBodyBytes bounds request bodies; boards are small.
const maxBodyBytes = 1 << 20

// Config configures the API server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Rows and Cols are used for sessions created without a size.
	Rows int
	Cols int

	// RequestTimeout bounds handler time. Zero disables the timeout.
	RequestTimeout time.Duration

	// Seed seeds tile spawning. Zero uses the clock.
	Seed int64

	// MaxRows and MaxCols bound every board the API creates or accepts.
	MaxRows int
	MaxCols int

	// MaxSessions bounds the number of live sessions.
	MaxSessions int
}

// Server bundles the router, the session store and the shared generator.
type Server struct {
	config Config
	r      *chi.Mux
	store  *MemoryStore
	rng    *lockedRand
	logger *log.Logger
}

// New constructs a Server and registers its routes.
func New(cfg Config, logger *log.Logger) *Server {
	if cfg.Rows == 0 && cfg.Cols == 0 {
		cfg.Rows, cfg.Cols = 4, 4
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	if cfg.MaxCols <= 0 {
		cfg.MaxCols = DefaultMaxCols
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Server{
		config: cfg,
		r:      chi.NewRouter(),
		store:  NewMemoryStore(cfg.MaxSessions),
		rng:    newLockedRand(seed),
		logger: logger.WithPrefix("http"),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.Len()})
	})

	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/moves", s.handleSessionMove)
		})
	})

	s.r.Route("/boards", func(r chi.Router) {
		r.Post("/move", s.handleBoardMove)
		r.Post("/spawn", s.handleBoardSpawn)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "no route for "+r.URL.Path)
	})

	return s
}

// Router exposes the handler (useful for tests).
func (s *Server) Router() http.Handler { return s.r }

// Store exposes the session store.
func (s *Server) Store() *MemoryStore { return s.store }

// ListenAndServe serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("starting HTTP server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-done:
	case err := <-errs:
		return err
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// ------------------------------ payloads -----------------------------------

type createSessionReq struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type sessionRes struct {
	ID    string      `json:"id"`
	Board t2048.Board `json:"board"`
	Moves int         `json:"moves"`
}

type moveReq struct {
	Direction string `json:"direction"`
}

type boardMoveReq struct {
	Board     t2048.Board `json:"board"`
	Direction string      `json:"direction"`
}

type boardReq struct {
	Board t2048.Board `json:"board"`
}

type moveRes struct {
	Board   t2048.Board `json:"board"`
	Changed bool        `json:"changed"`
}

type boardRes struct {
	Board t2048.Board `json:"board"`
}

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ------------------------------ sessions -----------------------------------

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionReq
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, ErrCodeBadJSON, err.Error())
		return
	}
	if req.Rows == 0 && req.Cols == 0 {
		req.Rows, req.Cols = s.config.Rows, s.config.Cols
	}
	if err := s.checkSize(req.Rows, req.Cols); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidDimensions, err.Error())
		return
	}

	// Each session draws from its own generator; the controller is used
	// under the session lock only.
	rng := rand.New(rand.NewSource(s.rng.Int63()))
	ctrl, err := t2048.NewController(req.Rows, req.Cols, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidDimensions, err.Error())
		return
	}

	id, err := s.store.Create(ctrl)
	if err != nil {
		s.logger.Warn("session rejected", "error", err, "sessions", s.store.Len())
		writeError(w, http.StatusServiceUnavailable, ErrCodeSessionLimit, err.Error())
		return
	}
	s.logger.Info("session created", "session", id, "rows", req.Rows, "cols", req.Cols)
	writeJSON(w, http.StatusCreated, sessionRes{ID: id, Board: ctrl.Board()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	st := sess.snapshot()
	writeJSON(w, http.StatusOK, sessionRes{ID: st.ID, Board: st.Board, Moves: st.Moves})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, ErrSessionNotFound.Error())
		return
	}
	s.logger.Info("session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req moveReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadJSON, err.Error())
		return
	}
	dir, err := t2048.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadDirection, err.Error())
		return
	}

	board, changed := sess.move(dir)
	s.logger.Debug("move", "session", sess.id, "dir", dir, "changed", changed)
	writeJSON(w, http.StatusOK, moveRes{Board: board, Changed: changed})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, err := s.store.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return nil, false
	}
	return sess, true
}

// ------------------------------- boards ------------------------------------

// handleBoardMove applies one move to the posted board. No tile is spawned.
func (s *Server) handleBoardMove(w http.ResponseWriter, r *http.Request) {
	var req boardMoveReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadJSON, err.Error())
		return
	}
	if !s.validBoard(w, req.Board) {
		return
	}
	dir, err := t2048.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadDirection, err.Error())
		return
	}

	moved := t2048.ApplyMove(dir, req.Board)
	writeJSON(w, http.StatusOK, moveRes{Board: moved, Changed: !t2048.Equal(req.Board, moved)})
}

// handleBoardSpawn places one random tile on the posted board.
func (s *Server) handleBoardSpawn(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadJSON, err.Error())
		return
	}
	if !s.validBoard(w, req.Board) {
		return
	}
	writeJSON(w, http.StatusOK, boardRes{Board: t2048.SpawnTile(req.Board, s.rng)})
}

// checkSize rejects boards larger than the configured maximum.
func (s *Server) checkSize(rows, cols int) error {
	if rows > s.config.MaxRows || cols > s.config.MaxCols {
		return fmt.Errorf("%w: %dx%d exceeds the %dx%d limit",
			t2048.ErrInvalidDimensions, rows, cols, s.config.MaxRows, s.config.MaxCols)
	}
	return nil
}

// validBoard writes an error response and returns false when b is malformed
// or too large.
func (s *Server) validBoard(w http.ResponseWriter, b t2048.Board) bool {
	if err := t2048.Validate(b); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeMalformedBoard, err.Error())
		return false
	}
	if err := s.checkSize(b.Dims()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidDimensions, err.Error())
		return false
	}
	return true
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// ------------------------------- helpers -----------------------------------

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorRes{Error: code, Message: message})
}
