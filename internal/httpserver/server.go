// internal/httpserver/server.go
//
// HTTP server wiring for the guess grid.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health".
//   - Session endpoints: POST /session creates a board and hands back a
//     session token; key/board/delete routes require that token.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Every key press is applied through store.Update, so presses against
//     one board never interleave.
//   - Invalid key tokens are a 400; valid keys that do nothing are a 200
//     with changed=false, matching the board's silent no-op contract.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-grid/internal/config"
	"github.com/robalobadob/wordle-grid/internal/game"
	"github.com/robalobadob/wordle-grid/internal/store"
)

// Server bundles router, session store and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg config.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-grid","endpoints":["/health","POST /session","POST /session/key","GET /session/board","DELETE /session"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/session", s.handleNewSession)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Post("/session/key", s.handleKey)
		r.Get("/session/board", s.handleBoard)
		r.Delete("/session", s.handleDelete)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ SESSION ------------------------------------

// newSessionReq/Res payloads for POST /session.
type newSessionReq struct {
	Target string `json:"target"` // optional override of the configured target
}
type newSessionRes struct {
	SessionID string        `json:"sessionId"`
	Token     string        `json:"token"`
	Board     game.Snapshot `json:"board"`
}

// handleNewSession creates a board, stores it, and issues a session token
// (JSON body + cookie).
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	// An empty body means "use the configured target".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	target := req.Target
	if target == "" {
		target = s.cfg.Target
	}
	sess, err := game.NewSession(target, s.cfg.BoardOptions()...)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_target")
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Info().Str("session", sess.ID).Int("wordLength", sess.Board.WordLength()).Msg("session created")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Token: tok, Board: sess.Board.Snapshot()})
}

// keyReq/Res payloads for POST /session/key.
type keyReq struct {
	Key string `json:"key"` // letter, "enter" or "clear"
}
type keyRes struct {
	Changed bool          `json:"changed"`
	Board   game.Snapshot `json:"board"`
}

// handleKey applies one key press to the caller's board.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	k, err := game.ParseKey(req.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_key")
		return
	}

	var res keyRes
	err = s.store.Update(r.Context(), sessionID(r), func(b *game.Board) error {
		res.Changed = b.HandleKey(k)
		res.Board = b.Snapshot()
		return nil
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	log.Debug().Str("session", sessionID(r)).Stringer("key", k).Bool("changed", res.Changed).Msg("key")
	_ = json.NewEncoder(w).Encode(res)
}

// handleBoard returns the current board snapshot.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	var snap game.Snapshot
	err := s.store.View(r.Context(), sessionID(r), func(b *game.Board) {
		snap = b.Snapshot()
	})
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// handleDelete drops the session and clears the cookie.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), sessionID(r)); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.clearSessionCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ------------------------------- small util --------------------------------

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("session store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}

// writeError emits {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
