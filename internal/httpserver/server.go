// internal/httpserver/server.go
//
// HTTP server wiring for the guessing game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", POST /game/new.
//   - Session-gated game endpoints under /game/{id}: view, type, submit, select, reset.
//
// Notes:
//   - Every game action is one session.Event applied through store.Update, so a
//     game has a single writer even when requests overlap.
//   - Responses carry the rendered board plus any notices for the client to show.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hads/internal/game"
	"github.com/robalobadob/hads/internal/render"
	"github.com/robalobadob/hads/internal/session"
	"github.com/robalobadob/hads/internal/store"
)

// Options configures game creation and sessions.
type Options struct {
	Target       string
	MaxAttempts  int
	Secret       []byte
	SessionTTL   time.Duration
	ClientOrigin string
	RefocusDelay time.Duration
	SecureCookie bool
}

// Server bundles router, game store and options.
type Server struct {
	r     *chi.Mux
	store store.Store
	opts  Options
	http  *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 14 * 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hads","endpoints":["/health","POST /game/new","GET /game/{id}","PUT /game/{id}/guess","POST /game/{id}/submit","POST /game/{id}/select","POST /game/{id}/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/", s.handleView)
		r.Put("/guess", s.handleType)
		r.Post("/submit", s.handleSubmit)
		r.Post("/select", s.handleSelect)
		r.Post("/reset", s.handleReset)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found", Path: r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

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

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ payloads -----------------------------------

// view is the client-facing snapshot of a game.
type view struct {
	GameID       string       `json:"gameId"`
	Status       game.Status  `json:"status"`
	ActiveRow    int          `json:"activeRow"`
	CurrentGuess string       `json:"currentGuess"`
	MaxAttempts  int          `json:"maxAttempts"`
	Length       int          `json:"length"`
	Board        render.Board `json:"board"`
	Target       string       `json:"target,omitempty"` // only revealed once lost
}

func viewOf(g *game.Game) view {
	v := view{
		GameID:       g.ID,
		Status:       g.Status,
		ActiveRow:    g.ActiveRow,
		CurrentGuess: g.CurrentGuess,
		MaxAttempts:  g.MaxAttempts,
		Length:       g.Len(),
		Board:        render.Grid(g),
	}
	if g.Status == game.StatusLost {
		v.Target = g.Target()
	}
	return v
}

type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	View   view   `json:"view"`
}

type stateRes struct {
	View    view             `json:"view"`
	Notices []session.Notice `json:"notices"`
}

type errorRes struct {
	Error    string           `json:"error"`
	Path     string           `json:"path,omitempty"`
	Expected int              `json:"expected,omitempty"`
	Notices  []session.Notice `json:"notices,omitempty"`
}

type typeReq struct {
	Text string `json:"text"`
}
type submitReq struct {
	Guess string `json:"guess"` // optional; defaults to the current guess
}
type selectReq struct {
	Row *int `json:"row"`
}

// ------------------------------ GAME ---------------------------------------

// handleNewGame creates a game, stores it, and issues its session token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g, err := game.New(uuid.NewString(), s.opts.Target, s.opts.MaxAttempts)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "bad_target"})
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "save_failed"})
		return
	}
	tok, exp, err := s.signSession(g.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "sign_failed"})
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Info().Str("gameId", g.ID).Msg("game created")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Token: tok, View: viewOf(g)})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), sessionGame(r))
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, stateRes{View: viewOf(g), Notices: []session.Notice{}})
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	var req typeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}
	s.dispatch(w, r, session.Event{Kind: session.KindType, Text: req.Text})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
			return
		}
	}
	s.dispatch(w, r, session.Event{Kind: session.KindSubmit, Text: req.Guess})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil {
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}
	s.dispatch(w, r, session.Event{Kind: session.KindSelect, Row: *req.Row})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, session.Event{Kind: session.KindReset})
}

// dispatch runs ev against the stored game inside a single store update.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev session.Event) {
	var notices []session.Notice
	g, err := s.store.Update(r.Context(), sessionGame(r), func(g *game.Game) (*game.Game, error) {
		c := session.New(g, s.opts.RefocusDelay)
		var err error
		notices, err = c.Dispatch(ev)
		if err != nil {
			return nil, err
		}
		return c.Game(), nil
	})
	if err != nil {
		s.writeError(w, err, notices)
		return
	}
	if notices == nil {
		notices = []session.Notice{}
	}
	writeJSON(w, http.StatusOK, stateRes{View: viewOf(g), Notices: notices})
}

// writeError maps store/engine errors to HTTP responses.
func (s *Server) writeError(w http.ResponseWriter, err error, notices []session.Notice) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorRes{Error: "not_found"})
	case errors.Is(err, game.ErrLengthMismatch):
		res := errorRes{Error: "length_mismatch", Notices: notices}
		for _, n := range notices {
			if n.Kind == session.NoticeLengthMismatch {
				res.Expected = n.Expected
			}
		}
		writeJSON(w, http.StatusUnprocessableEntity, res)
	case errors.Is(err, game.ErrGameFinished):
		writeJSON(w, http.StatusConflict, errorRes{Error: "game_finished"})
	case errors.Is(err, game.ErrRowOutOfRange):
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "row_out_of_range"})
	case errors.Is(err, session.ErrUnknownEvent):
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "unknown_event"})
	default:
		log.Error().Err(err).Msg("game action")
		writeJSON(w, http.StatusInternalServerError, errorRes{Error: "internal"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
