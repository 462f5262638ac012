package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	artworkcatalog "artjury/contexts/competition/artwork-catalog"
	catalogerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	judgingengine "artjury/contexts/competition/judging-engine"
	judgingerrors "artjury/contexts/competition/judging-engine/domain/errors"
	panelservice "artjury/contexts/identity-access/panel-service"
	panelerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/internal/platform/session"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "artjury/internal/platform/httpserver/docs"
)

const maxBodyBytes = 1 << 20

// SessionVerifier turns a bearer token into the actor it was issued for.
type SessionVerifier interface {
	Verify(token string) (access.Actor, error)
}

type Options struct {
	Sessions      SessionVerifier
	Metrics       *Metrics
	EnableSwagger bool
}

type Server struct {
	mux        *chi.Mux
	httpServer *http.Server
	logger     *slog.Logger
	addr       string
	catalog    artworkcatalog.Module
	judging    judgingengine.Module
	panel      panelservice.Module
	sessions   SessionVerifier
	metrics    *Metrics
	swagger    bool
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func New(
	catalog artworkcatalog.Module,
	judging judgingengine.Module,
	panel panelservice.Module,
	opts Options,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      chi.NewRouter(),
		logger:   logger,
		addr:     addr,
		catalog:  catalog,
		judging:  judging,
		panel:    panel,
		sessions: opts.Sessions,
		metrics:  opts.Metrics,
		swagger:  opts.EnableSwagger,
	}
	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server stopping",
		"event", "http_server_stopping",
		"module", "internal/platform/httpserver",
		"layer", "platform",
	)
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.mux.Use(middleware.RequestID)
	s.mux.Use(middleware.Recoverer)
	s.mux.Use(s.metrics.instrument)

	s.mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		s.mux.Handle("/metrics", s.metrics.Handler())
	}
	if s.swagger {
		s.mux.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	s.mux.Route("/api", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Post("/auth/login", s.handleLogin)

		r.Get("/artworks", s.handleListArtworks)
		r.Post("/artworks", s.handleCreateArtwork)
		r.Post("/artworks/bulk-upload", s.handleBulkUpload)
		r.Post("/artworks/order/swap", s.handleSwapOrder)
		r.Post("/artworks/reorder", s.handleReorder)
		r.Get("/artworks/{artwork_id}", s.handleGetArtwork)
		r.Patch("/artworks/{artwork_id}", s.handleUpdateArtwork)
		r.Put("/artworks/{artwork_id}/order", s.handleSetOrder)
		r.Get("/gallery/{category}", s.handleGallery)

		r.Get("/vote", s.handleMyVotes)
		r.Post("/vote", s.handleSubmitVote)
		r.Delete("/vote/{vote_id}", s.handleDeleteVote)
		r.Get("/results", s.handleResults)

		r.Get("/judges", s.handleListJudges)
		r.Post("/judges", s.handleCreateJudge)
		r.Put("/judges/{judge_id}", s.handleUpdateJudge)
		r.Delete("/judges/{judge_id}", s.handleDeleteJudge)
	})
}

type actorContextKey struct{}

// authenticate resolves the bearer token, if any, into an actor. Requests
// without a token continue as anonymous; a bad or expired token is rejected.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := access.Anonymous()
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				writeError(w, http.StatusUnauthorized, "invalid_token", "Authorization must be a bearer token")
				return
			}
			if s.sessions == nil {
				writeError(w, http.StatusUnauthorized, "invalid_token", "sessions are not configured")
				return
			}
			verified, err := s.sessions.Verify(parts[1])
			if err != nil {
				s.writeDomainError(w, err)
				return
			}
			actor = verified
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey{}, actor)))
	})
}

func actorFrom(r *http.Request) access.Actor {
	actor, ok := r.Context().Value(actorContextKey{}).(access.Actor)
	if !ok {
		return access.Anonymous()
	}
	return actor
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var partial *catalogerrors.PartialSwapError
	var invalid *validation.Error
	switch {
	case errors.As(err, &partial):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Code:    "partial_order_swap",
			Message: "order swap partially applied",
			Details: map[string]any{
				"appliedArtworkId": partial.AppliedArtworkID,
				"appliedOrder":     partial.AppliedOrder,
				"failedArtworkId":  partial.FailedArtworkID,
				"failedOrder":      partial.FailedOrder,
			},
		})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:    "validation_failed",
			Message: invalid.Message,
			Field:   invalid.Field,
		})
	case errors.Is(err, catalogerrors.ErrArtworkNotFound),
		errors.Is(err, judgingerrors.ErrArtworkNotFound):
		writeError(w, http.StatusNotFound, "artwork_not_found", err.Error())
	case errors.Is(err, judgingerrors.ErrVoteNotFound):
		writeError(w, http.StatusNotFound, "vote_not_found", err.Error())
	case errors.Is(err, panelerrors.ErrJudgeNotFound):
		writeError(w, http.StatusNotFound, "judge_not_found", err.Error())
	case errors.Is(err, access.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, access.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, panelerrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, session.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "token_expired", err.Error())
	case errors.Is(err, session.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, catalogerrors.ErrDuplicateArtworkCode):
		writeError(w, http.StatusConflict, "duplicate_artwork_code", err.Error())
	case errors.Is(err, panelerrors.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, judgingerrors.ErrVoteConflict):
		writeError(w, http.StatusConflict, "vote_conflict", err.Error())
	default:
		s.logger.Error("request failed",
			"event", "http_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
