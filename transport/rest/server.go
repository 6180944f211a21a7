package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateRound(ctx context.Context, playerID string) (*entity.Round, error)

	UpdateDraft(ctx context.Context, playerID, draft string) (*entity.Round, error)
	SubmitGuess(ctx context.Context, playerID string) (*entity.Round, bool, error)
	MakeGuess(ctx context.Context, playerID, guess string) (*entity.Round, bool, error)
	ResetRound(ctx context.Context, playerID string) (*entity.Round, error)
}

type Server struct {
	logger *slog.Logger
	game   gameUseCase
	router *chi.Mux
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		game:   game,
		router: chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.RealIP)
	server.router.Use(middleware.Recoverer)
	server.router.Use(middleware.Timeout(handlerTimeout))

	server.router.Get("/ping", server.handlePing)

	server.router.Group(func(r chi.Router) {
		r.Use(server.withSession)

		r.Get("/session", server.handleGetSession)
		r.Get("/round", server.handleGetRound)
		r.Put("/round/draft", server.handleUpdateDraft)
		r.Post("/round/submit", server.handleSubmitGuess)
		r.Post("/round/guess", server.handleMakeGuess)
		r.Post("/round/reset", server.handleResetRound)
	})

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

type sessionKey struct{}

// withSession - resolves the player from the session cookie, issuing one when missing.
func (that *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		log := that.logger.With("method", "withSession")

		var playerID string
		if cookie, err := req.Cookie(sessionCookie); err == nil {
			playerID = cookie.Value
		}

		player, err := that.game.GetOrCreatePlayer(req.Context(), playerID)
		if err != nil {
			log.Error("failed to get or create player", "error", err)
			that.writeError(writer, err)
			return
		}

		if player.ID != playerID {
			http.SetCookie(writer, &http.Cookie{
				Name:     sessionCookie,
				Value:    player.ID,
				Expires:  time.Now().Add(sessionLifetime),
				Path:     "/",
				HttpOnly: true,
			})
			log.Info("session cookie not found, new one created", "playerID", player.ID)
		}

		ctx := context.WithValue(req.Context(), sessionKey{}, player)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

func playerFromContext(ctx context.Context) *entity.Player {
	player, _ := ctx.Value(sessionKey{}).(*entity.Player)
	return player
}
