package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
)

const (
	sessionCookie = "user_session"

	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 4096
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

type handlerFunc func(ctx context.Context, conn *connection, payload *Payload) (*Payload, error)

type Server struct {
	logger   *slog.Logger
	game     gameUseCase
	upgrader ws.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		game:   game,
		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionRoundGet] = server.handleGetRound
	server.handlers[actionRoundDraft] = server.handleUpdateDraft
	server.handlers[actionRoundSubmit] = server.handleSubmitGuess
	server.handlers[actionRoundGuess] = server.handleMakeGuess
	server.handlers[actionRoundReset] = server.handleResetRound

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	var playerID string
	if cookie, err := req.Cookie(sessionCookie); err == nil {
		playerID = cookie.Value
	}

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "error", err)
		return
	}

	conn := &connection{conn: wsConn, playerID: playerID}
	defer conn.close()

	log.Info("WebSocket connection established", "playerID", playerID)

	done := make(chan struct{})
	defer close(done)

	go that.keepAlive(conn, done)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Info("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	conn.conn.SetReadLimit(maxMessageSize)
	if err := conn.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("error reading message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = conn.send(actionError, &Payload{Error: "invalid message"}); err != nil {
				return err
			}
			continue
		}

		if err = that.dispatch(ctx, conn, &message); err != nil {
			return err
		}
	}
}

// dispatch - runs the handler for message and writes its reply.
func (that *Server) dispatch(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return conn.send(actionError, &Payload{Error: "unknown action " + message.Action})
	}

	var request Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &request); err != nil {
			return conn.send(message.Action, &Payload{Error: "invalid payload"})
		}
	}

	response, err := handler(ctx, conn, &request)
	if err != nil {
		log.Error("error processing message", "error", err)
		return conn.send(message.Action, &Payload{Error: clientError(err)})
	}

	return conn.send(message.Action, response)
}

func (that *Server) keepAlive(conn *connection, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				that.logger.Debug("ping failed", "error", err)
				return
			}
		}
	}
}

// connection - one client socket. Writes are serialized by mu.
type connection struct {
	conn     *ws.Conn
	playerID string

	mu sync.Mutex
}

func (that *connection) send(action string, payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) ping() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.conn.WriteControl(ws.PingMessage, nil, time.Now().Add(writeWait))
}

func (that *connection) close() {
	_ = that.conn.Close()
}
