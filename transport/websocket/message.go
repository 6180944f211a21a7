package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/transport/view"
)

const (
	actionConnect     = "connect"
	actionRoundGet    = "round:get"
	actionRoundDraft  = "round:draft"
	actionRoundSubmit = "round:submit"
	actionRoundGuess  = "round:guess"
	actionRoundReset  = "round:reset"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request and response body of every action.
type Payload struct {
	Player   *entity.Player `json:"player,omitempty"`
	Round    *view.Round    `json:"round,omitempty"`
	Draft    string         `json:"draft,omitempty"`
	Guess    string         `json:"guess,omitempty"`
	Accepted bool           `json:"accepted,omitempty"`
	Error    string         `json:"error,omitempty"`
}
