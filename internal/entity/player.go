package entity

// Player - a browser session playing rounds one after another.
type Player struct {
	ID      string `json:"id"`
	RoundID string `json:"round_id,omitempty"`
	Wins    int    `json:"wins"`
}
