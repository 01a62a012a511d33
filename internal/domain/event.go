package domain

// Event types recorded in the league event log.
const (
	EventTypeTrade = "trade"
)

// TradeEvent is a human-readable league log entry written when a trade
// commits.
type TradeEvent struct {
	EventID   string // UUID
	Type      string
	Season    int
	Text      string
	TeamIDs   []int64
	PlayerIDs []int64
	CreatedAt int64 // Unix timestamp in milliseconds
}
