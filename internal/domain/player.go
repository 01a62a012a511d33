package domain

// SkillTag labels a distinct on-field skill a player can carry.
// The set of valid tags is sport-specific and configured per league.
type SkillTag string

// Contract is a player contract, or the market-rate equivalent of one.
type Contract struct {
	Amount  float64 // annual salary in thousands of currency units
	ExpYear int     // season after which the contract expires
}

// Injury describes a player's current injury status.
type Injury struct {
	Type           string // "Healthy" when not injured
	GamesRemaining int    // games the player will still miss
}

// Healthy is the sentinel injury status for an uninjured player.
var Healthy = Injury{Type: "Healthy", GamesRemaining: 0}

// StatsRow marks a player's presence on a team during a season.
// A new row is appended when the player changes teams mid-season.
type StatsRow struct {
	Season   int
	TeamID   int64
	Playoffs bool
}

// PlayerRecord is the authoritative stored representation of a player.
type PlayerRecord struct {
	PlayerID int64
	TeamID   int64 // current team; FreeAgentTeamID when unsigned
	Name     string
	BornYear int

	// Value is the player's overall trade value on a 0-100 scale.
	// ValueWithContract additionally folds in contract quality and is
	// used when the player is offered to another team.
	Value             float64
	ValueWithContract float64

	Skills      []SkillTag
	Contract    Contract
	MarketWorth Contract // what a fair open-market deal would look like
	Injury      Injury

	// GamesUntilTradable blocks trades for recently acquired players.
	GamesUntilTradable int

	// DraftYear is the season of the player's draft class. Zero for
	// players generated before the league's draft history begins.
	DraftYear int

	// RosterOrder is the position in the team's active lineup.
	RosterOrder int

	Stats []StatsRow
}

// Age returns the player's age during the given season.
func (p *PlayerRecord) Age(season int) int {
	return season - p.BornYear
}

// FreeAgentTeamID is the TeamID assigned to unsigned players.
const FreeAgentTeamID int64 = -1
