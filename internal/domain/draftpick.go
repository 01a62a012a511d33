package domain

// DraftPickRecord is the authoritative stored representation of a future
// draft pick. The pick's slot is unknown until the draft; its value is
// estimated from the original owner's projected finish.
type DraftPickRecord struct {
	PickID int64

	// TeamID is the current owner; OriginalTeamID is the team whose
	// finish determines the pick's slot.
	TeamID         int64
	OriginalTeamID int64

	Season int // season whose draft this pick belongs to
	Round  int // 1-based
}
