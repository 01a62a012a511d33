package domain

// Strategy is a team's competitive posture. It changes how the team
// weighs assets in trade: rebuilding teams prefer youth, picks, and cap
// room; contending teams prefer immediate production.
type Strategy string

const (
	StrategyContending Strategy = "contending"
	StrategyRebuilding Strategy = "rebuilding"
)

// TeamSeason is one season of a team's win-loss record.
type TeamSeason struct {
	Season int
	Won    int
	Lost   int
}

// TeamRecord is the authoritative stored representation of a team.
type TeamRecord struct {
	TeamID   int64
	Region   string
	Name     string
	Abbrev   string
	Strategy Strategy

	// Seasons is ordered oldest first; the last entry is the current season.
	Seasons []TeamSeason
}

// CurrentSeason returns the team's in-progress season record, or nil if
// the team has no season rows yet.
func (t *TeamRecord) CurrentSeason() *TeamSeason {
	if len(t.Seasons) == 0 {
		return nil
	}
	return &t.Seasons[len(t.Seasons)-1]
}

// PriorSeason returns the completed season before the current one, or nil.
func (t *TeamRecord) PriorSeason() *TeamSeason {
	if len(t.Seasons) < 2 {
		return nil
	}
	return &t.Seasons[len(t.Seasons)-2]
}

// GamesPlayed returns won+lost for the current season.
func (t *TeamRecord) GamesPlayed() int {
	s := t.CurrentSeason()
	if s == nil {
		return 0
	}
	return s.Won + s.Lost
}
