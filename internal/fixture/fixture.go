// Package fixture seeds a small deterministic league into memory stores,
// used by the demo commands and anywhere else that needs a full league
// without a database.
package fixture

import (
	"context"
	"fmt"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
	"frontoffice/internal/storage/memory"
)

// Stores bundles the in-memory backends the fixture league runs on.
type Stores struct {
	Players *memory.PlayerStore
	Teams   *memory.TeamStore
	Picks   *memory.DraftPickStore
	League  *memory.LeagueStore
	Trades  *memory.TradeStore
	Events  *memory.EventStore
}

// NewStores creates empty memory stores.
func NewStores() *Stores {
	return &Stores{
		Players: memory.NewPlayerStore(),
		Teams:   memory.NewTeamStore(),
		Picks:   memory.NewDraftPickStore(),
		League:  memory.NewLeagueStore(),
		Trades:  memory.NewTradeStore(),
		Events:  memory.NewEventStore(),
	}
}

var teams = []struct {
	region, name, abbrev string
	strategy             domain.Strategy
	priorWon, won, lost  int
}{
	{"Boston", "Bears", "BOS", domain.StrategyContending, 48, 20, 10},
	{"Chicago", "Cyclones", "CHI", domain.StrategyContending, 45, 18, 12},
	{"Denver", "Dynamo", "DEN", domain.StrategyRebuilding, 30, 12, 18},
	{"Houston", "Hornets", "HOU", domain.StrategyContending, 41, 16, 14},
	{"Miami", "Monsoon", "MIA", domain.StrategyRebuilding, 25, 10, 20},
	{"Portland", "Pioneers", "POR", domain.StrategyRebuilding, 22, 8, 22},
	{"Seattle", "Storm", "SEA", domain.StrategyContending, 44, 17, 13},
	{"Tucson", "Totems", "TUC", domain.StrategyRebuilding, 28, 11, 19},
}

var firstNames = []string{"Jalen", "Marcus", "Theo", "Andre", "Cole", "Devin", "Luka", "Omar", "Pau", "Ryan"}
var lastNames = []string{"Abbott", "Brooks", "Castillo", "Dumas", "Ellis", "Franklin", "Geary", "Holt", "Ivey", "Jordan"}

// Seed loads the fixture league: eight teams, ten players each, two
// future first-round picks per team. Team 1 is the user's.
func Seed(ctx context.Context, stores *Stores, cfg *config.SportConfig) (*domain.LeagueState, error) {
	const season = 2026

	league := &domain.LeagueState{
		Season:     season,
		Phase:      domain.PhaseRegularSeason,
		UserTeamID: 1,
		NumTeams:   len(teams),
		SalaryCap:  90000,
	}
	if err := stores.League.Set(ctx, league); err != nil {
		return nil, err
	}

	pickID := int64(1)
	for i, ft := range teams {
		teamID := int64(i + 1)

		t := &domain.TeamRecord{
			TeamID:   teamID,
			Region:   ft.region,
			Name:     ft.name,
			Abbrev:   ft.abbrev,
			Strategy: ft.strategy,
			Seasons: []domain.TeamSeason{
				{Season: season - 1, Won: ft.priorWon, Lost: cfg.GamesPerSeason - ft.priorWon},
				{Season: season, Won: ft.won, Lost: ft.lost},
			},
		}
		if err := stores.Teams.Insert(ctx, t); err != nil {
			return nil, err
		}

		if err := seedRoster(ctx, stores.Players, teamID, season); err != nil {
			return nil, err
		}

		for offset := 1; offset <= 2; offset++ {
			dp := &domain.DraftPickRecord{
				PickID:         pickID,
				TeamID:         teamID,
				OriginalTeamID: teamID,
				Season:         season + offset,
				Round:          1,
			}
			pickID++
			if err := stores.Picks.Insert(ctx, dp); err != nil {
				return nil, err
			}
		}
	}

	return league, nil
}

// seedRoster creates ten players with values sloping from star to fringe.
// Player IDs are teamID*100 + slot.
func seedRoster(ctx context.Context, players storage.PlayerStore, teamID int64, season int) error {
	skills := [][]domain.SkillTag{
		{"A", "3"}, {"Ps", "B"}, {"R", "Po"}, {"Di", "R"}, {"3"},
		{"Dp"}, {"A"}, {"Ps"}, nil, nil,
	}

	for slot := 0; slot < 10; slot++ {
		value := 72 - float64(slot)*4 - float64(teamID%3)
		amount := 1000 + (value-40)*400
		if amount < 500 {
			amount = 500
		}

		p := &domain.PlayerRecord{
			PlayerID:          teamID*100 + int64(slot),
			TeamID:            teamID,
			Name:              fmt.Sprintf("%s %s", firstNames[slot], lastNames[(int(teamID)+slot)%len(lastNames)]),
			BornYear:          season - 21 - (slot+int(teamID))%12,
			Value:             value,
			ValueWithContract: value - 1,
			Skills:            skills[slot],
			Contract:          domain.Contract{Amount: amount, ExpYear: season + 1 + slot%3},
			MarketWorth:       domain.Contract{Amount: amount + 500, ExpYear: season + 1 + slot%3},
			Injury:            domain.Healthy,
			RosterOrder:       slot,
		}
		if err := players.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
