// Package valuation reduces heterogeneous trade assets (players, draft
// picks) to comparable scalars. Everything here is pure computation:
// callers load records, normalize them to Assets, and aggregate.
package valuation

import (
	"frontoffice/internal/config"
	"frontoffice/internal/domain"
)

// Asset is a player or draft pick normalized for valuation. Assets are
// built fresh for every evaluation and never persisted.
type Asset struct {
	Value     float64
	Skills    []domain.SkillTag
	Contract  domain.Contract
	Worth     domain.Contract
	Injury    domain.Injury
	Age       int
	DraftPick bool
}

// Context carries the evaluating team's situation into the aggregation
// math. It is immutable for the duration of one evaluation.
type Context struct {
	Config   *config.SportConfig
	Strategy domain.Strategy
	Season   int

	// GamesPlayedAvg is the evaluating team's games played this season,
	// bounded to [0, GamesPerSeason]; it prorates partial contract seasons.
	GamesPlayedAvg float64

	// AITeam is true when the evaluating team is not user-controlled.
	// Injury discounts only apply to AI evaluations.
	AITeam bool
}

// RosterAsset normalizes a player staying on the evaluating team's roster.
func RosterAsset(p *domain.PlayerRecord, season int) Asset {
	return playerAsset(p, season, p.Value)
}

// OutgoingAsset normalizes a player the evaluating team would send away.
// AI teams overvalue their own players by the configured fudge factor.
func OutgoingAsset(p *domain.PlayerRecord, season int, fudge float64) Asset {
	return playerAsset(p, season, p.Value*fudge)
}

// IncomingAsset normalizes a player the evaluating team would receive.
// Incoming players are judged with contract quality folded in.
func IncomingAsset(p *domain.PlayerRecord, season int) Asset {
	return playerAsset(p, season, p.ValueWithContract)
}

func playerAsset(p *domain.PlayerRecord, season int, value float64) Asset {
	return Asset{
		Value:    value,
		Skills:   append([]domain.SkillTag(nil), p.Skills...),
		Contract: p.Contract,
		Worth:    p.MarketWorth,
		Injury:   p.Injury,
		Age:      p.Age(season),
	}
}

// ContractSeasonsRemaining returns how many seasons are left on a
// contract. The answer is fractional when the season is partially over.
func ContractSeasonsRemaining(expYear, season int, gamesRemaining, gamesPerSeason float64) float64 {
	if gamesPerSeason <= 0 {
		return float64(expYear - season)
	}
	return float64(expYear-season) + gamesRemaining/gamesPerSeason
}
