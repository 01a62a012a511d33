package team

import (
	"context"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// Strategy flip thresholds. A team's outlook score must cross the band
// before it changes posture, so strategies don't oscillate year to year.
const (
	contendThreshold = 20
	rebuildThreshold = -20
	youngStarValue   = 65
	youngStarMaxAge  = 25
)

// UpdateStrategies re-derives contending/rebuilding for every AI team:
// switch to rebuilding when old and fading, to contending when young
// talent on cheap deals is producing a winning trend. The user's team is
// never touched.
func UpdateStrategies(ctx context.Context, teams storage.TeamStore, players storage.PlayerStore, league *domain.LeagueState) error {
	all, err := teams.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}

	for _, t := range all {
		if t.TeamID == league.UserTeamID {
			continue
		}

		score, err := outlookScore(ctx, players, t, league)
		if err != nil {
			return err
		}

		switch {
		case score > contendThreshold && t.Strategy == domain.StrategyRebuilding:
			t.Strategy = domain.StrategyContending
		case score < rebuildThreshold && t.Strategy == domain.StrategyContending:
			t.Strategy = domain.StrategyRebuilding
		default:
			continue
		}

		if err := teams.Update(ctx, t); err != nil {
			return fmt.Errorf("update strategy: %w", err)
		}
	}
	return nil
}

// outlookScore blends win trend, current record, roster age, and young
// stars about to earn raises into one contend-vs-rebuild signal.
func outlookScore(ctx context.Context, players storage.PlayerStore, t *domain.TeamRecord, league *domain.LeagueState) (float64, error) {
	cur := t.CurrentSeason()
	if cur == nil {
		return 0, nil
	}

	won := cur.Won
	dWon := 0
	if prior := t.PriorSeason(); prior != nil {
		dWon = won - prior.Won
	}

	roster, err := players.GetByTeam(ctx, t.TeamID)
	if err != nil {
		return 0, fmt.Errorf("load roster for outlook: %w", err)
	}

	// Average age weighted by value, so fringe veterans don't drag the
	// signal. Young stars: high value, cheap, and up for a raise soon.
	var numerator, denominator float64
	youngStars := 0
	for _, p := range roster {
		age := p.Age(league.Season)
		numerator += float64(age) * p.Value
		denominator += p.Value

		if p.Value > youngStarValue && p.Contract.ExpYear == league.Season+1 &&
			p.Contract.Amount <= 5000 && age <= youngStarMaxAge {
			youngStars++
		}
	}

	avgAge := 26.0
	if denominator > 0 {
		avgAge = numerator / denominator
	}

	halfWins := float64(won) - float64(cur.Won+cur.Lost)/2
	return 0.8*float64(dWon) + halfWins + 5*(26-avgAge) + 20*float64(youngStars), nil
}
