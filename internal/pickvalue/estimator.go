// Package pickvalue estimates what future draft picks are worth. A
// pick's value depends on where its original owner is projected to
// finish and on the strength of the draft class it belongs to.
package pickvalue

import (
	"context"
	"fmt"
	"math"
	"sort"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
	"frontoffice/internal/valuation"
)

// lookaheadSeasons is how many future drafts get a value table.
const lookaheadSeasons = 4

// Table maps estimated draft position to expected player value, one
// ordered array per upcoming season plus a fallback curve. Callers may
// cache a Table across evaluations within one negotiation session; it is
// stale after that.
type Table struct {
	Seasons map[int][]float64 // season -> values, descending
	Default []float64
}

// ValueAt returns the expected value of the pick at zero-based overall
// index in the given season's draft, falling back to the default curve.
func (t *Table) ValueAt(season, index int) float64 {
	if index < 0 {
		index = 0
	}
	if values, ok := t.Seasons[season]; ok && index < len(values) {
		return values[index]
	}
	if len(t.Default) == 0 {
		return 0
	}
	if index >= len(t.Default) {
		index = len(t.Default) - 1
	}
	return t.Default[index]
}

// Estimator builds pick-value tables and team draft-position estimates
// from the authoritative records.
type Estimator struct {
	teams   storage.TeamStore
	players storage.PlayerStore
	cfg     *config.SportConfig
}

// New creates an Estimator.
func New(teams storage.TeamStore, players storage.PlayerStore, cfg *config.SportConfig) *Estimator {
	return &Estimator{teams: teams, players: players, cfg: cfg}
}

// TeamRanks estimates each team's draft position for the next draft:
// rank all teams by projected end-of-season winning percentage, worst
// team first. Keys are team IDs (picks belong to their original owner).
func (e *Estimator) TeamRanks(ctx context.Context, league *domain.LeagueState) (map[int64]int, error) {
	teams, err := e.teams.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams for ranks: %w", err)
	}

	type teamWP struct {
		teamID int64
		wp     float64
	}
	wps := make([]teamWP, 0, len(teams))
	for _, t := range teams {
		wps = append(wps, teamWP{teamID: t.TeamID, wp: e.projectedWinPct(t, league)})
	}

	sort.SliceStable(wps, func(i, j int) bool {
		if wps[i].wp != wps[j].wp {
			return wps[i].wp < wps[j].wp
		}
		return wps[i].teamID < wps[j].teamID
	})

	ranks := make(map[int64]int, len(wps))
	for i, t := range wps {
		ranks[t.teamID] = i + 1
	}
	return ranks, nil
}

// projectedWinPct estimates a team's end-of-season winning percentage.
// With half a season played the current record stands alone; with fewer
// games it is blended toward last season by completion fraction; with no
// games the prior season is used as-is.
func (e *Estimator) projectedWinPct(t *domain.TeamRecord, league *domain.LeagueState) float64 {
	games := float64(e.cfg.GamesPerSeason)
	half := games / 2

	var curWon, curLost, lastWon float64
	if len(t.Seasons) >= 2 {
		cur := t.CurrentSeason()
		prior := t.PriorSeason()
		curWon, curLost = float64(cur.Won), float64(cur.Lost)
		lastWon = float64(prior.Won)
	} else {
		// New league: don't trust thin records, and never undervalue the
		// user's picks relative to placeholder AI records.
		if cur := t.CurrentSeason(); cur != nil && cur.Won+cur.Lost > 15 {
			curWon, curLost = float64(cur.Won), float64(cur.Lost)
		} else if t.TeamID == league.UserTeamID {
			curWon, curLost = games, 0
		} else {
			curWon, curLost = 0, games
		}
		if t.TeamID == league.UserTeamID {
			lastWon = math.Round(games * 0.61)
		} else {
			lastWon = math.Round(games * 0.39)
		}
	}

	gp := curWon + curLost
	switch {
	case gp >= half:
		return curWon / gp
	case gp > 0:
		return gp/half*(curWon/gp) + (half-gp)/half*(lastWon/games)
	default:
		return lastWon / games
	}
}

// PickValues builds the per-season pick-value tables from the generated
// draft classes, plus the default fallback curve. Generated prospects get
// the configured rookie premium; seasons without prospects borrow the
// nearest known season's curve shifted down slightly.
func (e *Estimator) PickValues(ctx context.Context, league *domain.LeagueState) (*Table, error) {
	table := &Table{
		Seasons: make(map[int][]float64),
		Default: defaultCurve(league.NumTeams * e.cfg.DraftRounds),
	}

	for season := league.Season; season < league.Season+lookaheadSeasons; season++ {
		class, err := e.players.GetByDraftYear(ctx, season)
		if err != nil {
			return nil, fmt.Errorf("load draft class %d: %w", season, err)
		}
		if len(class) == 0 {
			continue
		}

		values := make([]float64, 0, len(class))
		for _, p := range class {
			values = append(values, p.Value+e.cfg.RookiePickPremium)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))
		table.Seasons[season] = values
	}

	// Seasons with no generated prospects yet borrow the nearest known
	// curve, shifted down one point per season of distance.
	for season := league.Season; season < league.Season+lookaheadSeasons; season++ {
		if _, ok := table.Seasons[season]; ok {
			continue
		}
		nearest, dist := nearestKnownSeason(table.Seasons, season)
		if dist < 0 {
			continue
		}
		source := table.Seasons[nearest]
		shifted := make([]float64, len(source))
		for i, v := range source {
			shifted[i] = v - float64(dist)
		}
		table.Seasons[season] = shifted
	}

	return table, nil
}

// nearestKnownSeason returns the known season closest to the target and
// its distance, or (0, -1) if no season has data.
func nearestKnownSeason(seasons map[int][]float64, target int) (int, int) {
	best, bestDist := 0, -1
	for s := range seasons {
		d := s - target
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && s < best) {
			best, bestDist = s, d
		}
	}
	return best, bestDist
}

// defaultBase is the hand-tuned expected value of the first 60 picks.
var defaultBase = []float64{
	75, 73, 71, 69, 68, 67, 66, 65, 64, 63,
	62, 61, 60, 59, 58, 57, 56, 55, 54, 53,
	52, 51, 50, 50, 50, 49, 49, 49, 48, 48,
	48, 47, 47, 47, 46, 46, 46, 45, 45, 45,
	44, 44, 44, 43, 43, 43, 42, 42, 42, 41,
	41, 41, 40, 40, 39, 39, 38, 38, 37, 37,
}

// defaultCurve extends the base table to n picks: quarter-point steps
// through pick 90, tenth-point steps beyond.
func defaultCurve(n int) []float64 {
	curve := append([]float64(nil), defaultBase...)
	v := 36.0
	for len(curve) < n && len(curve) < 90 {
		curve = append(curve, v)
		v -= 0.25
	}
	if len(curve) < n {
		v = curve[len(curve)-1] - 0.1
		for len(curve) < n {
			curve = append(curve, v)
			v -= 0.1
		}
	}
	if len(curve) > n {
		curve = curve[:n]
	}
	return curve
}

// ResolvePick normalizes a draft pick into a valuation asset. estPick
// comes from the original owner's rank, blended toward the middle of the
// draft as the pick's season recedes into the future. Outgoing picks from
// an AI team are inflated: teams like their own picks.
func (e *Estimator) ResolvePick(dp *domain.DraftPickRecord, table *Table, ranks map[int64]int,
	league *domain.LeagueState, gamesPlayed int, outgoing, aiTeam bool) valuation.Asset {

	estPick, ok := ranks[dp.OriginalTeamID]
	if !ok {
		estPick = league.NumTeams / 2
	}

	// Uncertainty blend: a pick four seasons out is nearly a coin flip.
	seasons := dp.Season - league.Season
	mid := float64(league.NumTeams) / 2
	estPick = int(math.Round(float64(estPick)*float64(lookaheadSeasons+1-seasons)/float64(lookaheadSeasons+1) +
		mid*float64(seasons)/float64(lookaheadSeasons+1)))
	if estPick < 1 {
		estPick = 1
	}
	if estPick > league.NumTeams {
		estPick = league.NumTeams
	}

	index := estPick - 1 + league.NumTeams*(dp.Round-1)
	value := table.ValueAt(dp.Season, index)

	if outgoing && aiTeam {
		// AI confidence in its own pick narrows as the season resolves.
		games := float64(e.cfg.GamesPerSeason)
		if seasons == 0 && float64(gamesPlayed) >= games/2 {
			value += (1 - float64(gamesPlayed)/games) * 5
		} else {
			value += 5
		}
	}

	salaries := RookieSalaries(e.cfg, league.NumTeams)
	salaryIdx := index
	if salaryIdx >= len(salaries) {
		salaryIdx = len(salaries) - 1
	}
	contract := domain.Contract{
		Amount: salaries[salaryIdx],
		// Rookie deals: 3 seasons for round 1, one fewer per later round.
		ExpYear: dp.Season + 2 + (2 - dp.Round),
	}

	return valuation.Asset{
		Value:     value,
		Contract:  contract,
		Worth:     contract,
		Injury:    domain.Healthy,
		Age:       17,
		DraftPick: true,
	}
}
