// Package trade implements the trade valuation and negotiation engine:
// delta evaluation of a proposed asset swap, a bounded greedy search that
// grows a proposal until the AI team accepts it, and validation/execution
// of accepted proposals.
package trade

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/observability"
	"frontoffice/internal/pickvalue"
	"frontoffice/internal/storage"
	"frontoffice/internal/valuation"
)

// RejectedDV is the sentinel returned when a proposal is structurally
// rejected before valuation. Callers must compare against it rather than
// treating it as a real delta.
const RejectedDV = -1.0

// freeAgencyDays is the length of the free-agency cap-space penalty ramp.
const freeAgencyDays = 30

// PayrollProvider reports a team's committed salary. Satisfied by the
// team package; declared here so the evaluator does not import it.
type PayrollProvider interface {
	Payroll(ctx context.Context, teamID int64) (float64, []domain.Contract, error)
}

// EvaluatorOptions configures an Evaluator.
type EvaluatorOptions struct {
	Players   storage.PlayerStore
	Teams     storage.TeamStore
	Picks     storage.DraftPickStore
	Payrolls  PayrollProvider
	Estimator *pickvalue.Estimator
	Config    *config.SportConfig

	// PickCache is optional; when set, pick-value tables are reused
	// across evaluations within a negotiation session.
	PickCache *pickvalue.Cache
}

// Evaluator computes the signed value change of a proposed swap from one
// team's perspective. It holds no mutable state; every call loads a
// fresh snapshot of records.
type Evaluator struct {
	players   storage.PlayerStore
	teams     storage.TeamStore
	picks     storage.DraftPickStore
	payrolls  PayrollProvider
	estimator *pickvalue.Estimator
	cache     *pickvalue.Cache
	cfg       *config.SportConfig
}

// NewEvaluator creates an Evaluator, validating required collaborators.
func NewEvaluator(opts EvaluatorOptions) (*Evaluator, error) {
	if opts.Players == nil || opts.Teams == nil || opts.Picks == nil {
		return nil, errors.New("evaluator requires player, team, and pick stores")
	}
	if opts.Payrolls == nil {
		return nil, errors.New("evaluator requires a payroll provider")
	}
	if opts.Estimator == nil {
		return nil, errors.New("evaluator requires a pick value estimator")
	}
	if opts.Config == nil {
		return nil, errors.New("evaluator requires a sport config")
	}
	return &Evaluator{
		players:   opts.Players,
		teams:     opts.Teams,
		picks:     opts.Picks,
		payrolls:  opts.Payrolls,
		estimator: opts.Estimator,
		cache:     opts.PickCache,
		cfg:       opts.Config,
	}, nil
}

// Swap names the asset movement evaluated by ValueChange, all from the
// evaluated team's perspective: Add is what it would receive, Remove what
// it would send away.
type Swap struct {
	PlayersAdd    []int64
	PlayersRemove []int64
	PicksAdd      []int64
	PicksRemove   []int64
}

// ValueChange returns the net value change of the swap for teamID. A
// positive result means the team comes out ahead and would accept.
//
// Proposals sending draft picks TO the evaluated team short-circuit to
// RejectedDV: pick valuation is speculative enough that accepting
// incoming picks opens a known overvaluation exploit.
func (e *Evaluator) ValueChange(ctx context.Context, league *domain.LeagueState, teamID int64, swap Swap) (float64, error) {
	start := time.Now()

	if len(swap.PicksAdd) > 0 {
		observability.RecordHardReject()
		return RejectedDV, nil
	}

	team, err := e.teams.GetByID(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("load evaluated team: %w", err)
	}

	aiTeam := teamID != league.UserTeamID

	gp := float64(team.GamesPlayed())
	if gp > float64(e.cfg.GamesPerSeason) {
		gp = float64(e.cfg.GamesPerSeason)
	}
	vctx := valuation.Context{
		Config:         e.cfg,
		Strategy:       team.Strategy,
		Season:         league.Season,
		GamesPlayedAvg: gp,
		AITeam:         aiTeam,
	}

	roster, outgoing, err := e.splitRoster(ctx, teamID, swap.PlayersRemove, league.Season, aiTeam)
	if err != nil {
		return 0, err
	}

	incoming, err := e.incomingAssets(ctx, swap.PlayersAdd, league.Season)
	if err != nil {
		return 0, err
	}

	if len(swap.PicksRemove) > 0 {
		pickAssets, err := e.outgoingPicks(ctx, league, swap.PicksRemove, team.GamesPlayed(), aiTeam)
		if err != nil {
			return 0, err
		}
		outgoing = append(outgoing, pickAssets...)
	}

	// Scarcity bonuses: incoming players are judged against the roster as
	// it would look without them (current roster plus the leavers), and
	// vice versa.
	incomingAdj := valuation.ApplySkillBonuses(e.cfg, incoming, concatAssets(roster, outgoing))
	outgoingAdj := valuation.ApplySkillBonuses(e.cfg, outgoing, concatAssets(roster, incoming))

	dv := valuation.SumValues(vctx, incomingAdj, true) - valuation.SumValues(vctx, outgoingAdj, false)

	contractsFactor := e.cfg.ContendingContractsFactor
	if team.Strategy == domain.StrategyRebuilding {
		contractsFactor = e.cfg.RebuildingContractsFactor
	}
	dv += contractsFactor * (valuation.SumContracts(vctx, outgoingAdj, false) -
		valuation.SumContracts(vctx, incomingAdj, false))

	if league.InSigningWindow() {
		payroll, _, err := e.payrolls.Payroll(ctx, teamID)
		if err != nil {
			return 0, fmt.Errorf("load payroll: %w", err)
		}
		salaryAdded := valuation.SumContracts(vctx, incomingAdj, true) -
			valuation.SumContracts(vctx, outgoingAdj, true)

		// A team with cap room guards it for the signing market; the
		// penalty relaxes as free agency winds down.
		if salaryAdded > 0 && payroll+e.cfg.MinCapSpaceBuffer < league.SalaryCap {
			days := league.DaysLeftInFreeAgency
			if days < 0 {
				days = 0
			}
			if days > freeAgencyDays {
				days = freeAgencyDays
			}
			dv -= (0.2 + 0.8*float64(days)/freeAgencyDays) * salaryAdded
		}
	}

	// Useless depth: taking back more bodies than sent out dilutes minutes.
	if excess := len(incomingAdj) - len(outgoingAdj); excess > 0 {
		dv *= math.Pow(0.9, float64(excess))
	}

	observability.RecordEvaluation("ok", time.Since(start).Seconds())
	return dv, nil
}

// splitRoster loads teamID's players and partitions them into those
// staying and those leaving. Leavers carry the AI self-overvaluation
// fudge when an AI team evaluates.
func (e *Evaluator) splitRoster(ctx context.Context, teamID int64, removeIDs []int64, season int, aiTeam bool) (roster, outgoing []valuation.Asset, err error) {
	players, err := e.players.GetByTeam(ctx, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("load evaluated roster: %w", err)
	}

	removing := make(map[int64]bool, len(removeIDs))
	for _, id := range removeIDs {
		removing[id] = true
	}

	fudge := 1.0
	if aiTeam {
		fudge = e.cfg.FudgeFactor
	}

	for _, p := range players {
		if removing[p.PlayerID] {
			outgoing = append(outgoing, valuation.OutgoingAsset(p, season, fudge))
		} else {
			roster = append(roster, valuation.RosterAsset(p, season))
		}
	}
	return roster, outgoing, nil
}

// incomingAssets loads and normalizes the players the evaluated team
// would receive. Incoming players are judged with contract quality
// folded into their value.
func (e *Evaluator) incomingAssets(ctx context.Context, playerIDs []int64, season int) ([]valuation.Asset, error) {
	assets := make([]valuation.Asset, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, err := e.players.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load incoming player %d: %w", id, err)
		}
		assets = append(assets, valuation.IncomingAsset(p, season))
	}
	return assets, nil
}

// outgoingPicks resolves the draft picks the evaluated team would send
// away into valuation assets.
func (e *Evaluator) outgoingPicks(ctx context.Context, league *domain.LeagueState, pickIDs []int64, gamesPlayed int, aiTeam bool) ([]valuation.Asset, error) {
	table, ranks, err := e.pickTable(ctx, league)
	if err != nil {
		return nil, err
	}

	assets := make([]valuation.Asset, 0, len(pickIDs))
	for _, id := range pickIDs {
		dp, err := e.picks.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load outgoing pick %d: %w", id, err)
		}
		assets = append(assets, e.estimator.ResolvePick(dp, table, ranks, league, gamesPlayed, true, aiTeam))
	}
	return assets, nil
}

// pickTable returns the pick-value table for the current season, through
// the session cache when one is configured. Team ranks are recomputed
// every call; they are one store read and go stale with every game.
func (e *Evaluator) pickTable(ctx context.Context, league *domain.LeagueState) (*pickvalue.Table, map[int64]int, error) {
	ranks, err := e.estimator.TeamRanks(ctx, league)
	if err != nil {
		return nil, nil, err
	}

	if e.cache != nil {
		if table, ok := e.cache.Get(league.Season); ok {
			return table, ranks, nil
		}
	}

	table, err := e.estimator.PickValues(ctx, league)
	if err != nil {
		return nil, nil, err
	}
	if e.cache != nil {
		e.cache.Set(league.Season, table)
	}
	return table, ranks, nil
}

// concatAssets returns a freshly allocated concatenation, so callers can
// append without aliasing either input.
func concatAssets(a, b []valuation.Asset) []valuation.Asset {
	out := make([]valuation.Asset, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// ProposalSwap converts a two-sided proposal into the Swap evaluated from
// the perspective of the team on side idx.
func ProposalSwap(t *domain.TradeProposal, idx int) Swap {
	other := 1 - idx
	return Swap{
		PlayersAdd:    t.Sides[other].PlayerIDs,
		PlayersRemove: t.Sides[idx].PlayerIDs,
		PicksAdd:      t.Sides[other].PickIDs,
		PicksRemove:   t.Sides[idx].PickIDs,
	}
}
