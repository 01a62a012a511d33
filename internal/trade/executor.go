package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"frontoffice/internal/domain"
	"frontoffice/internal/observability"
	"frontoffice/internal/pickvalue"
	"frontoffice/internal/storage"
)

// tradeCooldownGames is how long an acquired player must stay put before
// being flipped again.
const tradeCooldownGames = 15

// Acceptance and rejection flavor text shown to the user.
const (
	msgAccepted       = "Trade accepted! \"Nice doing business with you!\""
	msgRejected       = "Trade rejected! \"What, do you think I'm an idiot?\""
	msgTradesDisabled = "Error! You're not allowed to make trades now."
)

// RosterReorderer re-sorts a team's lineup after its roster changes.
// Satisfied by the team package.
type RosterReorderer interface {
	AutoSort(ctx context.Context, teamID int64) error
}

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	Players   storage.PlayerStore
	Teams     storage.TeamStore
	Picks     storage.DraftPickStore
	Trades    storage.TradeStore
	Events    storage.EventStore
	Evaluator *Evaluator
	Validator *Validator
	Sorter    RosterReorderer

	// PickCache is optional; committed trades invalidate the current
	// season's pick-value table since rosters behind the ranks moved.
	PickCache *pickvalue.Cache
}

// Executor commits accepted proposals: reassigns players and picks, logs
// the trade, and clears the negotiation. Commits are serialized; two
// trades touching overlapping rosters must not interleave.
type Executor struct {
	players storage.PlayerStore
	teams   storage.TeamStore
	picks   storage.DraftPickStore
	trades  storage.TradeStore
	events  storage.EventStore
	eval    *Evaluator
	val     *Validator
	sorter  RosterReorderer
	cache   *pickvalue.Cache

	mu sync.Mutex
}

// NewExecutor creates an Executor, validating required collaborators.
func NewExecutor(opts ExecutorOptions) (*Executor, error) {
	if opts.Players == nil || opts.Teams == nil || opts.Picks == nil {
		return nil, errors.New("executor requires player, team, and pick stores")
	}
	if opts.Trades == nil || opts.Events == nil {
		return nil, errors.New("executor requires trade and event stores")
	}
	if opts.Evaluator == nil || opts.Validator == nil {
		return nil, errors.New("executor requires an evaluator and a validator")
	}
	if opts.Sorter == nil {
		return nil, errors.New("executor requires a roster reorderer")
	}
	return &Executor{
		players: opts.Players,
		teams:   opts.Teams,
		picks:   opts.Picks,
		trades:  opts.Trades,
		events:  opts.Events,
		eval:    opts.Evaluator,
		val:     opts.Validator,
		sorter:  opts.Sorter,
		cache:   opts.PickCache,
	}, nil
}

// Propose runs the final evaluation and, on acceptance (or force
// override), commits the trade. The returned message is user-facing
// flavor text; a false result with nil error is a normal rejection.
func (e *Executor) Propose(ctx context.Context, league *domain.LeagueState, proposal *domain.TradeProposal, force bool) (bool, string, error) {
	if !league.TradingAllowed() {
		return false, msgTradesDisabled, nil
	}

	proposal, err := e.val.Sanitize(ctx, proposal)
	if err != nil {
		return false, "", err
	}

	summary, err := e.val.Summarize(ctx, league, proposal)
	if err != nil {
		return false, "", err
	}
	for side := range summary.Sides {
		if len(summary.Sides[side].Untradable) > 0 {
			return false, summary.Sides[side].Untradable[0], nil
		}
	}
	// The cap warning blocks automatic acceptance only; a forced trade
	// goes through over it.
	if summary.Warning != "" && !force {
		return false, summary.Warning, nil
	}

	dv, err := e.eval.ValueChange(ctx, league, proposal.Sides[aiSide].TeamID, ProposalSwap(proposal, aiSide))
	if err != nil {
		return false, "", err
	}
	if dv <= 0 && !force {
		observability.DefaultMetrics.TradesRejected.Inc()
		return false, msgRejected, nil
	}

	if err := e.commit(ctx, league, proposal, summary); err != nil {
		return false, "", err
	}
	return true, msgAccepted, nil
}

// commit performs the asset transfer under the executor's write scope.
func (e *Executor) commit(ctx context.Context, league *domain.LeagueState, proposal *domain.TradeProposal, summary *Summary) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	playersMoved, picksMoved := 0, 0
	var eventPlayerIDs []int64

	for side := range proposal.Sides {
		destTeamID := proposal.Sides[1-side].TeamID

		for _, id := range proposal.Sides[side].PlayerIDs {
			p, err := e.players.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("commit player %d: %w", id, err)
			}
			p.TeamID = destTeamID
			p.GamesUntilTradable = tradeCooldownGames
			if league.Phase <= domain.PhasePlayoffs {
				p.Stats = append(p.Stats, domain.StatsRow{
					Season:   league.Season,
					TeamID:   destTeamID,
					Playoffs: league.Phase == domain.PhasePlayoffs,
				})
			}
			if err := e.players.Update(ctx, p); err != nil {
				return fmt.Errorf("commit player %d: %w", id, err)
			}
			playersMoved++
			eventPlayerIDs = append(eventPlayerIDs, id)
		}

		for _, id := range proposal.Sides[side].PickIDs {
			dp, err := e.picks.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("commit pick %d: %w", id, err)
			}
			dp.TeamID = destTeamID
			if err := e.picks.Update(ctx, dp); err != nil {
				return fmt.Errorf("commit pick %d: %w", id, err)
			}
			picksMoved++
		}
	}

	event := &domain.TradeEvent{
		EventID:   uuid.NewString(),
		Type:      domain.EventTypeTrade,
		Season:    league.Season,
		Text:      eventText(summary),
		TeamIDs:   []int64{proposal.Sides[0].TeamID, proposal.Sides[1].TeamID},
		PlayerIDs: eventPlayerIDs,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := e.events.Insert(ctx, event); err != nil {
		return fmt.Errorf("log trade event: %w", err)
	}

	if err := e.trades.Clear(ctx); err != nil {
		return fmt.Errorf("clear negotiation: %w", err)
	}

	if e.cache != nil {
		e.cache.Invalidate(league.Season)
	}

	for side := range proposal.Sides {
		teamID := proposal.Sides[side].TeamID
		if teamID == league.UserTeamID {
			continue
		}
		if err := e.sorter.AutoSort(ctx, teamID); err != nil {
			return fmt.Errorf("resort roster %d: %w", teamID, err)
		}
	}

	observability.RecordTradeCommit(playersMoved, picksMoved)
	return nil
}

// eventText renders the league-log line for a committed trade.
func eventText(summary *Summary) string {
	return fmt.Sprintf("The %s traded %s to the %s for %s.",
		summary.Sides[0].Name, assetList(&summary.Sides[0]),
		summary.Sides[1].Name, assetList(&summary.Sides[1]))
}

func assetList(s *SummarySide) string {
	items := append(append([]string(nil), s.Players...), s.Picks...)
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
