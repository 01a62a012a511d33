package trade

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"frontoffice/internal/domain"
	"frontoffice/internal/observability"
	"frontoffice/internal/storage"
)

const (
	// additionBudget caps how many assets a search may concede before
	// giving up. Keeps the search bounded and the packages believable.
	additionBudget = 5

	// maxParallelEvals bounds the candidate fan-out per round.
	maxParallelEvals = 8
)

// StopPolicy decides when a counter-offer search stops sweetening a
// trade that already favors the AI. added is how many assets the search
// has conceded so far.
type StopPolicy interface {
	ShouldStop(added int) bool
}

// CounterPolicy is a deterministic stop policy: concede exactly MaxFree
// assets, then settle. Used in tests and simulations that need
// reproducible negotiations.
type CounterPolicy struct {
	MaxFree int
}

func (p CounterPolicy) ShouldStop(added int) bool {
	return added >= p.MaxFree
}

// RandomPolicy stops early at random, weighted by how much has already
// been conceded: never before the first concession, always after the
// third, a coin flip in between. This is what makes AI counter-offers
// feel haggled rather than computed.
type RandomPolicy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPolicy creates a RandomPolicy from a seed.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rnd: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) ShouldStop(added int) bool {
	if added > 2 {
		return true
	}
	if added == 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64() > 0.5
}

// NegotiatorOptions configures a Negotiator.
type NegotiatorOptions struct {
	Evaluator *Evaluator
	Players   storage.PlayerStore
	Picks     storage.DraftPickStore
	Teams     storage.TeamStore

	// Trades is optional; when set, successful counter-offers from
	// MakeItWorkTrade are persisted as the current negotiation.
	Trades storage.TradeStore

	// Validator is optional; when set, MakeItWorkTrade summarizes the
	// accepted counter-offer and answers with the cap-rules reply when
	// the summary carries a warning.
	Validator *Validator

	// Policy defaults to a time-seeded RandomPolicy.
	Policy StopPolicy

	// Budget defaults to additionBudget.
	Budget int
}

// Negotiator grows an unbalanced proposal, one asset per round, until
// the AI side accepts or the budget runs out.
type Negotiator struct {
	eval      *Evaluator
	players   storage.PlayerStore
	picks     storage.DraftPickStore
	teams     storage.TeamStore
	trades    storage.TradeStore
	validator *Validator
	policy    StopPolicy
	budget    int
}

// NewNegotiator creates a Negotiator, validating required collaborators.
func NewNegotiator(opts NegotiatorOptions) (*Negotiator, error) {
	if opts.Evaluator == nil {
		return nil, errors.New("negotiator requires an evaluator")
	}
	if opts.Players == nil || opts.Picks == nil || opts.Teams == nil {
		return nil, errors.New("negotiator requires player, pick, and team stores")
	}
	policy := opts.Policy
	if policy == nil {
		policy = NewRandomPolicy(time.Now().UnixNano())
	}
	budget := opts.Budget
	if budget <= 0 {
		budget = additionBudget
	}
	return &Negotiator{
		eval:      opts.Evaluator,
		players:   opts.Players,
		picks:     opts.Picks,
		teams:     opts.Teams,
		trades:    opts.Trades,
		validator: opts.Validator,
		policy:    policy,
		budget:    budget,
	}, nil
}

const (
	userSide = 0
	aiSide   = 1
)

// candidate is one asset that could be added to the proposal, scored by
// the delta it would produce.
type candidate struct {
	side     int
	playerID int64
	pickID   int64
	dv       float64
}

// MakeItWork grows the proposal until the AI team (Sides[1]) accepts.
// With holdUserConstant, only AI assets may be added, used when the user
// is shopping an asset rather than negotiating a specific trade.
//
// Returns the final proposal, its delta from the AI's perspective, and
// whether the AI accepts it. A false result with nil error is the
// expected "no deal" outcome, not a failure.
func (n *Negotiator) MakeItWork(ctx context.Context, league *domain.LeagueState, proposal *domain.TradeProposal, holdUserConstant bool) (*domain.TradeProposal, float64, bool, error) {
	cur := proposal.Clone()

	dv, err := n.eval.ValueChange(ctx, league, cur.Sides[aiSide].TeamID, ProposalSwap(cur, aiSide))
	if err != nil {
		return nil, 0, false, err
	}

	// When the opening proposal already favors the AI, the search flips
	// direction: concede AI assets until the user is no longer overpaying,
	// with the stop policy deciding when the AI quits haggling.
	initialFavorable := dv > 0

	added := 0
	for {
		if !initialFavorable && dv >= 0 {
			observability.RecordNegotiation("success", added)
			return cur, dv, true, nil
		}
		if initialFavorable && n.policy.ShouldStop(added) {
			ok := dv >= 0
			observability.RecordNegotiation(result(ok), added)
			return cur, dv, ok, nil
		}
		if added >= n.budget {
			observability.RecordNegotiation("failure", added)
			return cur, dv, false, nil
		}

		candidates, err := n.enumerate(ctx, league, cur, holdUserConstant)
		if err != nil {
			return nil, 0, false, err
		}
		if len(candidates) == 0 {
			observability.RecordNegotiation("exhausted", added)
			return cur, dv, false, nil
		}

		if err := n.scoreCandidates(ctx, league, cur, candidates); err != nil {
			return nil, 0, false, err
		}

		chosen := selectCandidate(candidates)
		commitCandidate(cur, chosen)
		dv = chosen.dv
		added++
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// enumerate lists every tradable asset not already in the proposal. User
// draft picks are skipped: they would arrive on the AI's side and trip
// the incoming-pick rejection, so they can never help.
func (n *Negotiator) enumerate(ctx context.Context, league *domain.LeagueState, p *domain.TradeProposal, holdUserConstant bool) ([]*candidate, error) {
	inPlayers := make(map[int64]bool)
	inPicks := make(map[int64]bool)
	for side := range p.Sides {
		for _, id := range p.Sides[side].PlayerIDs {
			inPlayers[id] = true
		}
		for _, id := range p.Sides[side].PickIDs {
			inPicks[id] = true
		}
	}

	var out []*candidate
	for side := range p.Sides {
		if side == userSide && holdUserConstant {
			continue
		}
		teamID := p.Sides[side].TeamID

		players, err := n.players.GetByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("enumerate roster: %w", err)
		}
		for _, pl := range players {
			if inPlayers[pl.PlayerID] || UntradableReason(pl, league) != "" {
				continue
			}
			out = append(out, &candidate{side: side, playerID: pl.PlayerID})
		}

		if side == aiSide {
			picks, err := n.picks.GetByTeam(ctx, teamID)
			if err != nil {
				return nil, fmt.Errorf("enumerate picks: %w", err)
			}
			for _, dp := range picks {
				if inPicks[dp.PickID] {
					continue
				}
				out = append(out, &candidate{side: side, pickID: dp.PickID})
			}
		}
	}
	return out, nil
}

// scoreCandidates evaluates every candidate's resulting delta. Each
// evaluation reads its own snapshot of records and writes nothing, so
// the fan-out runs concurrently.
func (n *Negotiator) scoreCandidates(ctx context.Context, league *domain.LeagueState, p *domain.TradeProposal, candidates []*candidate) error {
	var (
		wg   sync.WaitGroup
		sem  = make(chan struct{}, maxParallelEvals)
		mu   sync.Mutex
		errs error
	)

	for _, c := range candidates {
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			trial := p.Clone()
			commitCandidate(trial, c)
			dv, err := n.eval.ValueChange(ctx, league, trial.Sides[aiSide].TeamID, ProposalSwap(trial, aiSide))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = errors.Join(errs, err)
				return
			}
			c.dv = dv
		}(c)
	}
	wg.Wait()

	observability.DefaultMetrics.CandidatesScored.Add(float64(len(candidates)))
	return errs
}

// selectCandidate picks the asset that moves the delta the least while
// keeping it non-negative: the smallest dv still >= 0, or the best
// candidate overall when every addition leaves the trade unfavorable.
func selectCandidate(candidates []*candidate) *candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dv > candidates[j].dv
	})

	j := 0
	for j < len(candidates) && candidates[j].dv >= 0 {
		j++
	}
	if j > 0 {
		j--
	}
	return candidates[j]
}

func commitCandidate(p *domain.TradeProposal, c *candidate) {
	if c.playerID != 0 {
		p.Sides[c.side].PlayerIDs = append(p.Sides[c.side].PlayerIDs, c.playerID)
	} else {
		p.Sides[c.side].PickIDs = append(p.Sides[c.side].PickIDs, c.pickID)
	}
}

// MakeItWorkTrade is the "what would make this work?" flow: run the
// search with both sides open and wrap the outcome in the AI GM's voice.
// Successful counter-offers replace the current negotiation.
func (n *Negotiator) MakeItWorkTrade(ctx context.Context, league *domain.LeagueState, proposal *domain.TradeProposal) (string, *domain.TradeProposal, error) {
	team, err := n.teams.GetByID(ctx, proposal.Sides[aiSide].TeamID)
	if err != nil {
		return "", nil, fmt.Errorf("load negotiating team: %w", err)
	}

	final, _, ok, err := n.MakeItWork(ctx, league, proposal, false)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return fmt.Sprintf("%s GM: \"I can't afford to give up so much.\"", team.Region), nil, nil
	}

	if n.trades != nil {
		if err := n.trades.Put(ctx, final); err != nil {
			return "", nil, fmt.Errorf("save counter-offer: %w", err)
		}
	}

	// A counter-offer the AI likes can still trip the cap rules; hand it
	// back with the caveat rather than a clean yes.
	if n.validator != nil {
		summary, err := n.validator.Summarize(ctx, league, final)
		if err != nil {
			return "", nil, fmt.Errorf("summarize counter-offer: %w", err)
		}
		if summary.Warning != "" {
			return fmt.Sprintf("%s GM: \"Something like this would work if you can figure out how to get it done without breaking the salary cap rules.\"", team.Region), final, nil
		}
	}
	return fmt.Sprintf("%s GM: \"How does this sound?\"", team.Region), final, nil
}
