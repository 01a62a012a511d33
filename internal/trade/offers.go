package trade

import (
	"context"
	"sort"
	"sync"
	"time"

	"frontoffice/internal/domain"
	"frontoffice/internal/observability"
)

// Offer is one AI team's acceptable package for the assets the user put
// on the block.
type Offer struct {
	TeamID   int64
	Proposal *domain.TradeProposal
	DV       float64
}

// AskForOffers shops the user's side of a trade to every AI team at
// once: one negotiation search per team, user side held constant. Teams
// whose search fails, errors, or runs past the timeout are simply
// omitted; having no takers is a normal outcome.
func (n *Negotiator) AskForOffers(ctx context.Context, league *domain.LeagueState, block domain.TradeSide, timeout time.Duration) ([]Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	teams, err := n.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		offers []Offer
	)

	for _, t := range teams {
		if t.TeamID == league.UserTeamID || t.TeamID == block.TeamID {
			continue
		}
		observability.DefaultMetrics.OffersSolicited.Inc()

		wg.Add(1)
		go func(teamID int64) {
			defer wg.Done()

			proposal := &domain.TradeProposal{Sides: [2]domain.TradeSide{
				{
					TeamID:    block.TeamID,
					PlayerIDs: append([]int64(nil), block.PlayerIDs...),
					PickIDs:   append([]int64(nil), block.PickIDs...),
				},
				{TeamID: teamID},
			}}

			final, dv, ok, err := n.MakeItWork(ctx, league, proposal, true)
			if err != nil || !ok {
				return
			}

			mu.Lock()
			offers = append(offers, Offer{TeamID: teamID, Proposal: final, DV: dv})
			mu.Unlock()
			observability.DefaultMetrics.OffersReturned.Inc()
		}(t.TeamID)
	}
	wg.Wait()

	sort.Slice(offers, func(i, j int) bool { return offers[i].TeamID < offers[j].TeamID })
	return offers, nil
}
