package trade

import (
	"context"
	"errors"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// UntradableReason reports why a player cannot be traded right now, or
// "" when tradable. Expired contracts are frozen between the end of the
// playoffs and free agency; recently acquired players sit out a cooldown.
func UntradableReason(p *domain.PlayerRecord, league *domain.LeagueState) string {
	if p.Contract.ExpYear <= league.Season &&
		league.Phase > domain.PhasePlayoffs && league.Phase < domain.PhaseFreeAgency {
		return "Cannot trade expired contracts"
	}
	if p.GamesUntilTradable > 0 {
		return fmt.Sprintf("Cannot trade recently acquired player for %d more games", p.GamesUntilTradable)
	}
	return ""
}

// ValidatorOptions configures a Validator.
type ValidatorOptions struct {
	Players  storage.PlayerStore
	Picks    storage.DraftPickStore
	Teams    storage.TeamStore
	Payrolls PayrollProvider
}

// Validator sanitizes proposals against current ownership and produces
// display summaries. It never mutates stored records.
type Validator struct {
	players  storage.PlayerStore
	picks    storage.DraftPickStore
	teams    storage.TeamStore
	payrolls PayrollProvider
}

// NewValidator creates a Validator, validating required collaborators.
func NewValidator(opts ValidatorOptions) (*Validator, error) {
	if opts.Players == nil || opts.Picks == nil || opts.Teams == nil {
		return nil, errors.New("validator requires player, pick, and team stores")
	}
	if opts.Payrolls == nil {
		return nil, errors.New("validator requires a payroll provider")
	}
	return &Validator{
		players:  opts.Players,
		picks:    opts.Picks,
		teams:    opts.Teams,
		payrolls: opts.Payrolls,
	}, nil
}

// Sanitize drops identifiers a side's team no longer owns. Stale entries
// are normal after any roster move elsewhere in the league; the proposal
// is corrected silently rather than rejected.
func (v *Validator) Sanitize(ctx context.Context, proposal *domain.TradeProposal) (*domain.TradeProposal, error) {
	out := proposal.Clone()

	for side := range out.Sides {
		teamID := out.Sides[side].TeamID

		roster, err := v.players.GetByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("sanitize roster: %w", err)
		}
		owned := make(map[int64]bool, len(roster))
		for _, p := range roster {
			owned[p.PlayerID] = true
		}
		out.Sides[side].PlayerIDs = keepOwned(out.Sides[side].PlayerIDs, owned)

		picks, err := v.picks.GetByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("sanitize picks: %w", err)
		}
		ownedPicks := make(map[int64]bool, len(picks))
		for _, dp := range picks {
			ownedPicks[dp.PickID] = true
		}
		out.Sides[side].PickIDs = keepOwned(out.Sides[side].PickIDs, ownedPicks)
	}
	return out, nil
}

func keepOwned(ids []int64, owned map[int64]bool) []int64 {
	kept := ids[:0]
	for _, id := range ids {
		if owned[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

// SummarySide is one team's half of a display summary.
type SummarySide struct {
	TeamID       int64
	Name         string
	Players      []string
	Picks        []string
	Untradable   []string // reasons, parallel to nothing; empty when clean
	SalaryOut    float64  // outgoing salary this season, thousands
	PayrollAfter float64
}

// Summary is the display view of a proposal, with a non-empty Warning
// when a cap rule would block automatic acceptance.
type Summary struct {
	Sides   [2]SummarySide
	Warning string
}

// Summarize totals each side's outgoing salary and post-trade payroll
// and flags over-cap teams taking back more than 125% of what they send
// out. Display only; nothing is persisted.
func (v *Validator) Summarize(ctx context.Context, league *domain.LeagueState, proposal *domain.TradeProposal) (*Summary, error) {
	var sum Summary

	for side := range proposal.Sides {
		s := &sum.Sides[side]
		s.TeamID = proposal.Sides[side].TeamID

		team, err := v.teams.GetByID(ctx, s.TeamID)
		if err != nil {
			return nil, fmt.Errorf("summarize team: %w", err)
		}
		s.Name = team.Region + " " + team.Name

		for _, id := range proposal.Sides[side].PlayerIDs {
			p, err := v.players.GetByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("summarize player: %w", err)
			}
			s.Players = append(s.Players, p.Name)
			s.SalaryOut += p.Contract.Amount
			if reason := UntradableReason(p, league); reason != "" {
				s.Untradable = append(s.Untradable, fmt.Sprintf("%s: %s", p.Name, reason))
			}
		}

		for _, id := range proposal.Sides[side].PickIDs {
			dp, err := v.picks.GetByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("summarize pick: %w", err)
			}
			desc, err := v.DescribePick(ctx, dp)
			if err != nil {
				return nil, err
			}
			s.Picks = append(s.Picks, desc)
		}
	}

	for side := range proposal.Sides {
		s := &sum.Sides[side]
		other := &sum.Sides[1-side]

		payroll, _, err := v.payrolls.Payroll(ctx, s.TeamID)
		if err != nil {
			return nil, fmt.Errorf("summarize payroll: %w", err)
		}
		s.PayrollAfter = payroll - s.SalaryOut + other.SalaryOut

		if payroll > league.SalaryCap && other.SalaryOut > 1.25*s.SalaryOut {
			sum.Warning = fmt.Sprintf("The %s are over the salary cap and cannot take back more than 125%% of the salary they send out.", s.Name)
		}
	}

	return &sum, nil
}

// DescribePick renders a pick for display, e.g. "2026 1st round pick (BOS)".
func (v *Validator) DescribePick(ctx context.Context, dp *domain.DraftPickRecord) (string, error) {
	original, err := v.teams.GetByID(ctx, dp.OriginalTeamID)
	if err != nil {
		return "", fmt.Errorf("describe pick: %w", err)
	}
	return fmt.Sprintf("%d %s round pick (%s)", dp.Season, ordinal(dp.Round), original.Abbrev), nil
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
