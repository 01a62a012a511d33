// Package team implements the team-side collaborators the trade engine
// consumes: payroll totals, roster auto-sorting, and strategy updates.
package team

import (
	"context"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// Payrolls computes team payrolls from player contracts.
type Payrolls struct {
	players storage.PlayerStore
}

// NewPayrolls creates a payroll provider backed by a player store.
func NewPayrolls(players storage.PlayerStore) *Payrolls {
	return &Payrolls{players: players}
}

// Payroll returns a team's total committed salary for the current season,
// in thousands, along with the individual contracts.
func (p *Payrolls) Payroll(ctx context.Context, teamID int64) (float64, []domain.Contract, error) {
	players, err := p.players.GetByTeam(ctx, teamID)
	if err != nil {
		return 0, nil, fmt.Errorf("load roster for payroll: %w", err)
	}

	var total float64
	contracts := make([]domain.Contract, 0, len(players))
	for _, pl := range players {
		total += pl.Contract.Amount
		contracts = append(contracts, pl.Contract)
	}
	return total, contracts, nil
}
