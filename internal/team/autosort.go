package team

import (
	"context"
	"fmt"
	"sort"

	"frontoffice/internal/storage"
)

// RosterSorter re-sorts a team's active lineup. The trade executor calls
// it after an AI team's roster changes.
type RosterSorter struct {
	players storage.PlayerStore
}

// NewRosterSorter creates a sorter backed by a player store.
func NewRosterSorter(players storage.PlayerStore) *RosterSorter {
	return &RosterSorter{players: players}
}

// AutoSort orders a team's players by value descending and persists the
// resulting roster positions.
func (s *RosterSorter) AutoSort(ctx context.Context, teamID int64) error {
	players, err := s.players.GetByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("load roster for sort: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Value > players[j].Value
	})

	for i, p := range players {
		if p.RosterOrder == i {
			continue
		}
		p.RosterOrder = i
		if err := s.players.Update(ctx, p); err != nil {
			return fmt.Errorf("update roster order: %w", err)
		}
	}
	return nil
}
