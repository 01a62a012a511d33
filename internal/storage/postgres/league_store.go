package postgres

import (
	"context"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// LeagueStore implements storage.LeagueStore using PostgreSQL. The
// league state is a single row.
type LeagueStore struct {
	pool *Pool
}

// NewLeagueStore creates a new LeagueStore.
func NewLeagueStore(pool *Pool) *LeagueStore {
	return &LeagueStore{pool: pool}
}

// Compile-time interface check.
var _ storage.LeagueStore = (*LeagueStore)(nil)

// Get retrieves the league state. Returns ErrNotFound before first Set.
func (s *LeagueStore) Get(ctx context.Context) (*domain.LeagueState, error) {
	query := `
		SELECT season, phase, user_team_id, num_teams, salary_cap, days_left_in_free_agency
		FROM league_state
		WHERE id = 1
	`

	var l domain.LeagueState
	var phase int
	err := s.pool.QueryRow(ctx, query).Scan(
		&l.Season, &phase, &l.UserTeamID, &l.NumTeams, &l.SalaryCap, &l.DaysLeftInFreeAgency,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get league state: %w", err)
	}
	l.Phase = domain.Phase(phase)
	return &l, nil
}

// Set saves the league state.
func (s *LeagueStore) Set(ctx context.Context, l *domain.LeagueState) error {
	if l == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO league_state (id, season, phase, user_team_id, num_teams, salary_cap, days_left_in_free_agency)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			season = EXCLUDED.season,
			phase = EXCLUDED.phase,
			user_team_id = EXCLUDED.user_team_id,
			num_teams = EXCLUDED.num_teams,
			salary_cap = EXCLUDED.salary_cap,
			days_left_in_free_agency = EXCLUDED.days_left_in_free_agency
	`

	_, err := s.pool.Exec(ctx, query,
		l.Season, int(l.Phase), l.UserTeamID, l.NumTeams, l.SalaryCap, l.DaysLeftInFreeAgency,
	)
	if err != nil {
		return fmt.Errorf("set league state: %w", err)
	}
	return nil
}
