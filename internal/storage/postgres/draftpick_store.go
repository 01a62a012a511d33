package postgres

import (
	"context"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// DraftPickStore implements storage.DraftPickStore using PostgreSQL.
type DraftPickStore struct {
	pool *Pool
}

// NewDraftPickStore creates a new DraftPickStore.
func NewDraftPickStore(pool *Pool) *DraftPickStore {
	return &DraftPickStore{pool: pool}
}

// Compile-time interface check.
var _ storage.DraftPickStore = (*DraftPickStore)(nil)

// Insert adds a new pick. Returns ErrDuplicateKey if pick_id exists.
func (s *DraftPickStore) Insert(ctx context.Context, dp *domain.DraftPickRecord) error {
	if dp == nil || dp.PickID == 0 {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO draft_picks (pick_id, team_id, original_team_id, season, round)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query,
		dp.PickID, dp.TeamID, dp.OriginalTeamID, dp.Season, dp.Round,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert draft pick: %w", err)
	}
	return nil
}

// Update overwrites an existing pick. Returns ErrNotFound if missing.
func (s *DraftPickStore) Update(ctx context.Context, dp *domain.DraftPickRecord) error {
	if dp == nil || dp.PickID == 0 {
		return storage.ErrInvalidInput
	}

	query := `
		UPDATE draft_picks SET team_id = $2, original_team_id = $3, season = $4, round = $5
		WHERE pick_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		dp.PickID, dp.TeamID, dp.OriginalTeamID, dp.Season, dp.Round,
	)
	if err != nil {
		return fmt.Errorf("update draft pick: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetByID retrieves a pick by ID. Returns ErrNotFound if not exists.
func (s *DraftPickStore) GetByID(ctx context.Context, pickID int64) (*domain.DraftPickRecord, error) {
	query := `
		SELECT pick_id, team_id, original_team_id, season, round
		FROM draft_picks
		WHERE pick_id = $1
	`

	var dp domain.DraftPickRecord
	err := s.pool.QueryRow(ctx, query, pickID).Scan(
		&dp.PickID, &dp.TeamID, &dp.OriginalTeamID, &dp.Season, &dp.Round,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get draft pick by id: %w", err)
	}
	return &dp, nil
}

// GetByTeam retrieves all picks currently owned by a team, ordered by
// (season, round) ASC.
func (s *DraftPickStore) GetByTeam(ctx context.Context, teamID int64) ([]*domain.DraftPickRecord, error) {
	query := `
		SELECT pick_id, team_id, original_team_id, season, round
		FROM draft_picks
		WHERE team_id = $1
		ORDER BY season ASC, round ASC, pick_id ASC
	`

	rows, err := s.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("get draft picks by team: %w", err)
	}
	defer rows.Close()

	var picks []*domain.DraftPickRecord
	for rows.Next() {
		var dp domain.DraftPickRecord
		err := rows.Scan(&dp.PickID, &dp.TeamID, &dp.OriginalTeamID, &dp.Season, &dp.Round)
		if err != nil {
			return nil, fmt.Errorf("scan draft pick row: %w", err)
		}
		picks = append(picks, &dp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draft pick rows: %w", err)
	}

	return picks, nil
}
