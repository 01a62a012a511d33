package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// TeamStore implements storage.TeamStore using PostgreSQL.
type TeamStore struct {
	pool *Pool
}

// NewTeamStore creates a new TeamStore.
func NewTeamStore(pool *Pool) *TeamStore {
	return &TeamStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TeamStore = (*TeamStore)(nil)

// Insert adds a new team. Returns ErrDuplicateKey if team_id exists.
func (s *TeamStore) Insert(ctx context.Context, t *domain.TeamRecord) error {
	if t == nil || t.TeamID == 0 {
		return storage.ErrInvalidInput
	}

	seasons, err := json.Marshal(t.Seasons)
	if err != nil {
		return fmt.Errorf("marshal team seasons: %w", err)
	}

	query := `
		INSERT INTO teams (team_id, region, name, abbrev, strategy, seasons)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = s.pool.Exec(ctx, query,
		t.TeamID, t.Region, t.Name, t.Abbrev, string(t.Strategy), seasons,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

// Update overwrites an existing team. Returns ErrNotFound if missing.
func (s *TeamStore) Update(ctx context.Context, t *domain.TeamRecord) error {
	if t == nil || t.TeamID == 0 {
		return storage.ErrInvalidInput
	}

	seasons, err := json.Marshal(t.Seasons)
	if err != nil {
		return fmt.Errorf("marshal team seasons: %w", err)
	}

	query := `
		UPDATE teams SET region = $2, name = $3, abbrev = $4, strategy = $5, seasons = $6
		WHERE team_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		t.TeamID, t.Region, t.Name, t.Abbrev, string(t.Strategy), seasons,
	)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetByID retrieves a team by ID. Returns ErrNotFound if not exists.
func (s *TeamStore) GetByID(ctx context.Context, teamID int64) (*domain.TeamRecord, error) {
	query := `
		SELECT team_id, region, name, abbrev, strategy, seasons
		FROM teams
		WHERE team_id = $1
	`

	row := s.pool.QueryRow(ctx, query, teamID)
	t, err := scanTeam(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	return t, nil
}

// GetAll retrieves every team, ordered by team_id ASC.
func (s *TeamStore) GetAll(ctx context.Context) ([]*domain.TeamRecord, error) {
	query := `
		SELECT team_id, region, name, abbrev, strategy, seasons
		FROM teams
		ORDER BY team_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.TeamRecord
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team rows: %w", err)
	}

	return teams, nil
}

// scanTeam scans a single row into a TeamRecord.
func scanTeam(row pgx.Row) (*domain.TeamRecord, error) {
	var t domain.TeamRecord
	var strategy string
	var seasons []byte

	err := row.Scan(&t.TeamID, &t.Region, &t.Name, &t.Abbrev, &strategy, &seasons)
	if err != nil {
		return nil, err
	}

	t.Strategy = domain.Strategy(strategy)
	if len(seasons) > 0 {
		if err := json.Unmarshal(seasons, &t.Seasons); err != nil {
			return nil, fmt.Errorf("unmarshal team seasons: %w", err)
		}
	}
	return &t, nil
}
