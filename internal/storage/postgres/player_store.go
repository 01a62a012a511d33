package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// PlayerStore implements storage.PlayerStore using PostgreSQL.
type PlayerStore struct {
	pool *Pool
}

// NewPlayerStore creates a new PlayerStore.
func NewPlayerStore(pool *Pool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PlayerStore = (*PlayerStore)(nil)

const playerColumns = `
	player_id, team_id, name, born_year, value, value_with_contract,
	skills, contract_amount, contract_exp_year, worth_amount, worth_exp_year,
	injury_type, injury_games_remaining, games_until_tradable,
	draft_year, roster_order, stats
`

// Insert adds a new player. Returns ErrDuplicateKey if player_id exists.
func (s *PlayerStore) Insert(ctx context.Context, p *domain.PlayerRecord) error {
	if p == nil || p.PlayerID == 0 {
		return storage.ErrInvalidInput
	}

	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return fmt.Errorf("marshal player stats: %w", err)
	}

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err = s.pool.Exec(ctx, query,
		p.PlayerID, p.TeamID, p.Name, p.BornYear, p.Value, p.ValueWithContract,
		skillStrings(p.Skills), p.Contract.Amount, p.Contract.ExpYear,
		p.MarketWorth.Amount, p.MarketWorth.ExpYear,
		p.Injury.Type, p.Injury.GamesRemaining, p.GamesUntilTradable,
		p.DraftYear, p.RosterOrder, stats,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

// Update overwrites an existing player. Returns ErrNotFound if missing.
func (s *PlayerStore) Update(ctx context.Context, p *domain.PlayerRecord) error {
	if p == nil || p.PlayerID == 0 {
		return storage.ErrInvalidInput
	}

	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return fmt.Errorf("marshal player stats: %w", err)
	}

	query := `
		UPDATE players SET
			team_id = $2, name = $3, born_year = $4, value = $5,
			value_with_contract = $6, skills = $7, contract_amount = $8,
			contract_exp_year = $9, worth_amount = $10, worth_exp_year = $11,
			injury_type = $12, injury_games_remaining = $13,
			games_until_tradable = $14, draft_year = $15, roster_order = $16,
			stats = $17
		WHERE player_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		p.PlayerID, p.TeamID, p.Name, p.BornYear, p.Value, p.ValueWithContract,
		skillStrings(p.Skills), p.Contract.Amount, p.Contract.ExpYear,
		p.MarketWorth.Amount, p.MarketWorth.ExpYear,
		p.Injury.Type, p.Injury.GamesRemaining, p.GamesUntilTradable,
		p.DraftYear, p.RosterOrder, stats,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetByID retrieves a player by ID. Returns ErrNotFound if not exists.
func (s *PlayerStore) GetByID(ctx context.Context, playerID int64) (*domain.PlayerRecord, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	row := s.pool.QueryRow(ctx, query, playerID)
	p, err := scanPlayer(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	return p, nil
}

// GetByTeam retrieves all players on a team, ordered by roster_order ASC.
func (s *PlayerStore) GetByTeam(ctx context.Context, teamID int64) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE team_id = $1
		ORDER BY roster_order ASC, player_id ASC
	`

	rows, err := s.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("get players by team: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// GetByDraftYear retrieves all players of a draft class, any team,
// including undrafted prospects.
func (s *PlayerStore) GetByDraftYear(ctx context.Context, season int) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE draft_year = $1
		ORDER BY value DESC, player_id ASC
	`

	rows, err := s.pool.Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("get players by draft year: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// scanPlayer scans a single row into a PlayerRecord.
func scanPlayer(row pgx.Row) (*domain.PlayerRecord, error) {
	var p domain.PlayerRecord
	var skills []string
	var stats []byte

	err := row.Scan(
		&p.PlayerID, &p.TeamID, &p.Name, &p.BornYear, &p.Value, &p.ValueWithContract,
		&skills, &p.Contract.Amount, &p.Contract.ExpYear,
		&p.MarketWorth.Amount, &p.MarketWorth.ExpYear,
		&p.Injury.Type, &p.Injury.GamesRemaining, &p.GamesUntilTradable,
		&p.DraftYear, &p.RosterOrder, &stats,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = skillTags(skills)
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &p.Stats); err != nil {
			return nil, fmt.Errorf("unmarshal player stats: %w", err)
		}
	}
	return &p, nil
}

// scanPlayers scans multiple rows into a slice of PlayerRecord.
func scanPlayers(rows pgx.Rows) ([]*domain.PlayerRecord, error) {
	var players []*domain.PlayerRecord

	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player rows: %w", err)
	}

	return players, nil
}

func skillStrings(skills []domain.SkillTag) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}

func skillTags(skills []string) []domain.SkillTag {
	if len(skills) == 0 {
		return nil
	}
	out := make([]domain.SkillTag, len(skills))
	for i, s := range skills {
		out[i] = domain.SkillTag(s)
	}
	return out
}
