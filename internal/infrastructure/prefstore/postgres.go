package prefstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kzleague/league-site/internal/domain/preference"
	qb "github.com/kzleague/league-site/internal/platform/querybuilder"
)

const preferencesTable = "visitor_preferences"

type visitorPreferenceTableModel struct {
	VisitorID    string         `db:"visitor_id"`
	Language     sql.NullString `db:"language"`
	TournamentID sql.NullString `db:"tournament_id"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type visitorPreferenceUpsertModel struct {
	VisitorID    string  `db:"visitor_id"`
	Language     *string `db:"language"`
	TournamentID *string `db:"tournament_id"`
}

type PostgresStorage struct {
	db *sqlx.DB
}

func NewPostgresStorage(db *sqlx.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Load(ctx context.Context, visitorID string) (preference.Stored, bool, error) {
	query, args, err := qb.Select("visitor_id", "language", "tournament_id", "updated_at").
		From(preferencesTable).
		Where(qb.Eq("visitor_id", visitorID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return preference.Stored{}, false, fmt.Errorf("build get visitor preferences query: %w", err)
	}

	var row visitorPreferenceTableModel
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return preference.Stored{}, false, nil
		}
		return preference.Stored{}, false, fmt.Errorf("get visitor preferences: %w", err)
	}

	return preference.Stored{
		Language:     strings.TrimSpace(row.Language.String),
		TournamentID: strings.TrimSpace(row.TournamentID.String),
		UpdatedAt:    row.UpdatedAt,
	}, true, nil
}

// Save upserts the visitor row. Empty fields keep the stored column value.
func (s *PostgresStorage) Save(ctx context.Context, visitorID string, value preference.Stored) error {
	model := visitorPreferenceUpsertModel{
		VisitorID:    visitorID,
		Language:     optionalString(value.Language),
		TournamentID: optionalString(value.TournamentID),
	}

	query, args, err := qb.UpsertModel(preferencesTable, model, []string{"visitor_id"}, "updated_at = NOW()")
	if err != nil {
		return fmt.Errorf("build upsert visitor preferences query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert visitor preferences: %w", err)
	}
	return nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
