// Package history implements the processed-terms store on SQLite. A term
// recorded here was delivered to the user once and is never re-translated.
package history

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/kindleword/internal/domain"
)

// Repo provides per-user term history persistence.
type Repo struct {
	db *sql.DB
}

// New creates a history repository over an open database.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Processed returns the set of lowercase terms already delivered to the
// user.
func (r *Repo) Processed(ctx context.Context, userID int64) (map[string]struct{}, error) {
	query, args, err := sq.Select("term").
		From("user_terms").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history: build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	terms := make(map[string]struct{})
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		terms[term] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate: %w", err)
	}

	return terms, nil
}

// Add records terms as processed for the user. Terms are stored lowercase;
// duplicate inserts are no-ops, so Add is idempotent.
func (r *Repo) Add(ctx context.Context, userID int64, terms []string) error {
	if len(terms) == 0 {
		return nil
	}

	builder := sq.Insert("user_terms").
		Columns("user_id", "term").
		Suffix("ON CONFLICT (user_id, term) DO NOTHING")
	for _, term := range terms {
		builder = builder.Values(userID, domain.NormalizeTerm(term))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("history: build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}
