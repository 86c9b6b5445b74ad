// Package postgres looks up code translations in a concept_map table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/sirupsen/logrus"
)

type queryable interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const (
	sqlFlavor = sqlbuilder.PostgreSQL
)

type Repository struct {
	queryable
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// LookupError reports a database failure while translating a code.
type LookupError struct {
	Code         string
	SourceSystem string
	TargetSystem string
	Err          error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up %s from %s to %s: %s", e.Code, e.SourceSystem, e.TargetSystem, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Lookup returns the target code mapped from code. An empty string with a nil
// error means the table holds no mapping.
func (r *Repository) Lookup(ctx context.Context, code, sourceSystem, targetSystem string) (string, error) {
	sb := sqlFlavor.NewSelectBuilder()
	sb.Select("target_code").From("concept_map")
	sb.Where(
		sb.Equal("source_system", sourceSystem),
		sb.Equal("source_code", code),
		sb.Equal("target_system", targetSystem),
	)
	sb.Limit(1)

	query, args := sb.Build()
	var target string
	if err := r.QueryRowContext(ctx, query, args...).Scan(&target); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", &LookupError{code, sourceSystem, targetSystem, err}
	}
	return target, nil
}

// Translator exposes a Repository through the terminology Translate contract.
// Lookup errors are logged and reported as a miss.
type Translator struct {
	Repository *Repository
	Timeout    time.Duration
	Logger     logrus.FieldLogger
}

func (t *Translator) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	ctx := context.Background()
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	target, err := t.Repository.Lookup(ctx, code, sourceSystem, targetSystem)
	if err != nil {
		t.Logger.Error(err)
		return "", false
	}
	return target, target != ""
}
