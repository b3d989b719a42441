package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	dbTimeout = 5 * time.Second

	uniqueViolation = "23505"
	slugConstraint  = "url_lists_slug_key"
)

func isSlugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == slugConstraint
}
