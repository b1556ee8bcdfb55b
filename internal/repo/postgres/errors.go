package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"pastebin/internal/apperr"
)

// uniqueViolation is the postgres error class for unique constraint hits.
const uniqueViolation = "23505"

// classify maps a storage failure to its wire-visible form at the point of
// detection: absent rows are 404 "data not found", unique violations are
// 400 "duplicate {field}", anything else is a 500 with the caller's
// operation message.
func classify(err error, table, op string) *apperr.Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("data not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.BadRequest("duplicate " + constraintField(pgErr.ConstraintName, table))
	}
	return apperr.InternalServerError(op)
}

// constraintField extracts the column name from a unique constraint
// identifier. Postgres names column constraints "{table}_{column}_key" and
// gorm names its unique indexes "idx_{table}_{column}"; anything that fits
// neither convention falls back to "data". Best-effort string matching, not
// a parser.
func constraintField(constraint, table string) string {
	name := strings.TrimSuffix(constraint, "_key")
	for _, prefix := range []string{"idx_" + table + "_", table + "_"} {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return name[len(prefix):]
		}
	}
	return "data"
}
