package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Общие ошибки репозитория.
var (
	ErrBuildQuery   = errors.New("failed to build SQL query")
	ErrExecuteQuery = errors.New("failed to execute query")
	ErrScanResult   = errors.New("failed to scan result")
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
