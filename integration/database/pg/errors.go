package pg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFailedToOpenDBConnection is returned when the pool cannot be established.
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	// ErrEmptyConnectionString is returned when no connection string is configured.
	ErrEmptyConnectionString = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	// ErrHealthcheckFailed is returned when the connection ping fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")
	// ErrFailedToParseDBConfig is returned when the connection string is malformed.
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")
	// ErrFailedToApplyMigrations is returned when goose cannot bring the schema up to date.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
)

// PostgreSQL error codes relevant to constraint handling.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsNotFoundError reports whether err represents an empty query result.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation,
// e.g. a duplicate email or a colliding (auth_hash, adapter) pair.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation, e.g. a session insert referencing a deleted credential.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsTxClosedError reports whether err comes from using an already-closed
// transaction.
func IsTxClosedError(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed) ||
		(err != nil && strings.Contains(err.Error(), "tx is closed"))
}
