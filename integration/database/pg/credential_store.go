package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionauth/core/auth"
)

// querier is satisfied by both pgxpool.Pool and pgx.Tx, letting stores
// participate in a caller-managed transaction via WithTx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const credentialColumns = `id, email, password_hash, status, created_at, updated_at`

// CredentialStore is a PostgreSQL-backed auth.CredentialStore. Email
// uniqueness is enforced by the credentials_email_idx index; violations
// surface as insert errors.
type CredentialStore struct {
	pool *pgxpool.Pool
}

// NewCredentialStore creates a credential store over the given pool.
func NewCredentialStore(pool *pgxpool.Pool) *CredentialStore {
	return &CredentialStore{pool: pool}
}

func (s *CredentialStore) q(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// FindByID looks up a credential by its primary key.
func (s *CredentialStore) FindByID(ctx context.Context, id uuid.UUID) (auth.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1`
	return scanCredential(s.q(ctx).QueryRow(ctx, query, id))
}

// FindByEmail looks up a credential by exact email match. Case sensitivity
// follows the column collation; no normalization happens here.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (auth.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE email = $1`
	return scanCredential(s.q(ctx).QueryRow(ctx, query, email))
}

// FindByEmailAndHash looks up a credential matching both email and password
// hash exactly.
func (s *CredentialStore) FindByEmailAndHash(ctx context.Context, email, passwordHash string) (auth.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE email = $1 AND password_hash = $2`
	return scanCredential(s.q(ctx).QueryRow(ctx, query, email, passwordHash))
}

// Insert persists a new credential row.
func (s *CredentialStore) Insert(ctx context.Context, credential auth.Credential) error {
	query := `INSERT INTO credentials (` + credentialColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.q(ctx).Exec(ctx, query,
		credential.ID,
		credential.Email,
		credential.PasswordHash,
		string(credential.Status),
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// scanCredential maps a row onto the domain record, translating empty
// results into the store-level miss signal.
func scanCredential(row pgx.Row) (auth.Credential, error) {
	var (
		credential auth.Credential
		status     string
	)
	err := row.Scan(
		&credential.ID,
		&credential.Email,
		&credential.PasswordHash,
		&status,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Credential{}, fmt.Errorf("credential: %w", auth.ErrNotFound)
		}
		return auth.Credential{}, fmt.Errorf("scan credential: %w", err)
	}
	credential.Status = auth.Status(status)
	return credential, nil
}
