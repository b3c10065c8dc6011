// Package pg provides PostgreSQL persistence for the authentication core:
// connection pool management, embedded schema migrations, and pgx-backed
// implementations of auth.CredentialStore and auth.SessionStore.
//
// # Connection Management
//
// Connect establishes a verified pgxpool with retry logic for transient
// startup failures:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, logger); err != nil {
//		log.Fatal(err)
//	}
//
//	credentials := pg.NewCredentialStore(pool)
//	sessions := pg.NewSessionStore(pool)
//
// # Constraints
//
// The migrated schema enforces the invariants the core relies on: unique
// email per credential, unique (auth_hash, adapter) per session, and
// cascade deletion of sessions when their credential is removed.
// Violations surface as insert errors; classify them with
// IsDuplicateKeyError and IsForeignKeyViolationError.
//
// # Transactions
//
// Stores participate in a caller-managed transaction when one is attached
// to the context:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx) // Safe even after commit
//
//	ctx = pg.WithTx(ctx, tx)
//	// ... store calls within the same transaction ...
//	return tx.Commit(ctx)
package pg
