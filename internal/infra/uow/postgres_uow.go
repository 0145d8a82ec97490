package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/infra/repository"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy bounds how often a write transaction is replayed after a
// serialization failure or deadlock.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	retry  retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, logger: logger.With("component", "uow"), retry: defaultRetry}
}

// Within runs fn in a read-committed transaction. The overlap check and the
// insert share it, so a busy place is caught before commit.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if !shouldRetry(err, attempt, u.retry.maxRetries) {
			break
		}

		wait := calculateBackoff(attempt, u.retry.base)
		u.logger.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if isRetryableError(err) {
		u.logger.Error("transaction failed after max retries", "attempts", u.retry.maxRetries+1, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// WithinReadOnly gives fn a repeatable-read snapshot across tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

// attempt owns one transaction so the rollback never outlives its iteration.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, newPgTx(pgxTx)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", err.Error())
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if span := int64(wait / 5); span > 0 {
		wait += time.Duration(rand.Int64N(span))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	placeRepo       shared.PlaceRepository
	reservationRepo shared.ReservationRepository
	eventRepo       shared.EventRepository
	assignmentRepo  shared.AssignmentRepository
	clubRepo        shared.ClubRepository
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Places() shared.PlaceRepository {
	if t.placeRepo == nil {
		t.placeRepo = repository.NewPlaceRepository(t.dbtx)
	}
	return t.placeRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Assignments() shared.AssignmentRepository {
	if t.assignmentRepo == nil {
		t.assignmentRepo = repository.NewAssignmentRepository(t.dbtx)
	}
	return t.assignmentRepo
}

func (t *pgTx) Clubs() shared.ClubRepository {
	if t.clubRepo == nil {
		t.clubRepo = repository.NewClubRepository(t.dbtx)
	}
	return t.clubRepo
}

func (t *pgTx) Catalog(kind catalog.Kind, owner *uuid.UUID) (shared.CatalogStore, error) {
	return repository.NewCatalogRepository(t.dbtx, kind, owner)
}
