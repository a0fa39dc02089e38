package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.Storage = (*PostgresStorage)(nil)

const (
	storagePingTimeout         = 5 * time.Second
	storageConnectionsLifetime = 30 * time.Minute
	storageConnectionsIdleTime = 2 * time.Minute
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

// Pool - подмножество pgxpool.Pool, которое нужно хранилищу.
// В тестах его реализует pgxmock.
type Pool interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier общий для пула и транзакции
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStorage struct {
	pool Pool
}

// NewStorage открывает пул соединений и проверяет доступность базы
func NewStorage(ctx context.Context, dsn string, minConns, maxConns int) (*PostgresStorage, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	poolCfg.MinConns = int32(minConns)
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MaxConnLifetime = storageConnectionsLifetime
	poolCfg.MaxConnIdleTime = storageConnectionsIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	s := New(pool)
	if err := s.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func New(pool Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

type keyTxType int

const (
	keyTxValue keyTxType = iota
)

// WithinTx выполняет fn в транзакции. Транзакция передается через контекст,
// все методы хранилища, вызванные с этим контекстом, работают внутри нее.
// Вложенный вызов присоединяется к внешней транзакции.
func (p *PostgresStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(keyTxValue).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	ctx = context.WithValue(ctx, keyTxValue, tx)

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}

		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(ctx)
	return err
}

// q возвращает транзакцию из контекста или пул
func (p *PostgresStorage) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyTxValue).(pgx.Tx); ok {
		return tx
	}
	return p.pool
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// mapError переводит ошибки ограничений postgres в доменные
func mapError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return fmt.Errorf("%w: %s: %s", models.ErrConflict, msg, pgErr.ConstraintName)
		case pgErrCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", models.ErrNotFound, msg, pgErr.ConstraintName)
		case pgErrCodeCheckViolation:
			return fmt.Errorf("%w: %s: %s", models.ErrValidation, msg, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
