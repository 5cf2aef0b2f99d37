package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/infrastructure/nower"
)

// pgxPool то, что требуется хранилищу от пула: запросы (в том числе внутри транзакции trm), пинг и закрытие.
type pgxPool interface {
	trmpgx.Tr
	Ping(ctx context.Context) error
	Close()
}

// Storage инкапсулирует работу с PostgreSQL.
// Если в контексте открыта транзакция transaction manager'а, запросы идут через неё.
type Storage struct {
	pool   pgxPool
	getter *trmpgx.CtxGetter
	nower  nower.Nower
	sb     squirrel.StatementBuilderType
}

// New создаёт новый слой хранения.
func New(pool pgxPool, nower nower.Nower) *Storage {
	return &Storage{
		pool:   pool,
		getter: trmpgx.DefaultCtxGetter,
		nower:  nower,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Close освобождает соединения пула.
func (s *Storage) Close() {
	s.pool.Close()
}

// Ping проверяет доступность подключения к БД.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) conn(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.pool)
}

// CreateWheel сохраняет колесо и его записи.
// Атомарность обеспечивает вызывающий через transaction manager.
func (s *Storage) CreateWheel(ctx context.Context, wheel domain.Wheel) (domain.Wheel, error) {
	now := s.nower.Now()
	insertSQL, insertArgs, err := s.sb.
		Insert("wheels").
		Columns("wheel_id", "name", "created_at").
		Values(wheel.ID, wheel.Name, now).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build insert wheel query", "error", err)
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := s.conn(ctx).Exec(ctx, insertSQL, insertArgs...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Wheel{}, domain.ErrWheelExists
		}
		slog.ErrorContext(ctx, "failed to insert wheel", "error", err)
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.Wheel{}, domain.ErrWheelExists
	}

	entries := make([]domain.WheelEntry, len(wheel.Entries))
	batch := &pgx.Batch{}
	for i, entry := range wheel.Entries {
		entries[i] = domain.WheelEntry{Name: entry.Name, Position: i}
		entrySQL, entryArgs, err := s.sb.
			Insert("wheel_entries").
			Columns("wheel_id", "position", "name").
			Values(wheel.ID, i, entry.Name).
			ToSql()
		if err != nil {
			return domain.Wheel{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
		}
		batch.Queue(entrySQL, entryArgs...)
	}
	if batch.Len() > 0 {
		if err := s.conn(ctx).SendBatch(ctx, batch).Close(); err != nil {
			slog.ErrorContext(ctx, "failed to insert wheel entries", "error", err)
			return domain.Wheel{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
		}
	}

	return domain.Wheel{ID: wheel.ID, Name: wheel.Name, Entries: entries, CreatedAt: now}, nil
}

// GetWheel возвращает колесо с записями в порядке позиций.
func (s *Storage) GetWheel(ctx context.Context, wheelID string) (domain.Wheel, error) {
	wheelSQL, wheelArgs, err := s.sb.
		Select("wheel_id", "name", "created_at").
		From("wheels").
		Where(squirrel.Eq{"wheel_id": wheelID}).
		ToSql()
	if err != nil {
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	db := s.conn(ctx)
	var wheel domain.Wheel
	err = db.QueryRow(ctx, wheelSQL, wheelArgs...).Scan(&wheel.ID, &wheel.Name, &wheel.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Wheel{}, domain.ErrWheelNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to scan wheel", "error", err)
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrScanResult, err)
	}

	entriesSQL, entriesArgs, err := s.sb.
		Select("position", "name").
		From("wheel_entries").
		Where(squirrel.Eq{"wheel_id": wheelID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	rows, err := db.Query(ctx, entriesSQL, entriesArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query wheel entries", "error", err)
		return domain.Wheel{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	wheel.Entries = []domain.WheelEntry{}
	for rows.Next() {
		var entry domain.WheelEntry
		if err := rows.Scan(&entry.Position, &entry.Name); err != nil {
			return domain.Wheel{}, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		wheel.Entries = append(wheel.Entries, entry)
	}
	return wheel, rows.Err()
}

// RemoveEntry удаляет запись колеса по позиции.
func (s *Storage) RemoveEntry(ctx context.Context, wheelID string, position int) error {
	deleteSQL, deleteArgs, err := s.sb.
		Delete("wheel_entries").
		Where(squirrel.Eq{"wheel_id": wheelID, "position": position}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := s.conn(ctx).Exec(ctx, deleteSQL, deleteArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete wheel entry", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// RecordSpin сохраняет результат вращения, время выставляется хранилищем.
func (s *Storage) RecordSpin(ctx context.Context, spin domain.Spin) (domain.Spin, error) {
	spin.SpunAt = s.nower.Now()
	insertSQL, insertArgs, err := s.sb.
		Insert("wheel_spins").
		Columns("spin_id", "wheel_id", "entry", "removed", "spun_at").
		Values(spin.ID, spin.WheelID, spin.Entry, spin.Removed, spin.SpunAt).
		ToSql()
	if err != nil {
		return domain.Spin{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, insertSQL, insertArgs...); err != nil {
		slog.ErrorContext(ctx, "failed to insert spin", "error", err)
		return domain.Spin{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return spin, nil
}

// ListSpins возвращает последние limit вращений колеса, новые первыми.
// При совпадении времени порядок определяет seq, то есть порядок вставки.
func (s *Storage) ListSpins(ctx context.Context, wheelID string, limit int) ([]domain.Spin, error) {
	query := s.sb.
		Select("spin_id", "wheel_id", "entry", "removed", "spun_at").
		From("wheel_spins").
		Where(squirrel.Eq{"wheel_id": wheelID}).
		OrderBy("spun_at DESC", "seq DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	selectSQL, selectArgs, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	rows, err := s.conn(ctx).Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query spins", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	spins := []domain.Spin{}
	for rows.Next() {
		var spin domain.Spin
		if err := rows.Scan(&spin.ID, &spin.WheelID, &spin.Entry, &spin.Removed, &spin.SpunAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		spins = append(spins, spin)
	}
	return spins, rows.Err()
}
