package assignment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий связи "бронирование - столы"
// Порядок столов фиксируется колонкой position: стол с минимальной позицией
// считается основным столом бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert записывает назначение столов бронированию
// Позиции проставляются по порядку переданного списка
func (r *Repository) Insert(ctx context.Context, bookingID int64, tableIDs []int64) error {
	if len(tableIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_tables").
		Columns("booking_id", "table_id", "position")

	for position, tableID := range tableIDs {
		insertBuilder = insertBuilder.Values(bookingID, tableID, position)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByBooking удаляет все назначения столов бронированию
// Отсутствие назначений не является ошибкой
func (r *Repository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_tables").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByBooking - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBooking - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetTableIDsByBooking получает ID столов, назначенных бронированию,
// в порядке позиций (первый стол - основной)
func (r *Repository) GetTableIDsByBooking(ctx context.Context, bookingID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("table_id").
		From("booking_tables").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTableIDsByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableIDsByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tableIDs := make([]int64, 0)
	for rows.Next() {
		var tableID int64
		if err := rows.Scan(&tableID); err != nil {
			return nil, fmt.Errorf("%w: GetTableIDsByBooking - scan table_id: %v", ErrScanRow, err)
		}
		tableIDs = append(tableIDs, tableID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTableIDsByBooking - rows error: %v", ErrScanRow, err)
	}

	return tableIDs, nil
}
