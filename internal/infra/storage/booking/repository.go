package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// primaryTableColumn вычисляемая колонка основного стола
// Основной стол выводится из связи назначений (первый стол по позиции),
// отдельного поля в таблице bookings нет - источников правды ровно один
const primaryTableColumn = "(SELECT bt.table_id FROM booking_tables bt WHERE bt.booking_id = b.id ORDER BY bt.position ASC LIMIT 1) AS primary_table_id"

// bookingColumns колонки таблицы bookings для SELECT запросов
var bookingColumns = []string{
	"b.id",
	"b.customer_name",
	"b.guest_count",
	"b.booking_date",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.dining_status",
	"b.notes",
	"b.cancellation_reason",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
	primaryTableColumn,
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"guest_count",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"dining_status",
			"notes",
		).
		Values(
			booking.CustomerName,
			booking.GuestCount,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.DiningStatus,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByTableAndDate получает бронирования, назначенные на стол, на указанную дату
// Это рабочая выборка детектора конфликтов: по умолчанию отмененные
// и no-show бронирования исключаются
//
// Внутри транзакции добавляет FOR UPDATE OF b для блокировки строк -
// используется координатором назначения при перепроверке конфликтов
func (r *Repository) GetByTableAndDate(ctx context.Context, filter domain.TableBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("booking_tables bt ON bt.booking_id = b.id").
		Where(squirrel.Eq{"bt.table_id": filter.TableID}).
		Where(squirrel.Eq{"b.booking_date": dateOnly(filter.Date)}).
		OrderBy("b.start_time ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactiveStatusStrings()})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDate получает все бронирования на дату (без привязки к столам)
// Используется генератором слотов для подсчета загрузки по времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.booking_date": dateOnly(date)}).
		OrderBy("b.start_time ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactiveStatusStrings()})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetAssignedByDate получает пары "стол - бронирование" на дату
// Используется калькулятором доступности для разбиения инвентаря столов
// на свободные и занятые
func (r *Repository) GetAssignedByDate(ctx context.Context, date time.Time) ([]*domain.TableBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append([]string{"bt.table_id"}, bookingColumns...)
	query, args, err := psqlbuilder.Select(columns...).
		From("booking_tables bt").
		Join("bookings b ON b.id = bt.booking_id").
		Where(squirrel.Eq{"b.booking_date": dateOnly(date)}).
		Where(squirrel.NotEq{"b.status": inactiveStatusStrings()}).
		OrderBy("bt.table_id ASC, b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAssignedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAssignedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.TableBooking, 0)
	for rows.Next() {
		var tableID int64
		booking, err := scanBooking(func(dest ...interface{}) error {
			return rows.Scan(append([]interface{}{&tableID}, dest...)...)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: GetAssignedByDate - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &domain.TableBooking{TableID: tableID, Booking: booking})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAssignedByDate - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateEndTime сохраняет новое время окончания бронирования
// Время начала и набор назначенных столов не меняются
func (r *Repository) UpdateEndTime(ctx context.Context, id int64, endTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEndTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEndTime - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEndTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateDiningStatus обновляет статус рассадки бронирования
func (r *Repository) UpdateDiningStatus(ctx context.Context, id int64, status domain.DiningStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("dining_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDiningStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDiningStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDiningStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel переводит бронирование в терминальный статус с указанием причины
// Терминальный статус убирает бронирование из всех проверок пересечений,
// запись при этом сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	if status != domain.StatusCancelled && status != domain.StatusNoShow {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("dining_status", diningStatusFor(status)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// diningStatusFor возвращает статус рассадки, соответствующий терминальному статусу бронирования
func diningStatusFor(status domain.BookingStatus) domain.DiningStatus {
	if status == domain.StatusNoShow {
		return domain.DiningNoShow
	}
	return domain.DiningCancelled
}

// inactiveStatusStrings список неактивных статусов для SQL фильтра
func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// dateOnly обнуляет компонент времени даты
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var endTime sql.NullString
	var primaryTableID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.GuestCount,
		&booking.BookingDate,
		&booking.StartTime,
		&endTime,
		&booking.Status,
		&booking.DiningStatus,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
		&primaryTableID,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		var ts types.TimeString
		if err := ts.Scan(endTime.String); err != nil {
			return nil, err
		}
		booking.EndTime = &ts
	}
	if primaryTableID.Valid {
		booking.PrimaryTableID = &primaryTableID.Int64
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
