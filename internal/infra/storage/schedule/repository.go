package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации расписания ресторана
// Конфигурация общая на весь ресторан: одна строка schedule_config
// плюс рабочие часы по дням недели в operating_hours
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает конфигурацию расписания
func (r *Repository) GetConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_duration_minutes",
		"default_duration_minutes",
		"max_guests_per_slot",
		"max_tables_per_slot",
		"future_day_policy",
		"created_at",
		"updated_at",
	).
		From("schedule_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.SlotDurationMinutes,
		&config.DefaultDurationMinutes,
		&config.MaxGuestsPerSlot,
		&config.MaxTablesPerSlot,
		&config.FutureDayPolicy,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// UpsertConfig сохраняет конфигурацию расписания (вставка или обновление единственной строки)
func (r *Repository) UpsertConfig(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"id",
			"slot_duration_minutes",
			"default_duration_minutes",
			"max_guests_per_slot",
			"max_tables_per_slot",
			"future_day_policy",
		).
		Values(
			1,
			config.SlotDurationMinutes,
			config.DefaultDurationMinutes,
			config.MaxGuestsPerSlot,
			config.MaxTablesPerSlot,
			config.FutureDayPolicy,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			default_duration_minutes = EXCLUDED.default_duration_minutes,
			max_guests_per_slot = EXCLUDED.max_guests_per_slot,
			max_tables_per_slot = EXCLUDED.max_tables_per_slot,
			future_day_policy = EXCLUDED.future_day_policy,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetOperatingHours получает рабочие часы по всем дням недели
func (r *Repository) GetOperatingHours(ctx context.Context) ([]domain.DayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_closed",
		"lunch_open",
		"lunch_close",
		"dinner_open",
		"dinner_close",
	).
		From("operating_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.DayHours, 0, 7)
	for rows.Next() {
		var day domain.DayHours
		var weekday int
		var lunchOpen, lunchClose, dinnerOpen, dinnerClose sql.NullString

		err := rows.Scan(
			&weekday,
			&day.IsClosed,
			&lunchOpen,
			&lunchClose,
			&dinnerOpen,
			&dinnerClose,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOperatingHours - scan row: %v", ErrScanRow, err)
		}

		day.Weekday = time.Weekday(weekday)
		day.LunchOpen = nullableTime(lunchOpen)
		day.LunchClose = nullableTime(lunchClose)
		day.DinnerOpen = nullableTime(dinnerOpen)
		day.DinnerClose = nullableTime(dinnerClose)

		hours = append(hours, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpsertOperatingHours сохраняет рабочие часы дня недели
func (r *Repository) UpsertOperatingHours(ctx context.Context, day domain.DayHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns(
			"weekday",
			"is_closed",
			"lunch_open",
			"lunch_close",
			"dinner_open",
			"dinner_close",
		).
		Values(
			int(day.Weekday),
			day.IsClosed,
			day.LunchOpen,
			day.LunchClose,
			day.DinnerOpen,
			day.DinnerClose,
		).
		Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			is_closed = EXCLUDED.is_closed,
			lunch_open = EXCLUDED.lunch_open,
			lunch_close = EXCLUDED.lunch_close,
			dinner_open = EXCLUDED.dinner_open,
			dinner_close = EXCLUDED.dinner_close`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertOperatingHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertOperatingHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// nullableTime конвертирует NULL-колонку времени в *types.TimeString
func nullableTime(v sql.NullString) *types.TimeString {
	if !v.Valid {
		return nil
	}
	var ts types.TimeString
	if err := ts.Scan(v.String); err != nil {
		return nil
	}
	return &ts
}
