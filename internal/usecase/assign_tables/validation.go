package assign_tables

import (
	"fmt"

	"github.com/m04kA/SMC-TableService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется до любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		// Нулевой интервал бесполезен, явный конец должен быть позже начала
		if !req.EndTime.IsAfter(req.StartTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
	}

	seen := make(map[int64]struct{}, len(req.TableIDs))
	for _, tableID := range req.TableIDs {
		if tableID <= 0 {
			return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[tableID]; ok {
			return fmt.Errorf("%w: duplicate tableID %d", ErrInvalidInput, tableID)
		}
		seen[tableID] = struct{}{}
	}

	return nil
}

// validateTables проверяет, что все запрошенные столы существуют и активны
func validateTables(requested []int64, tables []*domain.Table) error {
	byID := make(map[int64]*domain.Table, len(tables))
	for _, table := range tables {
		byID[table.ID] = table
	}

	for _, tableID := range requested {
		table, ok := byID[tableID]
		if !ok {
			return fmt.Errorf("%w: id=%d", ErrTableNotFound, tableID)
		}
		if !table.IsActive {
			return fmt.Errorf("%w: id=%d", ErrTableInactive, tableID)
		}
	}

	return nil
}
