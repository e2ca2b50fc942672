package get_available_tables

import (
	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/availability"
)

// AvailableTablesResponse HTTP response model
// Столы сгруппированы по зонам для экрана рассадки; пустые зоны не выводятся
type AvailableTablesResponse struct {
	Date  string      `json:"date"`
	Zones []ZoneGroup `json:"zones"`
}

// ZoneGroup свободные и занятые столы одной зоны
type ZoneGroup struct {
	Zone     string          `json:"zone"`
	Free     []TableModel    `json:"free"`
	Reserved []ReservedTable `json:"reserved"`
}

// TableModel модель стола
type TableModel struct {
	ID       int64 `json:"id"`
	Number   int   `json:"number"`
	Capacity int   `json:"capacity"`
}

// ReservedTable занятый стол с его активными бронированиями
type ReservedTable struct {
	Table    TableModel     `json:"table"`
	Bookings []BookingBrief `json:"bookings"`
}

// BookingBrief краткая сводка бронирования для экрана доступности
type BookingBrief struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	GuestCount   int    `json:"guestCount"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime,omitempty"`
	DiningStatus string `json:"diningStatus"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response,
// группируя столы по зонам в порядке domain.Zones
func FromServiceResult(result *availability.Result) *AvailableTablesResponse {
	freeByZone := make(map[domain.Zone][]TableModel)
	for _, table := range result.Free {
		freeByZone[table.Zone] = append(freeByZone[table.Zone], fromDomainTable(table))
	}

	reservedByZone := make(map[domain.Zone][]ReservedTable)
	for _, rt := range result.Reserved {
		bookings := make([]BookingBrief, len(rt.Bookings))
		for j, booking := range rt.Bookings {
			brief := BookingBrief{
				ID:           booking.ID,
				CustomerName: booking.CustomerName,
				GuestCount:   booking.GuestCount,
				StartTime:    booking.StartTime.String(),
				DiningStatus: string(booking.DiningStatus),
			}
			if booking.EndTime != nil {
				brief.EndTime = booking.EndTime.String()
			}
			bookings[j] = brief
		}
		reservedByZone[rt.Table.Zone] = append(reservedByZone[rt.Table.Zone], ReservedTable{
			Table:    fromDomainTable(rt.Table),
			Bookings: bookings,
		})
	}

	zones := make([]ZoneGroup, 0, len(domain.Zones))
	for _, zone := range domain.Zones {
		free := freeByZone[zone]
		reserved := reservedByZone[zone]
		if len(free) == 0 && len(reserved) == 0 {
			continue
		}
		zones = append(zones, ZoneGroup{
			Zone:     string(zone),
			Free:     free,
			Reserved: reserved,
		})
	}

	return &AvailableTablesResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Zones: zones,
	}
}

func fromDomainTable(table *domain.Table) TableModel {
	return TableModel{
		ID:       table.ID,
		Number:   table.Number,
		Capacity: table.Capacity,
	}
}
