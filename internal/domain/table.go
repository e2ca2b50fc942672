package domain

import "time"

// Zone represents a named physical area of the restaurant grouping tables
type Zone string

const (
	ZoneIndoor      Zone = "indoor"
	ZoneGarden      Zone = "garden"
	ZoneMezzanine   Zone = "mezzanine"
	ZonePrivateRoom Zone = "private_room"
)

// Zones перечень всех зон ресторана
var Zones = []Zone{
	ZoneIndoor,
	ZoneGarden,
	ZoneMezzanine,
	ZonePrivateRoom,
}

// IsValid returns true if the zone is one of the known physical areas
func (z Zone) IsValid() bool {
	for _, zone := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// Table represents a physical table in the restaurant
type Table struct {
	ID       int64
	Number   int // Display number shown to the staff
	Zone     Zone
	Capacity int
	IsActive bool // Inactive tables are excluded from all availability computation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSeat returns true if the table has enough capacity for the party
func (t *Table) CanSeat(guestCount int) bool {
	return t.Capacity >= guestCount
}

// TableFilter фильтр для выборки столов
type TableFilter struct {
	Zone            *Zone // Фильтр по зоне (опционально)
	MinCapacity     *int  // Минимальная вместимость (опционально)
	IncludeInactive bool  // Включать ли неактивные столы
}
