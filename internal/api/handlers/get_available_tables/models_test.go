package get_available_tables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/availability"
	"github.com/m04kA/SMC-TableService/pkg/ptr"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

func TestFromServiceResult_GroupsByZone(t *testing.T) {
	result := &availability.Result{
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Free: []*domain.Table{
			{ID: 1, Number: 1, Zone: domain.ZoneGarden, Capacity: 4},
			{ID: 2, Number: 2, Zone: domain.ZoneIndoor, Capacity: 2},
			{ID: 3, Number: 3, Zone: domain.ZoneIndoor, Capacity: 6},
		},
		Reserved: []*availability.ReservedTable{
			{
				Table: &domain.Table{ID: 4, Number: 4, Zone: domain.ZoneGarden, Capacity: 4},
				Bookings: []*domain.Booking{{
					ID:           10,
					CustomerName: "Иванов",
					GuestCount:   3,
					StartTime:    "18:00",
					EndTime:      ptr.Ptr(types.TimeString("20:00")),
					DiningStatus: domain.DiningReserved,
				}},
			},
		},
	}

	resp := FromServiceResult(result)

	assert.Equal(t, "2026-03-14", resp.Date)

	// Зоны без столов не выводятся; порядок следует domain.Zones
	require.Len(t, resp.Zones, 2)
	assert.Equal(t, "indoor", resp.Zones[0].Zone)
	assert.Equal(t, "garden", resp.Zones[1].Zone)

	indoor := resp.Zones[0]
	assert.Len(t, indoor.Free, 2)
	assert.Empty(t, indoor.Reserved)

	garden := resp.Zones[1]
	require.Len(t, garden.Free, 1)
	assert.Equal(t, int64(1), garden.Free[0].ID)
	require.Len(t, garden.Reserved, 1)
	assert.Equal(t, int64(4), garden.Reserved[0].Table.ID)

	require.Len(t, garden.Reserved[0].Bookings, 1)
	brief := garden.Reserved[0].Bookings[0]
	assert.Equal(t, "Иванов", brief.CustomerName)
	assert.Equal(t, "18:00", brief.StartTime)
	assert.Equal(t, "20:00", brief.EndTime)
	assert.Equal(t, "reserved", brief.DiningStatus)
}

func TestFromServiceResult_AllFree(t *testing.T) {
	result := &availability.Result{
		Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Free: []*domain.Table{
			{ID: 1, Number: 1, Zone: domain.ZoneMezzanine, Capacity: 4},
		},
		Reserved: []*availability.ReservedTable{},
	}

	resp := FromServiceResult(result)

	require.Len(t, resp.Zones, 1)
	assert.Equal(t, "mezzanine", resp.Zones[0].Zone)
	assert.Len(t, resp.Zones[0].Free, 1)
}
