package service

import (
	"context"
	"testing"

	"smart-kitchen-be/internal/config"
	"smart-kitchen-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(t *testing.T) (IAvailabilityService, IReservationService, []string) {
	t.Helper()
	factory := newFakeRepositoryFactory()
	applianceIDs := seedKitchen(factory, 3)
	booking := config.BookingConfig{
		OperatingHoursStart: "06:00",
		OperatingHoursEnd:   "23:00",
		MinDurationMinutes:  5,
		MaxDurationMinutes:  120,
	}
	availability := NewAvailabilityService(factory, booking)
	reservations := NewReservationService(factory, SlotKeyIDGenerator{}, nil, nopLogger{})
	return availability, reservations, applianceIDs
}

func TestAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every appliance even with no bookings", func(t *testing.T) {
		availability, _, _ := newAvailabilityFixture(t)

		res, err := availability.Availability(ctx, 3, "2026-09-01")
		require.NoError(t, err)

		assert.Equal(t, 3, res.KitchenId)
		assert.Equal(t, "06:00", res.OperatingHours.Start)
		assert.Equal(t, "23:00", res.OperatingHours.End)
		assert.Equal(t, 5, res.MinDuration)
		assert.Equal(t, 120, res.MaxDuration)
		assert.Equal(t, 0, res.TotalReservations)

		require.Len(t, res.Appliances, 5)
		for _, appliance := range res.Appliances {
			assert.NotNil(t, appliance.Reservations)
			assert.Empty(t, appliance.Reservations)
		}
	})

	t.Run("groups confirmed intervals per appliance", func(t *testing.T) {
		availability, reservations, appliances := newAvailabilityFixture(t)

		_, err := reservations.Book(ctx, "S1234567890", bookingRequest(appliances[0], "10:00", "11:00"))
		require.NoError(t, err)
		_, err = reservations.Book(ctx, "S0000000000", bookingRequest(appliances[0], "12:00", "13:00"))
		require.NoError(t, err)
		cancelled, err := reservations.Book(ctx, "S0000000001", bookingRequest(appliances[2], "14:00", "15:00"))
		require.NoError(t, err)
		require.NoError(t, reservations.Cancel(ctx, "S0000000001", cancelled.Id))

		res, err := availability.Availability(ctx, 3, "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalReservations)

		byID := map[string][]string{}
		for _, appliance := range res.Appliances {
			for _, interval := range appliance.Reservations {
				byID[appliance.ApplianceId] = append(byID[appliance.ApplianceId], interval.StartTime)
			}
		}
		assert.Equal(t, []string{"10:00", "12:00"}, byID[appliances[0]])
		assert.Empty(t, byID[appliances[2]], "cancelled slots are free again")
	})

	t.Run("ignores other dates", func(t *testing.T) {
		availability, reservations, appliances := newAvailabilityFixture(t)

		_, err := reservations.Book(ctx, "S1234567890", bookingRequest(appliances[0], "10:00", "11:00"))
		require.NoError(t, err)

		res, err := availability.Availability(ctx, 3, "2026-09-02")
		require.NoError(t, err)
		assert.Equal(t, 0, res.TotalReservations)
	})

	t.Run("reports an unknown kitchen", func(t *testing.T) {
		availability, _, _ := newAvailabilityFixture(t)

		_, err := availability.Availability(ctx, 9, "2026-09-01")
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
