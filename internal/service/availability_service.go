package service

import (
	"context"

	"smart-kitchen-be/internal/config"
	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/repository/unitofwork"
)

type IAvailabilityService interface {
	// Availability lists every appliance of the kitchen with its
	// confirmed intervals on the date. Appliances without bookings
	// appear with an empty interval list.
	Availability(ctx context.Context, kitchenID int, date string) (*dto.AvailabilityResponse, error)
}

type availabilityService struct {
	uowFactory unitofwork.RepositoryFactory
	booking    config.BookingConfig
}

func NewAvailabilityService(uowFactory unitofwork.RepositoryFactory, booking config.BookingConfig) IAvailabilityService {
	return &availabilityService{
		uowFactory: uowFactory,
		booking:    booking,
	}
}

func (s *availabilityService) Availability(ctx context.Context, kitchenID int, date string) (*dto.AvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kitchen, err := uow.KitchenRepository().FindByID(ctx, kitchenID)
	if err != nil {
		return nil, err
	}
	if kitchen == nil {
		return nil, apperror.NotFound("kitchen not found")
	}

	appliances, err := uow.ApplianceRepository().FindByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, err
	}

	reservations, err := uow.ReservationRepository().FindConfirmed(ctx, kitchenID, date)
	if err != nil {
		return nil, err
	}

	intervalsByAppliance := make(map[string][]dto.ReservationInterval)
	for _, reservation := range reservations {
		intervalsByAppliance[reservation.ApplianceId] = append(
			intervalsByAppliance[reservation.ApplianceId],
			dto.ReservationInterval{
				Id:        reservation.Id,
				StartTime: reservation.StartTime,
				EndTime:   reservation.EndTime,
			},
		)
	}

	applianceList := make([]dto.ApplianceAvailability, 0, len(appliances))
	for _, appliance := range appliances {
		intervals := intervalsByAppliance[appliance.Id]
		if intervals == nil {
			intervals = []dto.ReservationInterval{}
		}
		applianceList = append(applianceList, dto.ApplianceAvailability{
			ApplianceId:   appliance.Id,
			ApplianceType: string(appliance.Type),
			ApplianceName: appliance.Name,
			Reservations:  intervals,
		})
	}

	return &dto.AvailabilityResponse{
		Date:      date,
		KitchenId: kitchenID,
		OperatingHours: dto.OperatingHours{
			Start: s.booking.OperatingHoursStart,
			End:   s.booking.OperatingHoursEnd,
		},
		MinDuration:       s.booking.MinDurationMinutes,
		MaxDuration:       s.booking.MaxDurationMinutes,
		Appliances:        applianceList,
		TotalReservations: len(reservations),
	}, nil
}
