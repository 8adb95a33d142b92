package service

import (
	"context"
	"time"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/pkg/logger"
	"smart-kitchen-be/internal/repository/unitofwork"
	"smart-kitchen-be/pkg/events"
	pktNats "smart-kitchen-be/pkg/nats"
)

type IReservationService interface {
	Book(ctx context.Context, isic string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)

	// Cancel transitions the member's reservation to cancelled.
	// Cancelling an already-cancelled reservation succeeds without
	// changing anything.
	Cancel(ctx context.Context, isic, reservationID string) error

	ListForMember(ctx context.Context, isic string) ([]*dto.ReservationResponse, error)
}

type reservationService struct {
	uowFactory     unitofwork.RepositoryFactory
	idGenerator    ReservationIDGenerator
	slots          *slotLocks
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewReservationService(
	uowFactory unitofwork.RepositoryFactory,
	idGenerator ReservationIDGenerator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReservationService {
	return &reservationService{
		uowFactory:     uowFactory,
		idGenerator:    idGenerator,
		slots:          newSlotLocks(),
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *reservationService) Book(ctx context.Context, isic string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if req.StartTime >= req.EndTime {
		return nil, apperror.Validation("start time must be before end time")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	appliance, err := uow.ApplianceRepository().FindByID(ctx, req.ApplianceId)
	if err != nil {
		return nil, err
	}
	if appliance == nil || appliance.KitchenId != req.KitchenId {
		return nil, apperror.NotFound("appliance not found in kitchen")
	}

	// Serialize check-then-insert per (appliance, date) so two
	// overlapping requests cannot both observe a free slot.
	lock := s.slots.forSlot(req.ApplianceId, req.Date)
	lock.Lock()
	defer lock.Unlock()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	overlapping, err := uow.ReservationRepository().CountOverlapping(ctx, req.ApplianceId, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperror.Conflict("time slot already reserved")
	}

	reservation := &entity.Reservation{
		Id:            s.idGenerator.Generate(isic, req.Date, req.StartTime, req.EndTime),
		MemberIsic:    isic,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		KitchenId:     req.KitchenId,
		ApplianceId:   req.ApplianceId,
		ApplianceType: appliance.Type,
		Status:        entity.ReservationStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := uow.ReservationRepository().Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeReservationBooked, reservation)

	response := s.toResponse(reservation, nil, appliance)
	return response, nil
}

func (s *reservationService) Cancel(ctx context.Context, isic, reservationID string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservation, err := uow.ReservationRepository().FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return apperror.NotFound("reservation not found")
	}
	if reservation.MemberIsic != isic {
		// Uniform denial: a non-owner learns nothing about the
		// reservation beyond its existence on this id.
		return apperror.Authentication("access denied")
	}
	if reservation.Status == entity.ReservationStatusCancelled {
		return nil
	}

	if err := uow.ReservationRepository().UpdateStatus(ctx, reservationID, entity.ReservationStatusCancelled); err != nil {
		return err
	}

	reservation.Status = entity.ReservationStatusCancelled
	s.publish(ctx, events.TypeReservationCancelled, reservation)

	return nil
}

func (s *reservationService) ListForMember(ctx context.Context, isic string) ([]*dto.ReservationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reservations, err := uow.ReservationRepository().ListByOwner(ctx, isic)
	if err != nil {
		return nil, err
	}

	kitchens := make(map[int]*entity.Kitchen)
	appliances := make(map[string]*entity.Appliance)

	responses := make([]*dto.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		kitchen, ok := kitchens[reservation.KitchenId]
		if !ok {
			kitchen, err = uow.KitchenRepository().FindByID(ctx, reservation.KitchenId)
			if err != nil {
				return nil, err
			}
			kitchens[reservation.KitchenId] = kitchen
		}

		appliance, ok := appliances[reservation.ApplianceId]
		if !ok {
			appliance, err = uow.ApplianceRepository().FindByID(ctx, reservation.ApplianceId)
			if err != nil {
				return nil, err
			}
			appliances[reservation.ApplianceId] = appliance
		}

		responses = append(responses, s.toResponse(reservation, kitchen, appliance))
	}
	return responses, nil
}

func (s *reservationService) toResponse(reservation *entity.Reservation, kitchen *entity.Kitchen, appliance *entity.Appliance) *dto.ReservationResponse {
	response := &dto.ReservationResponse{
		Id:            reservation.Id,
		Date:          reservation.Date,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		KitchenId:     reservation.KitchenId,
		ApplianceId:   reservation.ApplianceId,
		ApplianceType: string(reservation.ApplianceType),
		Status:        string(reservation.Status),
	}
	if kitchen != nil {
		response.Kitchen = &dto.KitchenSummary{
			Id:            kitchen.Id,
			Floor:         kitchen.Floor,
			KitchenNumber: kitchen.KitchenNumber,
		}
	}
	if appliance != nil {
		response.Appliance = &dto.ApplianceSummary{
			Id:   appliance.Id,
			Type: string(appliance.Type),
			Name: appliance.Name,
		}
	}
	return response
}

func (s *reservationService) publish(ctx context.Context, eventType string, reservation *entity.Reservation) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"reservation_id": reservation.Id,
			"member_isic":    reservation.MemberIsic,
			"appliance_id":   reservation.ApplianceId,
			"date":           reservation.Date,
			"start_time":     reservation.StartTime,
			"end_time":       reservation.EndTime,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("reservation", "failed to publish reservation event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
