package service

import (
	"context"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/repository/unitofwork"
)

type IKitchenService interface {
	ListKitchens(ctx context.Context) ([]*dto.KitchenResponse, error)
	GetKitchen(ctx context.Context, id int) (*dto.KitchenResponse, error)
	ListAppliances(ctx context.Context, kitchenID int) ([]*dto.ApplianceResponse, error)
}

type kitchenService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewKitchenService(uowFactory unitofwork.RepositoryFactory) IKitchenService {
	return &kitchenService{
		uowFactory: uowFactory,
	}
}

var applianceTypes = []entity.ApplianceType{
	entity.ApplianceTypeMicrowave,
	entity.ApplianceTypeOven,
	entity.ApplianceTypeStoveLeft,
	entity.ApplianceTypeStoveRight,
}

func (s *kitchenService) applianceCounts(ctx context.Context, uow unitofwork.UnitOfWork, kitchenID int) (map[string]int64, error) {
	counts := make(map[string]int64, len(applianceTypes))
	for _, applianceType := range applianceTypes {
		count, err := uow.ApplianceRepository().CountByType(ctx, kitchenID, applianceType)
		if err != nil {
			return nil, err
		}
		counts[string(applianceType)] = count
	}
	return counts, nil
}

func (s *kitchenService) ListKitchens(ctx context.Context) ([]*dto.KitchenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kitchens, err := uow.KitchenRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.KitchenResponse, 0, len(kitchens))
	for _, kitchen := range kitchens {
		counts, err := s.applianceCounts(ctx, uow, kitchen.Id)
		if err != nil {
			return nil, err
		}
		responses = append(responses, &dto.KitchenResponse{
			Id:              kitchen.Id,
			KitchenNumber:   kitchen.KitchenNumber,
			Floor:           kitchen.Floor,
			Name:            kitchen.Name,
			ApplianceCounts: counts,
		})
	}
	return responses, nil
}

func (s *kitchenService) GetKitchen(ctx context.Context, id int) (*dto.KitchenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kitchen, err := uow.KitchenRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kitchen == nil {
		return nil, apperror.NotFound("kitchen not found")
	}

	counts, err := s.applianceCounts(ctx, uow, kitchen.Id)
	if err != nil {
		return nil, err
	}

	return &dto.KitchenResponse{
		Id:              kitchen.Id,
		KitchenNumber:   kitchen.KitchenNumber,
		Floor:           kitchen.Floor,
		Name:            kitchen.Name,
		ApplianceCounts: counts,
	}, nil
}

func (s *kitchenService) ListAppliances(ctx context.Context, kitchenID int) ([]*dto.ApplianceResponse, error) {
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

	responses := make([]*dto.ApplianceResponse, 0, len(appliances))
	for _, appliance := range appliances {
		responses = append(responses, &dto.ApplianceResponse{
			Id:   appliance.Id,
			Type: string(appliance.Type),
			Name: appliance.Name,
		})
	}
	return responses, nil
}
