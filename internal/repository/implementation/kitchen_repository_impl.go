package implementation

import (
	"context"
	"errors"

	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/mapper"
	"smart-kitchen-be/internal/model"
	"smart-kitchen-be/internal/repository/contract"
	"smart-kitchen-be/internal/repository/specification"

	"gorm.io/gorm"
)

type KitchenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KitchenMapper
}

func NewKitchenRepository(db *gorm.DB) contract.KitchenRepository {
	return &KitchenRepositoryImpl{
		db:     db,
		mapper: mapper.NewKitchenMapper(),
	}
}

func (r *KitchenRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Kitchen, error) {
	var modelKitchens []*model.Kitchen
	query := applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "floor"})

	if err := query.Find(&modelKitchens).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelKitchens), nil
}

func (r *KitchenRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Kitchen, error) {
	var modelKitchen model.Kitchen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelKitchen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelKitchen), nil
}

func (r *KitchenRepositoryImpl) Ensure(ctx context.Context, kitchen *entity.Kitchen) error {
	modelKitchen := r.mapper.ToModel(kitchen)
	return r.db.WithContext(ctx).
		Where(&model.Kitchen{Id: modelKitchen.Id}).
		Attrs(modelKitchen).
		FirstOrCreate(modelKitchen).Error
}

type ApplianceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplianceMapper
}

func NewApplianceRepository(db *gorm.DB) contract.ApplianceRepository {
	return &ApplianceRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplianceMapper(),
	}
}

func (r *ApplianceRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Appliance, error) {
	var modelAppliance model.Appliance
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelAppliance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelAppliance), nil
}

func (r *ApplianceRepositoryImpl) FindByKitchen(ctx context.Context, kitchenID int) ([]*entity.Appliance, error) {
	var modelAppliances []*model.Appliance
	query := applySpecifications(r.db.WithContext(ctx),
		specification.Filter("kitchen_id", kitchenID),
		specification.OrderBy{Field: "id"},
	)

	if err := query.Find(&modelAppliances).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAppliances), nil
}

func (r *ApplianceRepositoryImpl) CountByType(ctx context.Context, kitchenID int, applianceType entity.ApplianceType) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Appliance{}),
		specification.Filter("kitchen_id", kitchenID),
		specification.Filter("type", string(applianceType)),
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplianceRepositoryImpl) Ensure(ctx context.Context, appliance *entity.Appliance) error {
	modelAppliance := r.mapper.ToModel(appliance)
	return r.db.WithContext(ctx).
		Where(&model.Appliance{Id: modelAppliance.Id}).
		Attrs(modelAppliance).
		FirstOrCreate(modelAppliance).Error
}
