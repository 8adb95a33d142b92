package contract

import (
	"context"

	"smart-kitchen-be/internal/entity"
)

type KitchenRepository interface {
	FindAll(ctx context.Context) ([]*entity.Kitchen, error)
	FindByID(ctx context.Context, id int) (*entity.Kitchen, error)

	// Ensure inserts the kitchen if absent. Repeated startups must not
	// duplicate or reset existing rows.
	Ensure(ctx context.Context, kitchen *entity.Kitchen) error
}

type ApplianceRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Appliance, error)
	FindByKitchen(ctx context.Context, kitchenID int) ([]*entity.Appliance, error)
	CountByType(ctx context.Context, kitchenID int, applianceType entity.ApplianceType) (int64, error)
	Ensure(ctx context.Context, appliance *entity.Appliance) error
}
