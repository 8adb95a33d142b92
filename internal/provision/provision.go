package provision

import (
	"context"
	"log"

	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/model"
	"smart-kitchen-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. The vector extension must exist
// before AutoMigrate sees the embedding column type.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		log.Printf("Warn: Failed to create vector extension: %v. Continuing...", err)
	}

	return db.AutoMigrate(
		&model.Member{},
		&model.Kitchen{},
		&model.Appliance{},
		&model.Reservation{},
	)
}

// Seed writes the fixed catalog: one kitchen per floor, each with the
// standard appliance set. Rerunning it never duplicates or resets rows.
func Seed(ctx context.Context, db *gorm.DB) error {
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	for floor := entity.FloorMin; floor <= entity.FloorMax; floor++ {
		kitchen := &entity.Kitchen{
			Id:            floor,
			KitchenNumber: 1,
			Floor:         floor,
			Name:          entity.KitchenName(floor),
		}
		if err := uow.KitchenRepository().Ensure(ctx, kitchen); err != nil {
			return err
		}

		for i, blueprint := range entity.StandardAppliances {
			appliance := &entity.Appliance{
				Id:        entity.ApplianceID(floor, blueprint.Type, i+1),
				KitchenId: floor,
				Type:      blueprint.Type,
				Name:      blueprint.Name,
			}
			if err := uow.ApplianceRepository().Ensure(ctx, appliance); err != nil {
				return err
			}
		}
	}
	return nil
}
