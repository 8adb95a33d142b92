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

type ReservationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReservationMapper
}

func NewReservationRepository(db *gorm.DB) contract.ReservationRepository {
	return &ReservationRepositoryImpl{
		db:     db,
		mapper: mapper.NewReservationMapper(),
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation *entity.Reservation) error {
	modelReservation := r.mapper.ToModel(reservation)
	if err := r.db.WithContext(ctx).Create(modelReservation).Error; err != nil {
		return err
	}
	*reservation = *r.mapper.ToEntity(modelReservation)
	return nil
}

func (r *ReservationRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	var modelReservation model.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelReservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelReservation), nil
}

func (r *ReservationRepositoryImpl) FindConfirmed(ctx context.Context, kitchenID int, date string) ([]*entity.Reservation, error) {
	var modelReservations []*model.Reservation
	query := applySpecifications(r.db.WithContext(ctx),
		specification.ForKitchen{KitchenId: kitchenID},
		specification.OnDate{Date: date},
		specification.WithStatus{Status: string(entity.ReservationStatusConfirmed)},
		specification.OrderBy{Field: "appliance_id"},
		specification.OrderBy{Field: "start_time"},
	)

	if err := query.Find(&modelReservations).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelReservations), nil
}

func (r *ReservationRepositoryImpl) CountOverlapping(ctx context.Context, applianceID, date, start, end string) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Reservation{}),
		specification.ForAppliance{ApplianceId: applianceID},
		specification.OnDate{Date: date},
		specification.WithStatus{Status: string(entity.ReservationStatusConfirmed)},
		specification.Overlapping{StartTime: start, EndTime: end},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservationRepositoryImpl) CountActiveAt(ctx context.Context, isic, date, clock string) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Reservation{}),
		specification.OwnedBy{Isic: isic},
		specification.OnDate{Date: date},
		specification.WithStatus{Status: string(entity.ReservationStatusConfirmed)},
		specification.SpanningInstant{Clock: clock},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservationRepositoryImpl) ListByOwner(ctx context.Context, isic string) ([]*entity.Reservation, error) {
	var modelReservations []*model.Reservation
	query := applySpecifications(r.db.WithContext(ctx),
		specification.OwnedBy{Isic: isic},
		specification.OrderBy{Field: "date", Desc: true},
		specification.OrderBy{Field: "start_time", Desc: true},
	)

	if err := query.Find(&modelReservations).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelReservations), nil
}

func (r *ReservationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) error {
	return r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
