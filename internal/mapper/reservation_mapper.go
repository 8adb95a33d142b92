package mapper

import (
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/model"
)

type ReservationMapper struct{}

func NewReservationMapper() *ReservationMapper {
	return &ReservationMapper{}
}

func (m *ReservationMapper) ToModel(e *entity.Reservation) *model.Reservation {
	return &model.Reservation{
		Id:            e.Id,
		MemberIsic:    e.MemberIsic,
		Date:          e.Date,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		KitchenId:     e.KitchenId,
		ApplianceId:   e.ApplianceId,
		ApplianceType: string(e.ApplianceType),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ReservationMapper) ToEntity(mo *model.Reservation) *entity.Reservation {
	return &entity.Reservation{
		Id:            mo.Id,
		MemberIsic:    mo.MemberIsic,
		Date:          mo.Date,
		StartTime:     mo.StartTime,
		EndTime:       mo.EndTime,
		KitchenId:     mo.KitchenId,
		ApplianceId:   mo.ApplianceId,
		ApplianceType: entity.ApplianceType(mo.ApplianceType),
		Status:        entity.ReservationStatus(mo.Status),
		CreatedAt:     mo.CreatedAt,
	}
}

func (m *ReservationMapper) ToEntities(models []*model.Reservation) []*entity.Reservation {
	entities := make([]*entity.Reservation, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
