package mapper

import (
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/model"
)

type KitchenMapper struct{}

func NewKitchenMapper() *KitchenMapper {
	return &KitchenMapper{}
}

func (m *KitchenMapper) ToModel(e *entity.Kitchen) *model.Kitchen {
	return &model.Kitchen{
		Id:            e.Id,
		KitchenNumber: e.KitchenNumber,
		Floor:         e.Floor,
		Name:          e.Name,
	}
}

func (m *KitchenMapper) ToEntity(mo *model.Kitchen) *entity.Kitchen {
	return &entity.Kitchen{
		Id:            mo.Id,
		KitchenNumber: mo.KitchenNumber,
		Floor:         mo.Floor,
		Name:          mo.Name,
	}
}

func (m *KitchenMapper) ToEntities(models []*model.Kitchen) []*entity.Kitchen {
	entities := make([]*entity.Kitchen, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}

type ApplianceMapper struct{}

func NewApplianceMapper() *ApplianceMapper {
	return &ApplianceMapper{}
}

func (m *ApplianceMapper) ToModel(e *entity.Appliance) *model.Appliance {
	return &model.Appliance{
		Id:        e.Id,
		KitchenId: e.KitchenId,
		Type:      string(e.Type),
		Name:      e.Name,
	}
}

func (m *ApplianceMapper) ToEntity(mo *model.Appliance) *entity.Appliance {
	return &entity.Appliance{
		Id:        mo.Id,
		KitchenId: mo.KitchenId,
		Type:      entity.ApplianceType(mo.Type),
		Name:      mo.Name,
	}
}

func (m *ApplianceMapper) ToEntities(models []*model.Appliance) []*entity.Appliance {
	entities := make([]*entity.Appliance, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
