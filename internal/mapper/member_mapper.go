package mapper

import (
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type MemberMapper struct{}

func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

func (m *MemberMapper) ToModel(e *entity.Member) *model.Member {
	var embedding *pgvector.Vector
	if len(e.FaceEmbedding) > 0 {
		vec := pgvector.NewVector(e.FaceEmbedding)
		embedding = &vec
	}
	return &model.Member{
		Isic:           e.Isic,
		Name:           e.Name,
		FaceEmbedding:  embedding,
		FaceEnrolledAt: e.FaceEnrolledAt,
		ThemePalette:   string(e.ThemePalette),
		ThemeDarkMode:  e.ThemeDarkMode,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *MemberMapper) ToEntity(mo *model.Member) *entity.Member {
	var embedding []float32
	if mo.FaceEmbedding != nil {
		embedding = mo.FaceEmbedding.Slice()
	}
	return &entity.Member{
		Isic:           mo.Isic,
		Name:           mo.Name,
		FaceEmbedding:  embedding,
		FaceEnrolledAt: mo.FaceEnrolledAt,
		ThemePalette:   entity.ThemePalette(mo.ThemePalette),
		ThemeDarkMode:  mo.ThemeDarkMode,
		CreatedAt:      mo.CreatedAt,
		UpdatedAt:      mo.UpdatedAt,
	}
}

func (m *MemberMapper) ToEntities(models []*model.Member) []*entity.Member {
	entities := make([]*entity.Member, 0, len(models))
	for _, mo := range models {
		entities = append(entities, m.ToEntity(mo))
	}
	return entities
}
