package implementation

import (
	"context"
	"errors"
	"time"

	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/mapper"
	"smart-kitchen-be/internal/model"
	"smart-kitchen-be/internal/repository/contract"
	"smart-kitchen-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MemberMapper
}

func NewMemberRepository(db *gorm.DB) contract.MemberRepository {
	return &MemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewMemberMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *entity.Member) error {
	modelMember := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(modelMember).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(modelMember)
	return nil
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, member *entity.Member) error {
	modelMember := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Save(modelMember).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(modelMember)
	return nil
}

func (r *MemberRepositoryImpl) FindByIsic(ctx context.Context, isic string) (*entity.Member, error) {
	var modelMember model.Member
	query := applySpecifications(r.db.WithContext(ctx), specification.ByIsic{Isic: isic})

	if err := query.First(&modelMember).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelMember), nil
}

func (r *MemberRepositoryImpl) FindEnrolled(ctx context.Context) ([]*entity.Member, error) {
	var modelMembers []*model.Member
	query := applySpecifications(r.db.WithContext(ctx),
		specification.FaceEnrolled{},
		specification.OrderBy{Field: "face_enrolled_at"},
	)

	if err := query.Find(&modelMembers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMembers), nil
}

func (r *MemberRepositoryImpl) UpdateFaceEmbedding(ctx context.Context, isic string, embedding []float32, enrolledAt time.Time) error {
	vec := pgvector.NewVector(embedding)
	return r.db.WithContext(ctx).Model(&model.Member{}).
		Where("isic = ?", isic).
		Updates(map[string]interface{}{
			"face_embedding":   vec,
			"face_enrolled_at": enrolledAt,
			"updated_at":       time.Now(),
		}).Error
}

func (r *MemberRepositoryImpl) UpdateTheme(ctx context.Context, isic string, palette entity.ThemePalette, darkMode bool) error {
	return r.db.WithContext(ctx).Model(&model.Member{}).
		Where("isic = ?", isic).
		Updates(map[string]interface{}{
			"theme_palette":   string(palette),
			"theme_dark_mode": darkMode,
			"updated_at":      time.Now(),
		}).Error
}
