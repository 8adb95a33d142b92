package contract

import (
	"context"
	"time"

	"smart-kitchen-be/internal/entity"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	Update(ctx context.Context, member *entity.Member) error
	FindByIsic(ctx context.Context, isic string) (*entity.Member, error)

	// FindEnrolled returns the gallery: every member with a stored face
	// embedding, ordered by enrollment time so linear matching is
	// deterministic.
	FindEnrolled(ctx context.Context) ([]*entity.Member, error)

	UpdateFaceEmbedding(ctx context.Context, isic string, embedding []float32, enrolledAt time.Time) error
	UpdateTheme(ctx context.Context, isic string, palette entity.ThemePalette, darkMode bool) error
}
