package specification

import "gorm.io/gorm"

// ByIsic filters members by their ISIC number
type ByIsic struct {
	Isic string
}

func (s ByIsic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("isic = ?", s.Isic)
}

// FaceEnrolled keeps only members with a stored face embedding.
// Ordering by enrollment time keeps the gallery scan deterministic.
type FaceEnrolled struct{}

func (s FaceEnrolled) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("face_embedding IS NOT NULL")
}
