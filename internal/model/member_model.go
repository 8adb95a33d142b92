package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type Member struct {
	Isic           string           `gorm:"primaryKey"`
	Name           string           `gorm:"not null"`
	FaceEmbedding  *pgvector.Vector `gorm:"type:vector(512)"` // facenet InceptionResnetV1 embeddings are 512-dimensional
	FaceEnrolledAt *time.Time       `gorm:"index"`
	ThemePalette   string           `gorm:"default:pink"`
	ThemeDarkMode  bool             `gorm:"default:false"`
	CreatedAt      time.Time        `gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "members"
}
