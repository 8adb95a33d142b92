package entity

import (
	"time"
)

type ThemePalette string

const (
	ThemePalettePink   ThemePalette = "pink"
	ThemePaletteBlue   ThemePalette = "blue"
	ThemePaletteGreen  ThemePalette = "green"
	ThemePalettePurple ThemePalette = "purple"
)

// Member is a facility member keyed by ISIC number. Members are created
// on first login or first face enrollment and never deleted.
type Member struct {
	Isic          string
	Name          string
	FaceEmbedding []float32 // nil until enrolled; unit-normalized, produced externally
	FaceEnrolledAt *time.Time
	ThemePalette  ThemePalette
	ThemeDarkMode bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m *Member) FaceEnrolled() bool {
	return len(m.FaceEmbedding) > 0
}

// DefaultName derives the provisioning display name from the ISIC
// number, e.g. "User 1234".
func DefaultName(isic string) string {
	if len(isic) < 4 {
		return "User " + isic
	}
	return "User " + isic[len(isic)-4:]
}
