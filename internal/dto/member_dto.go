package dto

// MemberDTO mirrors the user object the frontend consumes. Field names
// stay snake_case to match the existing clients.
type MemberDTO struct {
	Isic          string `json:"isic"`
	Name          string `json:"name"`
	FaceEnrolled  bool   `json:"face_enrolled"`
	ThemePalette  string `json:"theme_palette"`
	ThemeDarkMode bool   `json:"theme_dark_mode"`
}

type UpdateThemeRequest struct {
	ThemePalette  string `json:"theme_palette" validate:"required,oneof=pink blue green purple"`
	ThemeDarkMode bool   `json:"theme_dark_mode"`
}
