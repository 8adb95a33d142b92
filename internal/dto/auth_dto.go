package dto

// LoginRequest is the direct-ID login path. The ISIC format check
// (leading 'S', at least 11 characters) lives here at the edge; the
// core treats the ID as an opaque key.
type LoginRequest struct {
	Isic string `json:"isic" validate:"required,min=11,startswith=S"`
}

type LoginResponse struct {
	Token  string    `json:"token"`
	Member MemberDTO `json:"user"`
}

// EnrollFaceRequest carries a base64-encoded image, with or without a
// data-URI prefix.
type EnrollFaceRequest struct {
	Isic  string `json:"isic" validate:"required,min=11,startswith=S"`
	Image string `json:"image" validate:"required"`
}

type EnrollFaceResponse struct {
	Member MemberDTO `json:"user"`
}

type VerifyFaceRequest struct {
	Image string `json:"image" validate:"required"`
}
