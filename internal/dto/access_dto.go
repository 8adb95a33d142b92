package dto

import "time"

// AccessCheckResponse is everything the door controller is told.
// Identity details never leave the server on this path.
type AccessCheckResponse struct {
	Authorized bool `json:"authorized"`
}

// AccessAuditMessage is the internal audit record for one door check.
// It carries the resolved identity for the server-side trail only.
type AccessAuditMessage struct {
	MemberIsic string    `json:"member_isic,omitempty"`
	Authorized bool      `json:"authorized"`
	Reason     string    `json:"reason"`
	CheckedAt  time.Time `json:"checked_at"`
}
