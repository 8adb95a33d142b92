package model

import (
	"time"
)

type Reservation struct {
	Id            string    `gorm:"primaryKey"`
	MemberIsic    string    `gorm:"not null;index"`
	Date          string    `gorm:"not null;index:idx_reservations_slot"`
	StartTime     string    `gorm:"not null"`
	EndTime       string    `gorm:"not null"`
	KitchenId     int       `gorm:"not null"`
	ApplianceId   string    `gorm:"not null;index:idx_reservations_slot"`
	ApplianceType string    `gorm:"not null"`
	Status        string    `gorm:"not null;default:confirmed;index:idx_reservations_slot"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Reservation) TableName() string {
	return "reservations"
}
