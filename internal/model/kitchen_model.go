package model

type Kitchen struct {
	Id            int    `gorm:"primaryKey"`
	KitchenNumber int    `gorm:"not null"`
	Floor         int    `gorm:"not null;index"`
	Name          string `gorm:"not null"`
}

func (Kitchen) TableName() string {
	return "kitchens"
}
