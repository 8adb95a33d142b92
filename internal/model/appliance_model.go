package model

type Appliance struct {
	Id        string `gorm:"primaryKey"`
	KitchenId int    `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Name      string `gorm:"not null"`
}

func (Appliance) TableName() string {
	return "appliances"
}
