package specification

import "gorm.io/gorm"

// OwnedBy filters reservations by owning member
type OwnedBy struct {
	Isic string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("member_isic = ?", s.Isic)
}

// OnDate filters reservations by calendar day ("YYYY-MM-DD")
type OnDate struct {
	Date string
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

// ForAppliance filters reservations by appliance
type ForAppliance struct {
	ApplianceId string
}

func (s ForAppliance) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("appliance_id = ?", s.ApplianceId)
}

// ForKitchen filters reservations by kitchen
type ForKitchen struct {
	KitchenId int
}

func (s ForKitchen) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kitchen_id = ?", s.KitchenId)
}

// WithStatus filters reservations by lifecycle status
type WithStatus struct {
	Status string
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// Overlapping matches reservations whose [start_time, end_time) interval
// collides with the given half-open interval: s1 < e2 AND s2 < e1.
// Touching intervals do not match.
type Overlapping struct {
	StartTime string
	EndTime   string
}

func (s Overlapping) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time < ? AND end_time > ?", s.EndTime, s.StartTime)
}

// SpanningInstant matches reservations covering the given wall-clock
// minute with both endpoints inclusive.
type SpanningInstant struct {
	Clock string
}

func (s SpanningInstant) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_time <= ? AND end_time >= ?", s.Clock, s.Clock)
}
