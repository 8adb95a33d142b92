package entity

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is an exclusive [StartTime, EndTime) slot on one appliance
// for one calendar day. Dates are "YYYY-MM-DD" and times "HH:MM" in the
// appliance's local wall clock, so plain string comparison orders them.
// Cancellation is a one-way status transition; rows are never deleted.
type Reservation struct {
	Id            string
	MemberIsic    string
	Date          string
	StartTime     string
	EndTime       string
	KitchenId     int
	ApplianceId   string
	ApplianceType ApplianceType
	Status        ReservationStatus
	CreatedAt     time.Time
}

// Overlaps reports whether two half-open intervals on the same
// appliance/date collide: s1 < e2 && s2 < e1. Slots that merely touch
// do not overlap.
func (r *Reservation) Overlaps(start, end string) bool {
	return r.StartTime < end && start < r.EndTime
}

// ActiveAt reports whether the reservation grants door access at the
// given wall-clock minute. Both endpoints are inclusive: a slot ending
// exactly now still authorizes.
func (r *Reservation) ActiveAt(date, clock string) bool {
	return r.Status == ReservationStatusConfirmed &&
		r.Date == date &&
		r.StartTime <= clock && clock <= r.EndTime
}
