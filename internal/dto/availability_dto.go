package dto

type AvailabilityQuery struct {
	Date    string `query:"date" validate:"required,datetime=2006-01-02"`
	Kitchen int    `query:"kitchen" validate:"required"`
}

// ReservationInterval is one taken slot, exposed without owner identity.
type ReservationInterval struct {
	Id        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ApplianceAvailability struct {
	ApplianceId   string                `json:"applianceId"`
	ApplianceType string                `json:"applianceType"`
	ApplianceName string                `json:"applianceName"`
	Reservations  []ReservationInterval `json:"reservations"`
}

type OperatingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	Date              string                  `json:"date"`
	KitchenId         int                     `json:"kitchenId"`
	OperatingHours    OperatingHours          `json:"operatingHours"`
	MinDuration       int                     `json:"minDuration"`
	MaxDuration       int                     `json:"maxDuration"`
	Appliances        []ApplianceAvailability `json:"appliances"`
	TotalReservations int                     `json:"totalReservations"`
}
