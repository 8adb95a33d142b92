package dto

// CreateReservationRequest books one slot. Times are wall-clock "HH:MM"
// and the date is "YYYY-MM-DD"; format is enforced here so the services
// can rely on lexical comparison.
type CreateReservationRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string `json:"endTime" validate:"required,datetime=15:04"`
	KitchenId   int    `json:"kitchenId" validate:"required"`
	ApplianceId string `json:"applianceId" validate:"required"`
}

type KitchenSummary struct {
	Id            int `json:"id"`
	Floor         int `json:"floor"`
	KitchenNumber int `json:"kitchen_number"`
}

type ApplianceSummary struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type ReservationResponse struct {
	Id            string            `json:"id"`
	Date          string            `json:"date"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	KitchenId     int               `json:"kitchenId"`
	ApplianceId   string            `json:"applianceId"`
	ApplianceType string            `json:"applianceType"`
	Status        string            `json:"status"`
	Kitchen       *KitchenSummary   `json:"kitchen,omitempty"`
	Appliance     *ApplianceSummary `json:"appliance,omitempty"`
}
