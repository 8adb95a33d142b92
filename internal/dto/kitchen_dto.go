package dto

type KitchenResponse struct {
	Id              int              `json:"id"`
	KitchenNumber   int              `json:"kitchen_number"`
	Floor           int              `json:"floor"`
	Name            string           `json:"name"`
	ApplianceCounts map[string]int64 `json:"appliance_counts"`
}

type ApplianceResponse struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}
