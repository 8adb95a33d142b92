package entity

import "fmt"

type ApplianceType string

const (
	ApplianceTypeMicrowave  ApplianceType = "microwave"
	ApplianceTypeOven       ApplianceType = "oven"
	ApplianceTypeStoveLeft  ApplianceType = "stove_left"
	ApplianceTypeStoveRight ApplianceType = "stove_right"
)

// Kitchen is one shared kitchen per floor. The inventory is fixed at
// provisioning time.
type Kitchen struct {
	Id            int
	KitchenNumber int
	Floor         int
	Name          string
}

// Appliance belongs to exactly one kitchen and is immutable after
// provisioning.
type Appliance struct {
	Id        string // e.g. "k3-oven3"
	KitchenId int
	Type      ApplianceType
	Name      string
}

// Floors covered by the building. One kitchen per floor.
const (
	FloorMin = 1
	FloorMax = 7
)

// ApplianceBlueprint is one entry of the fixed per-kitchen inventory.
type ApplianceBlueprint struct {
	Type ApplianceType
	Name string
}

// StandardAppliances is the inventory every kitchen is provisioned
// with, in catalog order. Order matters: appliance ids encode the
// 1-based position in this list.
var StandardAppliances = []ApplianceBlueprint{
	{Type: ApplianceTypeMicrowave, Name: "Microwave 1"},
	{Type: ApplianceTypeMicrowave, Name: "Microwave 2"},
	{Type: ApplianceTypeOven, Name: "Oven"},
	{Type: ApplianceTypeStoveLeft, Name: "Stove Left"},
	{Type: ApplianceTypeStoveRight, Name: "Stove Right"},
}

func KitchenName(floor int) string {
	return fmt.Sprintf("Kitchen Floor %d", floor)
}

// ApplianceID builds the stable appliance id, e.g. "k3-oven3" for the
// third catalog entry on floor 3.
func ApplianceID(floor int, applianceType ApplianceType, position int) string {
	return fmt.Sprintf("k%d-%s%d", floor, applianceType, position)
}
