package service

import (
	"fmt"

	"github.com/google/uuid"
)

// ReservationIDGenerator produces reservation identifiers. The scheme is
// injected because the historical one is contentious: it omits the
// appliance, so one member cannot hold two same-time reservations on
// different appliances. Until the product owner rules on that, the
// default preserves observed behavior and the alternative is a wiring
// change.
type ReservationIDGenerator interface {
	Generate(isic, date, start, end string) string
}

// SlotKeyIDGenerator is the historical deterministic scheme:
// "<isic>_<date>_<start>_<end>".
type SlotKeyIDGenerator struct{}

func (SlotKeyIDGenerator) Generate(isic, date, start, end string) string {
	return fmt.Sprintf("%s_%s_%s_%s", isic, date, start, end)
}

// RandomIDGenerator assigns collision-free random identifiers and lifts
// the same-time-bounds restriction.
type RandomIDGenerator struct{}

func (RandomIDGenerator) Generate(isic, date, start, end string) string {
	return uuid.NewString()
}
