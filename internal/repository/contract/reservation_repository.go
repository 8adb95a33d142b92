package contract

import (
	"context"

	"smart-kitchen-be/internal/entity"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)

	// FindConfirmed lists confirmed reservations for one kitchen and
	// date, ordered by appliance then start time.
	FindConfirmed(ctx context.Context, kitchenID int, date string) ([]*entity.Reservation, error)

	// CountOverlapping counts confirmed reservations on the appliance and
	// date whose half-open interval collides with [start, end).
	CountOverlapping(ctx context.Context, applianceID, date, start, end string) (int64, error)

	// CountActiveAt counts the member's confirmed reservations spanning
	// the given minute of the given day, endpoints inclusive.
	CountActiveAt(ctx context.Context, isic, date, clock string) (int64, error)

	// ListByOwner returns all of a member's reservations, newest first.
	ListByOwner(ctx context.Context, isic string) ([]*entity.Reservation, error)

	UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) error
}
