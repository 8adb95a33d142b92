package unitofwork

import (
	"context"

	"smart-kitchen-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MemberRepository() contract.MemberRepository
	KitchenRepository() contract.KitchenRepository
	ApplianceRepository() contract.ApplianceRepository
	ReservationRepository() contract.ReservationRepository
}
