package service

import (
	"context"
	"time"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/repository/unitofwork"
)

// IAccessService decides whether a face at the door belongs to a member
// with a reservation running right now.
type IAccessService interface {
	CheckDoorAccess(ctx context.Context, image []byte, now time.Time) (*dto.AccessCheckResponse, error)
}

type accessService struct {
	faceService IFaceService
	uowFactory  unitofwork.RepositoryFactory
	audit       IAuditService
}

func NewAccessService(
	faceService IFaceService,
	uowFactory unitofwork.RepositoryFactory,
	audit IAuditService,
) IAccessService {
	return &accessService{
		faceService: faceService,
		uowFactory:  uowFactory,
		audit:       audit,
	}
}

func (s *accessService) CheckDoorAccess(ctx context.Context, image []byte, now time.Time) (*dto.AccessCheckResponse, error) {
	member, err := s.faceService.Identify(ctx, image)
	if err != nil {
		if apperror.IsKind(err, apperror.KindAuthentication) {
			// An unrecognized face is a denial, not an error: the door
			// controller only ever sees authorized true/false.
			s.record(ctx, "", false, "face not recognized", now)
			return &dto.AccessCheckResponse{Authorized: false}, nil
		}
		return nil, err
	}

	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	uow := s.uowFactory.NewUnitOfWork(ctx)
	active, err := uow.ReservationRepository().CountActiveAt(ctx, member.Isic, date, clock)
	if err != nil {
		return nil, err
	}

	if active == 0 {
		s.record(ctx, member.Isic, false, "no active reservation", now)
		return &dto.AccessCheckResponse{Authorized: false}, nil
	}

	s.record(ctx, member.Isic, true, "active reservation", now)
	return &dto.AccessCheckResponse{Authorized: true}, nil
}

func (s *accessService) record(ctx context.Context, isic string, authorized bool, reason string, now time.Time) {
	if s.audit == nil {
		return
	}
	s.audit.RecordAccess(ctx, dto.AccessAuditMessage{
		MemberIsic: isic,
		Authorized: authorized,
		Reason:     reason,
		CheckedAt:  now,
	})
}
