package service

import (
	"context"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/repository/unitofwork"
)

type IMemberService interface {
	GetOrCreate(ctx context.Context, isic string) (*entity.Member, error)
	UpdateTheme(ctx context.Context, isic string, req *dto.UpdateThemeRequest) (*dto.MemberDTO, error)
}

type memberService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMemberService(uowFactory unitofwork.RepositoryFactory) IMemberService {
	return &memberService{
		uowFactory: uowFactory,
	}
}

func memberToDTO(member *entity.Member) dto.MemberDTO {
	return dto.MemberDTO{
		Isic:          member.Isic,
		Name:          member.Name,
		FaceEnrolled:  member.FaceEnrolled(),
		ThemePalette:  string(member.ThemePalette),
		ThemeDarkMode: member.ThemeDarkMode,
	}
}

// GetOrCreate provisions a member on first contact. New members get a
// default display name derived from the ISIC and the default theme.
func (s *memberService) GetOrCreate(ctx context.Context, isic string) (*entity.Member, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().FindByIsic(ctx, isic)
	if err != nil {
		return nil, err
	}
	if member != nil {
		return member, nil
	}

	member = &entity.Member{
		Isic:         isic,
		Name:         entity.DefaultName(isic),
		ThemePalette: entity.ThemePalettePink,
	}
	if err := uow.MemberRepository().Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) UpdateTheme(ctx context.Context, isic string, req *dto.UpdateThemeRequest) (*dto.MemberDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member, err := uow.MemberRepository().FindByIsic(ctx, isic)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NotFound("member not found")
	}

	palette := entity.ThemePalette(req.ThemePalette)
	if err := uow.MemberRepository().UpdateTheme(ctx, isic, palette, req.ThemeDarkMode); err != nil {
		return nil, err
	}

	member.ThemePalette = palette
	member.ThemeDarkMode = req.ThemeDarkMode
	result := memberToDTO(member)
	return &result, nil
}
