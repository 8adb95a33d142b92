package service

import (
	"context"
	"time"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/logger"
	"smart-kitchen-be/internal/repository/memory"
	"smart-kitchen-be/pkg/events"
	pktNats "smart-kitchen-be/pkg/nats"
)

type IAuthService interface {
	// LoginDirect authenticates by ISIC number, provisioning the member
	// on first login, and issues a session token.
	LoginDirect(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	memberService  IMemberService
	sessions       *memory.SessionRegistry
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAuthService(
	memberService IMemberService,
	sessions *memory.SessionRegistry,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		memberService:  memberService,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *authService) LoginDirect(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	member, err := s.memberService.GetOrCreate(ctx, req.Isic)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(member.Isic)
	if err != nil {
		return nil, err
	}

	s.publishLogin(ctx, member.Isic, "direct")

	return &dto.LoginResponse{
		Token:  token,
		Member: memberToDTO(member),
	}, nil
}

// publishLogin emits the login event; bus trouble is never a login
// failure.
func (s *authService) publishLogin(ctx context.Context, isic, method string) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeMemberLogin,
		Data: map[string]interface{}{
			"member_isic": isic,
			"method":      method,
			"time":        time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("auth", "failed to publish login event", map[string]interface{}{"error": err.Error()})
	}
}
