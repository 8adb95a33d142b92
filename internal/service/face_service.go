package service

import (
	"context"
	"errors"
	"time"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/pkg/logger"
	"smart-kitchen-be/internal/repository/memory"
	"smart-kitchen-be/internal/repository/unitofwork"
	"smart-kitchen-be/pkg/events"
	"smart-kitchen-be/pkg/facerec"
	pktNats "smart-kitchen-be/pkg/nats"
)

type IFaceService interface {
	// Enroll stores the face embedding for the member, overwriting any
	// prior vector. The member is provisioned if unknown.
	Enroll(ctx context.Context, isic string, image []byte) (*dto.EnrollFaceResponse, error)

	// VerifyLogin resolves the face against the gallery and issues a
	// session on success.
	VerifyLogin(ctx context.Context, image []byte) (*dto.LoginResponse, error)

	// Identify resolves the face to a member without side effects.
	// Failure to match is a uniform authentication denial that carries
	// no similarity information.
	Identify(ctx context.Context, image []byte) (*entity.Member, error)
}

type faceService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       facerec.Provider
	threshold      float64
	memberService  IMemberService
	sessions       *memory.SessionRegistry
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewFaceService(
	uowFactory unitofwork.RepositoryFactory,
	provider facerec.Provider,
	threshold float64,
	memberService IMemberService,
	sessions *memory.SessionRegistry,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IFaceService {
	return &faceService{
		uowFactory:     uowFactory,
		provider:       provider,
		threshold:      threshold,
		memberService:  memberService,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// extract invokes the embedding collaborator once, synchronously, with
// no retries. A missing face is an input-quality failure, distinct from
// any authentication outcome.
func (s *faceService) extract(ctx context.Context, image []byte) ([]float32, error) {
	vector, err := s.provider.Extract(ctx, image)
	if err != nil {
		if errors.Is(err, facerec.ErrNoFace) {
			return nil, apperror.UpstreamSignal("no face detected in image", err)
		}
		return nil, err
	}
	return vector, nil
}

func (s *faceService) Enroll(ctx context.Context, isic string, image []byte) (*dto.EnrollFaceResponse, error) {
	vector, err := s.extract(ctx, image)
	if err != nil {
		return nil, err
	}

	member, err := s.memberService.GetOrCreate(ctx, isic)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	enrolledAt := time.Now()
	if err := uow.MemberRepository().UpdateFaceEmbedding(ctx, isic, vector, enrolledAt); err != nil {
		return nil, err
	}

	member.FaceEmbedding = vector
	member.FaceEnrolledAt = &enrolledAt

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type:       events.TypeFaceEnrolled,
			Data:       map[string]interface{}{"member_isic": isic},
			OccurredAt: enrolledAt,
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("face", "failed to publish enrollment event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.EnrollFaceResponse{Member: memberToDTO(member)}, nil
}

func (s *faceService) Identify(ctx context.Context, image []byte) (*entity.Member, error) {
	vector, err := s.extract(ctx, image)
	if err != nil {
		return nil, err
	}
	return s.identifyVector(ctx, vector)
}

func (s *faceService) identifyVector(ctx context.Context, probe []float32) (*entity.Member, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	gallery, err := uow.MemberRepository().FindEnrolled(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]facerec.Candidate, 0, len(gallery))
	byIsic := make(map[string]*entity.Member, len(gallery))
	for _, member := range gallery {
		candidates = append(candidates, facerec.Candidate{
			Key:    member.Isic,
			Vector: member.FaceEmbedding,
		})
		byIsic[member.Isic] = member
	}

	matcher := facerec.NewLinearMatcher(candidates)
	key, similarity := matcher.Match(probe)
	if key == "" || similarity < s.threshold {
		return nil, apperror.Authentication("access denied")
	}

	return byIsic[key], nil
}

func (s *faceService) VerifyLogin(ctx context.Context, image []byte) (*dto.LoginResponse, error) {
	member, err := s.Identify(ctx, image)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(member.Isic)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeMemberLogin,
			Data: map[string]interface{}{
				"member_isic": member.Isic,
				"method":      "face",
				"time":        time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("face", "failed to publish login event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.LoginResponse{
		Token:  token,
		Member: memberToDTO(member),
	}, nil
}
