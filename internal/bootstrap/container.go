package bootstrap

import (
	"log"

	"smart-kitchen-be/internal/config"
	"smart-kitchen-be/internal/controller"
	"smart-kitchen-be/internal/pkg/logger"
	"smart-kitchen-be/internal/repository/memory"
	"smart-kitchen-be/internal/repository/unitofwork"
	"smart-kitchen-be/internal/service"
	"smart-kitchen-be/pkg/facerec"

	pktNats "smart-kitchen-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	FaceController        controller.IFaceController
	KitchenController     controller.IKitchenController
	ReservationController controller.IReservationController
	MemberController      controller.IMemberController
	AccessController      controller.IAccessController

	// Session registry, exposed so the server can build the middleware
	Sessions *memory.SessionRegistry

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// In-memory session registry
	sessions := memory.NewSessionRegistry()

	// Embedding sidecar
	faceProvider := facerec.NewHTTPProvider(cfg.Face.ProviderURL)
	log.Printf("[INFO] Using face embedding provider at %s", cfg.Face.ProviderURL)

	// Audit trail gets its own log file, away from request logs
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	auditService := service.NewAuditService(pubSub, cfg.App.AccessAuditTopic, auditLogger, sysLogger)

	// 3. Services
	memberService := service.NewMemberService(uowFactory)
	authService := service.NewAuthService(memberService, sessions, natsPub, sysLogger)
	faceService := service.NewFaceService(
		uowFactory,
		faceProvider,
		cfg.Face.MatchThreshold,
		memberService,
		sessions,
		natsPub,
		sysLogger,
	)
	kitchenService := service.NewKitchenService(uowFactory)
	availabilityService := service.NewAvailabilityService(uowFactory, cfg.Booking)
	reservationService := service.NewReservationService(
		uowFactory,
		service.SlotKeyIDGenerator{},
		natsPub,
		sysLogger,
	)
	accessService := service.NewAccessService(faceService, uowFactory, auditService)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		FaceController:        controller.NewFaceController(faceService),
		KitchenController:     controller.NewKitchenController(kitchenService, availabilityService),
		ReservationController: controller.NewReservationController(reservationService),
		MemberController:      controller.NewMemberController(memberService),
		AccessController:      controller.NewAccessController(accessService),
		Sessions:              sessions,
		AuditService:          auditService,
	}
}
