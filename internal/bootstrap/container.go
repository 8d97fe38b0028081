package bootstrap

import (
	"context"
	"log"

	"acadmix-be/internal/config"
	"acadmix-be/internal/controller"
	"acadmix-be/internal/handler"
	"acadmix-be/internal/pkg/logger"
	"acadmix-be/internal/pkg/mailer"
	"acadmix-be/internal/repository/implementation"
	"acadmix-be/internal/repository/memory"
	"acadmix-be/internal/repository/unitofwork"
	"acadmix-be/internal/service"
	"acadmix-be/internal/websocket"
	"acadmix-be/pkg/llm/openaicompat"
	"acadmix-be/pkg/promptfilter"

	pktNats "acadmix-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	ContentController      controller.IContentController
	ChatController         controller.IChatController
	AnnouncementController controller.IAnnouncementController
	AiController           controller.IAiController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	IndexerService service.IIndexerService

	// WebSockets & Notification
	RealtimeHandler *handler.RealtimeHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/realtime.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	llmProvider := openaicompat.NewProvider(cfg.Ai.APIKey, cfg.Ai.BaseURL, cfg.Ai.Model)
	conversationRepo := memory.NewConversationRepository()
	filter := promptfilter.New()

	publisherService := service.NewPublisherService(cfg.App.IndexTopic, pubSub)
	indexerService := service.NewIndexerService(pubSub, cfg.App.IndexTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	userService := service.NewUserService(uowFactory)
	contentService := service.NewContentService(uowFactory, publisherService, natsPub)
	chatService := service.NewChatService(uowFactory, wsHub)
	announcementService := service.NewAnnouncementService(uowFactory, natsPub)
	aiChatService := service.NewAiChatService(uowFactory, conversationRepo, llmProvider, filter, cfg.Ai)
	adminService := service.NewAdminService(uowFactory, sysLogger, natsPub)

	// Typing relays need the chat membership lookup; wired after both sides
	// exist to avoid a construction cycle.
	wsHub.SetParticipantResolver(chatService)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	realtimeHandler := handler.NewRealtimeHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		RealtimeHandler: realtimeHandler,
		WebSocketHub:    wsHub,

		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService, cfg.Upload),
		ContentController:      controller.NewContentController(contentService, cfg.Upload),
		ChatController:         controller.NewChatController(chatService, cfg.Upload),
		AnnouncementController: controller.NewAnnouncementController(announcementService),
		AiController:           controller.NewAiController(aiChatService),
		AdminController:        controller.NewAdminController(adminService),

		IndexerService: indexerService,
	}
}
