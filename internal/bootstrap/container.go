package bootstrap

import (
	"context"
	"log"
	"time"

	"student-guide-be/internal/config"
	"student-guide-be/internal/controller"
	"student-guide-be/internal/pkg/logger"
	"student-guide-be/internal/repository/implementation"
	"student-guide-be/internal/repository/memory"
	redisrepo "student-guide-be/internal/repository/redis"
	"student-guide-be/internal/service"
	"student-guide-be/pkg/llm/factory"

	pkgNats "student-guide-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const autoLearnTopic = "guide.autolearn"

type Container struct {
	// Controllers
	GuideController controller.IGuideController
	AdminController controller.IAdminController

	// Background services (exposed for main.go to run)
	LearnerService service.ILearnerService

	// Infrastructure handles main.go needs for shutdown
	NatsPublisher *pkgNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmTimeout := time.Duration(cfg.Ai.TimeoutSeconds) * time.Second
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OllamaBaseURL,
		llmTimeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

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

	// 5. Repositories
	intentRepo := memory.NewCachedIntentRepository(implementation.NewIntentRepository(db))
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(rdb)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, autoLearnTopic)
	learnerService := service.NewLearnerService(pubSub, autoLearnTopic, intentRepo, sysLogger)

	var eventPub service.EventPublisher
	if natsPub != nil {
		eventPub = natsPub
	}

	guideService := service.NewGuideService(
		intentRepo,
		sessionRepo,
		service.NewKnowledgeSource(knowledgeRepo),
		llmProvider,
		service.LLMTimeouts{Classify: llmTimeout, Generate: llmTimeout},
		publisherService,
		eventPub,
		sysLogger,
	)

	adminService := service.NewAdminService(intentRepo, knowledgeRepo, llmProvider, llmTimeout, sysLogger)

	// 7. Controllers
	return &Container{
		GuideController: controller.NewGuideController(guideService),
		AdminController: controller.NewAdminController(adminService),
		LearnerService:  learnerService,
		NatsPublisher:   natsPub,
	}
}
