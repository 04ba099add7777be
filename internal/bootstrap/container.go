package bootstrap

import (
	"context"

	"notecraft-be/internal/config"
	"notecraft-be/internal/controller"
	"notecraft-be/internal/handler"
	"notecraft-be/internal/pkg/logger"
	"notecraft-be/internal/pkg/serverutils"
	"notecraft-be/internal/repository/memory"
	"notecraft-be/internal/repository/unitofwork"
	"notecraft-be/internal/service"
	"notecraft-be/internal/websocket"
	pktNats "notecraft-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Auth guards every protected route group.
	Auth fiber.Handler

	NoteController    controller.INoteController
	TodoController    controller.ITodoController
	StarredController controller.IExcerptController
	IndexController   controller.IExcerptController
	UserController    controller.IUserController
	OAuthController   controller.IOAuthController

	// Background services, started by main.
	ConsumerService service.IConsumerService
	ActivityService *service.ActivityService

	EventHandler *handler.EventHandler
	WebSocketHub *websocket.Hub

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
	c.Logger = sysLogger

	// In-process event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS is optional: without it events still reach websocket clients.
	var forwarder service.EventForwarder
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
	} else {
		forwarder = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
	} else {
		c.ActivityService = service.NewActivityService(natsSub, eventLogger)
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		sysLogger.Warn("Bootstrap", "Failed to connect to Redis, event stream is single-instance", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	c.WebSocketHub = websocket.NewHub(rdb, eventLogger)

	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, c.WebSocketHub, forwarder, sysLogger)

	identityService := service.NewIdentityService(uowFactory, memory.NewIdentityCache(cfg.Auth.IdentityCacheTTL))
	oauthService := service.NewOAuthService(uowFactory, identityService, cfg.Auth, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)
	todoService := service.NewTodoService(uowFactory, publisherService, sysLogger)
	starredService := service.NewStarredService(uowFactory, publisherService, sysLogger)
	indexService := service.NewIndexService(uowFactory, publisherService, sysLogger)

	c.Auth = serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, identityService)

	c.NoteController = controller.NewNoteController(noteService)
	c.TodoController = controller.NewTodoController(todoService)
	c.StarredController = controller.NewStarredController(starredService)
	c.IndexController = controller.NewIndexController(indexService)
	c.UserController = controller.NewUserController(identityService)
	c.OAuthController = controller.NewOAuthController(oauthService, cfg.App.ClientURL)
	c.EventHandler = handler.NewEventHandler(c.WebSocketHub, eventLogger)

	return c
}

// Start launches the background workers. They stop when ctx is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return err
	}

	if c.ActivityService != nil {
		if err := c.ActivityService.Start(ctx); err != nil {
			c.Logger.Warn("Bootstrap", "Activity log disabled", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
