package di

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/infrastructure/postgres"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/interfaces/web/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // optional, preferred session backend

	// Sessions
	SessionStorage fiber.Storage
	SessionStore   *session.Store

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService

	dbSessions *postgres.SessionStore
	scheduler  *gocron.Scheduler
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initSessions()
	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional; sessions degrade to the database store without it.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, using database sessions", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	return nil
}

func (c *Container) initSessions() {
	if c.RedisClient != nil {
		c.SessionStorage = redispkg.NewSessionStore(c.RedisClient)
		logger.Info("Sessions backed by redis")
	} else {
		c.dbSessions = postgres.NewSessionStore(c.DB)
		c.SessionStorage = c.dbSessions

		// Redis expires sessions on its own; the database store needs a
		// nightly sweep.
		c.scheduler = gocron.NewScheduler(time.UTC)
		c.scheduler.Cron("0 3 * * *").Do(func() {
			n, err := c.dbSessions.Cleanup()
			if err != nil {
				logger.Error("Session cleanup failed", "error", err)
				return
			}
			logger.Info("Expired sessions swept", "count", n)
		})
		c.scheduler.StartAsync()
		logger.Info("Sessions backed by database, sweep scheduled")
	}

	c.SessionStore = session.New(session.Config{
		Storage:        c.SessionStorage,
		Expiration:     time.Duration(c.Config.Session.MaxAge) * time.Second,
		KeyLookup:      "cookie:" + c.Config.Session.CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   c.Config.IsProduction(),
	})
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)
}

// GetHandlerServices returns the service bundle the web layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:  c.UserService,
		TaskService:  c.TaskService,
		SessionStore: c.SessionStore,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}
