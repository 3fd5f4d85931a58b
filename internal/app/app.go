package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"epicevents/internal/auth"
	"epicevents/internal/config"
	"epicevents/internal/handlers"
	"epicevents/internal/logger"
	"epicevents/internal/middleware"
	"epicevents/internal/models"
	"epicevents/internal/repositories"
	"epicevents/internal/routes"
	"epicevents/internal/services"
	"epicevents/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstManager(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first manager user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate keeps the schema in sync with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Client{},
		&models.Contract{},
		&models.Event{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		SecretKey: cfg.JWT.Secret,
		Duration:  cfg.AccessTokenTTL(),
	})
	if err != nil {
		logger.Fatal("Failed to initialize token service", "error", err)
	}

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenService) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	clientRepo := repositories.NewClientRepository(gormDB)
	contractRepo := repositories.NewContractRepository(gormDB)
	eventRepo := repositories.NewEventRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, tokens, cfg.RefreshTokenTTL()),
		ClientService:   services.NewClientService(clientRepo, eventRepo, userRepo),
		ContractService: services.NewContractService(contractRepo, clientRepo),
		EventService:    services.NewEventService(eventRepo, contractRepo, clientRepo, userRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, tokens *auth.TokenService) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(container, tokens, customValidator)
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// SeedFirstManager creates the bootstrap manager account so the very
// first sign-in is possible on an empty database.
func SeedFirstManager(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstManagerUsername
	password := cfg.FirstManagerPassword

	if username == "" || password == "" {
		logger.Warn("FIRST_MANAGER_USERNAME or FIRST_MANAGER_PASSWORD is not set. Skipping manager seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	managers, err := userRepo.CountByRole(models.UserRoleManager)
	if err != nil {
		return fmt.Errorf("failed to count manager users: %w", err)
	}
	if managers > 0 {
		logger.Info("A manager user already exists. Skipping seeding.")
		return nil
	}

	logger.Warn("No manager user found. Creating first manager...", "username", username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash manager password: %w", err)
	}

	newManager := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleManager,
		IsAdmin:      true,
	}
	if err := db.Create(newManager).Error; err != nil {
		return fmt.Errorf("failed to create manager user: %w", err)
	}

	logger.Info("Successfully created first manager user", "username", username)
	return nil
}
