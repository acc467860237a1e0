package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"celebrity-connect/internal/config"
	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/handler"
	"celebrity-connect/internal/middleware"
	"celebrity-connect/internal/repository"
	"celebrity-connect/internal/repository/memory"
	"celebrity-connect/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	repos := buildRepositories(cfg)
	if err := bootstrapAdmin(repos, cfg); err != nil {
		log.Printf("Warning: Failed to provision admin account: %v", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	handler.SetupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildRepositories connects to Postgres when configured, otherwise falls
// back to the in-memory store. The fallback is best-effort: no real
// transactions, no referential integrity.
func buildRepositories(cfg *config.Config) *repository.Repositories {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store (data will not persist)")
		return memory.NewRepositories()
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to database: %v, using in-memory store", err)
		return memory.NewRepositories()
	}

	return repository.NewRepositories(db)
}

// bootstrapAdmin provisions the seed admin account named by ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD. An existing account is promoted instead of
// recreated.
func bootstrapAdmin(repos *repository.Repositories, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()

	existing, err := repos.User.GetByUsername(ctx, cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role == string(domain.RoleAdmin) {
			return nil
		}
		return repos.User.AssignRole(ctx, existing.ID, string(domain.RoleAdmin))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.New(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         string(domain.RoleAdmin),
	}
	if err := repos.User.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Provisioned admin account %q", cfg.AdminUsername)
	return nil
}
