package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/arcuspath/backend/docs"

	"github.com/arcuspath/backend/bootstrap"
	"github.com/arcuspath/backend/configs"
	"github.com/arcuspath/backend/database"
	"github.com/arcuspath/backend/internal/handlers"
	"github.com/arcuspath/backend/internal/logger"
	"github.com/arcuspath/backend/internal/middleware"
	"github.com/arcuspath/backend/internal/repository"
	"github.com/arcuspath/backend/internal/routes"
	"github.com/arcuspath/backend/internal/search"
	"github.com/arcuspath/backend/services"
)

// @title        ArcusPath API
// @version      1.0
// @description  Directory and trust-ranking API connecting LGBTQIA+ community members with vetted providers.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := configs.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	var (
		providerRepo repository.ProviderRepository
		vouchRepo    repository.VouchRepository
		referralRepo repository.ReferralRepository
		userRepo     repository.UserRepository
	)

	if cfg.MongoURI != "" {
		client, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			if err := database.DisconnectMongo(client); err != nil {
				log.Error().Err(err).Msg("mongo disconnect failed")
			}
		}()
		db := client.Database(cfg.DBName)

		ctx := context.Background()
		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("ensure indexes failed")
		}
		if cfg.SeedData {
			if err := bootstrap.SeedProviders(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("seed failed")
			}
		}

		providerRepo = repository.NewMongoProviderRepo(db)
		vouchRepo = repository.NewMongoVouchRepo(db)
		referralRepo = repository.NewMongoReferralRepo(db)
		userRepo = repository.NewMongoUserRepo(db)
		log.Info().Str("db", cfg.DBName).Msg("using mongodb storage")
	} else {
		// no MONGO_URI: run on the in-memory seed directory
		providerRepo = repository.NewMemoryProviderRepo(bootstrap.SampleProviders())
		vouchRepo = repository.NewMemoryVouchRepo()
		referralRepo = repository.NewMemoryReferralRepo()
		userRepo = repository.NewMemoryUserRepo(nil)
		log.Warn().Msg("MONGO_URI not set, using in-memory seed data")
	}

	searchSvc := search.NewService(providerRepo)

	app := fiber.New()

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(middleware.JWT(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Search:       handlers.NewSearchHandlers(searchSvc, providerRepo),
		Applications: handlers.NewApplicationHandlers(services.NewApplicationService(providerRepo, log)),
		Moderation:   handlers.NewModerationHandlers(services.NewModerationService(providerRepo, log)),
		Vouches:      handlers.NewVouchHandlers(services.NewVouchService(providerRepo, vouchRepo, log)),
		Referrals:    handlers.NewReferralHandlers(services.NewReferralService(referralRepo, log)),
		Auth:         handlers.NewAuthHandlers(services.NewAuthService(userRepo, cfg.JWTSecret)),
	})

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
