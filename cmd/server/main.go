package main

import (
	"go.uber.org/zap"

	"github.com/naveensdev/portfolio-api/adapters/event"
	httpAdapter "github.com/naveensdev/portfolio-api/adapters/http"
	"github.com/naveensdev/portfolio-api/adapters/notification"
	"github.com/naveensdev/portfolio-api/adapters/persistence"
	contactUC "github.com/naveensdev/portfolio-api/internal/application/usecase/contact"
	contentUC "github.com/naveensdev/portfolio-api/internal/application/usecase/content"
	portfolioUC "github.com/naveensdev/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/naveensdev/portfolio-api/internal/application/usecase/profile"
	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("Starting portfolio API server", zap.String("env", cfg.App.Env))

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Optional subsystems decide configured/unconfigured once, here.
	var cache portfolioUC.Cache
	if cfg.CacheEnabled() {
		redisClient, err := persistence.NewRedisClient(cfg, log)
		if err != nil {
			log.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		cache = persistence.NewRedisCache(redisClient)
	} else {
		log.Info("Redis not configured, portfolio cache disabled")
	}

	var publisher contact.EventPublisher
	if cfg.EventsEnabled() {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, log)
		if err != nil {
			log.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		log.Info("Kafka not configured, contact events disabled")
	}

	mailer := notification.NewSMTPMailer(cfg, log)

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, log)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, log)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, log)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, log)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, log)

	// Use cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	contentUseCase := contentUC.NewContentUseCase(educationRepo, experienceRepo, projectRepo, skillRepo, certificationRepo)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(
		profileRepo, educationRepo, experienceRepo, projectRepo, skillRepo, certificationRepo,
		cache, cfg.Cache.TTL, log,
	)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(contactRepo, mailer, publisher, log)

	// HTTP
	contentHandler := httpAdapter.NewContentHandler(profileUseCase, contentUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase)
	contactHandler := httpAdapter.NewContactHandler(submitContactUseCase)

	router := httpAdapter.NewRouter(cfg, log, contentHandler, portfolioHandler, contactHandler)

	log.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("Cannot run server", err)
	}
}
