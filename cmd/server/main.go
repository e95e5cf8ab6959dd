package main

import (
	"log"

	"github.com/lnbfans/courtside/internal/config"
	"github.com/lnbfans/courtside/internal/database"
	"github.com/lnbfans/courtside/internal/handler"
	"github.com/lnbfans/courtside/internal/middleware"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/router"
	"github.com/lnbfans/courtside/internal/service"
	"github.com/lnbfans/courtside/internal/session"
	"github.com/lnbfans/courtside/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	redisOpt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpt)
	defer redisClient.Close()

	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	lineupRepo := repository.NewLineupRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, sessions)
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo)
	playerService := service.NewPlayerService(playerRepo)
	coachService := service.NewCoachService(coachRepo)
	articleService := service.NewArticleService(articleRepo)
	eventService := service.NewEventService(eventRepo)
	profileService := service.NewProfileService(userRepo, teamRepo, playerRepo, lineupRepo)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
		BlockTime:   cfg.RateLimitBlockTime,
	})

	engine := router.New(router.Deps{
		Cfg:         cfg,
		AuthService: authService,
		RateLimiter: rateLimiter,

		Site:    handler.NewSiteHandler(articleService, eventService, teamService),
		Auth:    handler.NewAuthHandler(authService, cfg.IsProduction()),
		Team:    handler.NewTeamHandler(teamService),
		Player:  handler.NewPlayerHandler(playerService),
		Coach:   handler.NewCoachHandler(coachService),
		Article: handler.NewArticleHandler(articleService),
		Event:   handler.NewEventHandler(eventService),
		Profile: handler.NewProfileHandler(profileService, playerService),
		User:    handler.NewUserHandler(userService),
	})

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := engine.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
