package main

import (
	"time"

	"go.uber.org/zap"

	"counsellor/config"
	"counsellor/internal/handler"
	"counsellor/internal/httpserver"
	"counsellor/internal/repository"
	"counsellor/internal/service/auth"
	"counsellor/internal/service/counsellor"
	"counsellor/internal/service/interview"
	"counsellor/internal/service/profile"
	"counsellor/internal/service/tasks"
	"counsellor/internal/service/university"
	"counsellor/internal/stage"
	"counsellor/internal/util"
	"counsellor/pkg/db"
	"counsellor/pkg/logger"
	"counsellor/pkg/mq"
	redisclient "counsellor/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Redis
	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	// Init RabbitMQ Publisher. Events are best-effort; the API still serves
	// without a broker.
	var publisher *mq.Publisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Warn("RabbitMQ unavailable, domain events disabled", zap.Error(err))
		} else {
			defer publisher.Close()
		}
	}

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	profileRepo := repository.NewProfileRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	universityRepo := repository.NewUniversityRepository(dbConn)
	shortlistRepo := repository.NewShortlistRepository(dbConn)
	chatRepo := repository.NewChatRepository(dbConn)
	interviewRepo := repository.NewInterviewRepository(dbConn)

	// Init stage synchronizer with a per-owner advisory lock
	ownerLock := util.NewOwnerLock(rdb, 10*time.Second)
	syncer := stage.NewSynchronizer(dbConn, taskRepo, ownerLock, log)

	// Init Services
	authService := auth.NewService(userRepo, profileRepo, publisher, cfg.JWT.Secret, log)
	profileService := profile.NewService(profileRepo, userRepo, syncer)
	taskService := tasks.NewService(taskRepo, profileRepo, syncer, log)

	scorecard := university.NewScorecardClient(cfg.Scorecard.BaseURL, cfg.Scorecard.APIKey)
	universityService := university.NewService(
		universityRepo, shortlistRepo, profileRepo, syncer, scorecard, rdb, publisher, log,
	)

	llm := counsellor.NewGroqClient(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.APIKey)
	chatService := counsellor.NewService(profileRepo, taskRepo, chatRepo, universityService, llm, log)
	interviewService := interview.NewService(shortlistRepo, profileRepo, interviewRepo, llm, log)

	// Init Handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	taskHandler := handler.NewTaskHandler(taskService, log)
	universityHandler := handler.NewUniversityHandler(universityService)
	chatHandler := handler.NewChatHandler(chatService, log)
	interviewHandler := handler.NewInterviewHandler(interviewService)

	// Router
	router := httpserver.NewRouter(
		authHandler, profileHandler, taskHandler,
		universityHandler, chatHandler, interviewHandler,
		cfg.JWT.Secret,
	)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
