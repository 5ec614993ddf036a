package main

import (
	"context"
	"log"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/mentorhub/backend/api/handler"
	"github.com/mentorhub/backend/internal/config"
	"github.com/mentorhub/backend/internal/infrastructure/monitor"
	redisInfra "github.com/mentorhub/backend/internal/infrastructure/redis"
	"github.com/mentorhub/backend/internal/middleware"
	"github.com/mentorhub/backend/internal/router"
	"github.com/mentorhub/backend/internal/seed"
	"github.com/mentorhub/backend/internal/services/lifecycle"
	"github.com/mentorhub/backend/internal/suggest"
	"github.com/mentorhub/backend/pkg/httpcontext"
	"github.com/mentorhub/backend/pkg/logger"
	"github.com/mentorhub/backend/pkg/token"
	"github.com/mentorhub/backend/repository"
	boltRepo "github.com/mentorhub/backend/repository/bolt"
	redisRepo "github.com/mentorhub/backend/repository/redis"
	"github.com/mentorhub/backend/usecase"
	assessmentUC "github.com/mentorhub/backend/usecase/assessment"
	authUC "github.com/mentorhub/backend/usecase/auth"
	calendarUC "github.com/mentorhub/backend/usecase/calendar"
	planUC "github.com/mentorhub/backend/usecase/plan"
	rosterUC "github.com/mentorhub/backend/usecase/roster"
	surveyUC "github.com/mentorhub/backend/usecase/survey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Service:  cfg.AppName,
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := boltRepo.Open(cfg.Store.Path)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	manager.RegisterCloser("store", store)

	mentorRepo := boltRepo.NewMentorRepository(store)
	menteeRepo := boltRepo.NewMenteeRepository(store)
	sessionRepo := boltRepo.NewSessionRepository(store)

	// Redis is an optional fast path for the session record; the store
	// stays authoritative when it is absent.
	var redisClient *goRedis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = redisInfra.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, sessions served from store only", zap.Error(err))
			redisClient = nil
		}
	}
	if redisClient != nil {
		manager.RegisterCloser("redis", redisClient)
		sessionRepo = repository.NewMirroredSessionRepository(
			sessionRepo,
			redisRepo.NewSessionRepository(redisClient, cfg.JWT.TTL),
		)
	}

	if cfg.Seed.Enabled {
		if err := seed.Run(appCtx, mentorRepo, menteeRepo, zapLogger); err != nil {
			zapLogger.Fatal("seeding failed", zap.Error(err))
		}
	}

	var suggester usecase.Suggester
	if cfg.Suggest.APIKey != "" {
		suggester = suggest.NewGemini(suggest.Config{
			APIKey:      cfg.Suggest.APIKey,
			Model:       cfg.Suggest.Model,
			BaseURL:     cfg.Suggest.BaseURL,
			Timeout:     cfg.Suggest.Timeout,
			Temperature: cfg.Suggest.Temperature,
		}, zapLogger)
	} else {
		zapLogger.Info("suggestion provider disabled, no api key configured")
	}

	mon := monitor.New(store, redisClient, suggester != nil, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	authUseCase := authUC.New(mentorRepo, menteeRepo, sessionRepo, zapLogger)
	rosterUseCase := rosterUC.New(mentorRepo, menteeRepo, zapLogger)
	surveyUseCase := surveyUC.New(menteeRepo, zapLogger)
	assessmentUseCase := assessmentUC.New(menteeRepo, zapLogger)
	planUseCase := planUC.New(menteeRepo, suggester, zapLogger)
	calendarUseCase := calendarUC.New(menteeRepo, zapLogger)

	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(authUseCase, issuer, ctxAdapter, zapLogger),
		Mentee:     apiHandler.NewMenteeHandler(rosterUseCase, ctxAdapter, zapLogger),
		Survey:     apiHandler.NewSurveyHandler(surveyUseCase, ctxAdapter, zapLogger),
		Assessment: apiHandler.NewAssessmentHandler(assessmentUseCase, ctxAdapter, zapLogger),
		Plan:       apiHandler.NewPlanHandler(planUseCase, ctxAdapter, zapLogger),
		Calendar:   apiHandler.NewCalendarHandler(calendarUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
