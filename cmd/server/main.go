package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/venturewayfinder/backend/api/handler"
	"github.com/venturewayfinder/backend/internal/catalog"
	"github.com/venturewayfinder/backend/internal/config"
	"github.com/venturewayfinder/backend/internal/infrastructure/buffer"
	"github.com/venturewayfinder/backend/internal/infrastructure/monitor"
	pgInfra "github.com/venturewayfinder/backend/internal/infrastructure/postgres"
	redisInfra "github.com/venturewayfinder/backend/internal/infrastructure/redis"
	"github.com/venturewayfinder/backend/internal/middleware"
	"github.com/venturewayfinder/backend/internal/router"
	"github.com/venturewayfinder/backend/internal/services"
	"github.com/venturewayfinder/backend/internal/services/lifecycle"
	"github.com/venturewayfinder/backend/pkg/httpcontext"
	"github.com/venturewayfinder/backend/pkg/logger"
	"github.com/venturewayfinder/backend/repository/postgres"
	redisRepo "github.com/venturewayfinder/backend/repository/redis"
	journeyUC "github.com/venturewayfinder/backend/usecase/journey"
	matcherUC "github.com/venturewayfinder/backend/usecase/matcher"
	profileUC "github.com/venturewayfinder/backend/usecase/profile"
	quizUC "github.com/venturewayfinder/backend/usecase/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
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

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path)
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	quizRepo := postgres.NewQuizResultRepository(pool)
	journeyRepo := redisRepo.NewJourneyRepository(redisClient)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		userRepo,
		journeyRepo,
		profileRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	matcherUseCase := matcherUC.New(catalog.Ideas(), zapLogger)
	journeyUseCase := journeyUC.New(journeyRepo, bufferBridge, zapLogger)
	quizUseCase := quizUC.New(quizRepo, zapLogger)
	profileUseCase := profileUC.New(userRepo, profileRepo, bufferBridge, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Ideas:   apiHandler.NewIdeasHandler(matcherUseCase, ctxAdapter, zapLogger),
		Journey: apiHandler.NewJourneyHandler(journeyUseCase, ctxAdapter, zapLogger),
		Quiz:    apiHandler.NewQuizHandler(quizUseCase, ctxAdapter, zapLogger),
		Profile: apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
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
