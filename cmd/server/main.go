package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/Shygul22/zenjourney.in-zenaura-main/api/handler"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/config"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/infrastructure/buffer"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/infrastructure/monitor"
	pgInfra "github.com/Shygul22/zenjourney.in-zenaura-main/internal/infrastructure/postgres"
	redisInfra "github.com/Shygul22/zenjourney.in-zenaura-main/internal/infrastructure/redis"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/middleware"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/router"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/services"
	"github.com/Shygul22/zenjourney.in-zenaura-main/internal/services/lifecycle"
	"github.com/Shygul22/zenjourney.in-zenaura-main/pkg/httpcontext"
	"github.com/Shygul22/zenjourney.in-zenaura-main/pkg/logger"
	"github.com/Shygul22/zenjourney.in-zenaura-main/repository/postgres"
	redisRepo "github.com/Shygul22/zenjourney.in-zenaura-main/repository/redis"
	authUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/auth"
	plannerUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/planner"
	settingsUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/settings"
	taskUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/task"
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

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
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
	taskRepo := postgres.NewTaskRepository(pool)
	workdayRepo := postgres.NewWorkdayRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		taskRepo,
		workdayRepo,
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

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, zapLogger)
	taskUseCase := taskUC.New(taskRepo, bufferBridge, zapLogger)
	settingsUseCase := settingsUC.New(workdayRepo, bufferBridge, zapLogger)
	plannerUseCase := plannerUC.New(taskRepo, workdayRepo, plannerUC.Defaults{
		StartTime:    cfg.Planner.DefaultStartTime,
		EndTime:      cfg.Planner.DefaultEndTime,
		BreakMinutes: cfg.Planner.DefaultBreakMinutes,
	}, zapLogger)

	scoreRefresher := services.NewScoreRefresher(taskRepo, plannerUseCase, mon, cfg.Planner.ScoreRefreshEvery, zapLogger)
	scoreRefresher.Start()
	manager.Register("score_refresher", func(ctx context.Context) error {
		scoreRefresher.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.JWT.SessionTTL),
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Plan:    apiHandler.NewPlanHandler(plannerUseCase, ctxAdapter, zapLogger),
		Workday: apiHandler.NewWorkdayHandler(settingsUseCase, ctxAdapter, zapLogger),
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
