package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"judge_api/internal/api"
	"judge_api/internal/app/service"
	"judge_api/internal/domain/repository"
	"judge_api/internal/platform/config"
	"judge_api/internal/platform/database"
	"judge_api/internal/platform/logging"
	"judge_api/internal/platform/queue"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "judge-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration
	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()
	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Caller: cfg.LogCaller})
	if err != nil {
		return err
	}
	if !cfg.EnvFileLoaded {
		log.Info("no env file found, using environment and defaults")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Database
	db, err := database.Connect(ctx, database.Options{
		ConnStr:         cfg.DBConnStr,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("database connected")

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("database schema applied")
	}

	// 3. Initialize Redis, only when a judge consumer is configured
	var judgeQueue service.JudgeQueue
	if cfg.RedisAddr != "" {
		rdb, err := queue.ConnectRedis(ctx, queue.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		redisQueue := queue.NewRedisJudgeQueue(rdb, cfg.JudgeQueueName)
		pending, err := redisQueue.Len(ctx)
		if err != nil {
			return err
		}
		judgeQueue = redisQueue
		log.WithFields(logrus.Fields{
			"addr":    cfg.RedisAddr,
			"queue":   cfg.JudgeQueueName,
			"pending": pending,
		}).Info("judge queue enabled")
	} else {
		log.Warn("REDIS_ADDR not set, submissions will not be handed to a judge")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	contestRepo := repository.NewPgContestRepository(db)
	problemRepo := repository.NewPgProblemRepository(db)
	submissionRepo := repository.NewPgSubmissionRepository(db)

	// 5. Initialize Services
	services := api.Services{
		Auth:        service.NewAuthService(userRepo, log),
		Contests:    service.NewContestService(contestRepo, problemRepo, nil),
		Problems:    service.NewProblemService(problemRepo),
		Submissions: service.NewSubmissionService(submissionRepo, judgeQueue, cfg.SubmitterUserID, log),
	}

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(services, log, api.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("could not listen on %s: %w", server.Addr, err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}
