package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"group-decision/internal/api"
	"group-decision/internal/events"
	"group-decision/internal/invitecode"
	"group-decision/internal/repository"
	"group-decision/internal/service"
	"group-decision/pkg/config"
	"group-decision/pkg/db"
	"group-decision/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GlobalConfig

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.ProductionMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.InitDB(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		logger.L.Fatal("Failed to initialize database", zap.Error(err))
	}

	publisher, err := events.CreatePublisher(cfg.Messaging)
	if err != nil {
		logger.L.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer publisher.Close()

	groupRepo := repository.NewGroupRepository(db.DB)
	memberRepo := repository.NewGroupMemberRepository(db.DB)
	propRepo := repository.NewGroupPropertyRepository(db.DB)
	voteRepo := repository.NewVoteRepository(db.DB)

	codes := invitecode.NewRandomGenerator(cfg.Invite.CodeLength)

	if cfg.Log.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Services{
		Memberships: service.NewMembershipService(groupRepo, memberRepo, codes, cfg.Invite.MaxAttempts),
		Nominations: service.NewNominationService(groupRepo, memberRepo, propRepo),
		Votes:       service.NewVoteService(db.DB, memberRepo, propRepo, voteRepo, publisher),
		Users:       repository.NewUserRepository(db.DB),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L.Info("Server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("Server shutdown failed", zap.Error(err))
	}
}
