package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gitcard/internal/config"
	"github.com/gitcard/internal/db"
	"github.com/gitcard/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := db.Init(cfg.DatabasePath); err != nil {
		sugar.Fatalw("failed to initialize database", "err", err)
	}

	r, api := router.Setup(db.DB, cfg, sugar)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go api.Stats().RunSyncLoop(ctx, cfg.StatsSyncInterval)

	sugar.Infow("starting server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		sugar.Fatalw("failed to run server", "err", err)
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
