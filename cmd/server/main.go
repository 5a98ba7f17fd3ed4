package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/relatecrm/backend/api/handler"
	"github.com/relatecrm/backend/internal/config"
	"github.com/relatecrm/backend/internal/export"
	"github.com/relatecrm/backend/internal/filetree"
	"github.com/relatecrm/backend/internal/monitor"
	"github.com/relatecrm/backend/internal/router"
	"github.com/relatecrm/backend/internal/seed"
	"github.com/relatecrm/backend/internal/services/lifecycle"
	"github.com/relatecrm/backend/pkg/httpcontext"
	"github.com/relatecrm/backend/pkg/logger"
	"github.com/relatecrm/backend/repository/memory"
	entityUC "github.com/relatecrm/backend/usecase/entity"
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

	store := memory.New()
	if err := seed.Load(store, cfg.Seed.Enabled); err != nil {
		zapLogger.Fatal("seed failed", zap.Error(err))
	}
	zapLogger.Info("entity store ready",
		zap.Strings("entities", store.Entities()),
		zap.Bool("demo_data", cfg.Seed.Enabled),
	)

	treeStore, err := filetree.Open(cfg.FileTree.Path)
	if err != nil {
		zapLogger.Fatal("failed to open filetree store", zap.Error(err))
	}
	manager.Register("filetree", func(ctx context.Context) error {
		return treeStore.Close()
	})

	mon := monitor.New(store, treeStore, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	entityUseCase := entityUC.New(store, zapLogger)
	exportService := export.NewService(store)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Entity:   apiHandler.NewEntityHandler(entityUseCase, ctxAdapter, zapLogger),
		Export:   apiHandler.NewExportHandler(exportService, ctxAdapter, zapLogger),
		FileTree: apiHandler.NewFileTreeHandler(treeStore, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

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
