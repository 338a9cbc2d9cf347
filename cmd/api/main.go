package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Matt-PMCT/todo-me-sub007/config"
	_ "github.com/Matt-PMCT/todo-me-sub007/docs" // Swagger docs
	"github.com/Matt-PMCT/todo-me-sub007/internal/httpserver"
	"github.com/Matt-PMCT/todo-me-sub007/internal/model"
	"github.com/Matt-PMCT/todo-me-sub007/pkg/log"
)

// @title       todo-me Parse API
// @description Natural language task text parsing: due dates, projects, tags and priorities.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo-me parse service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ParserDefaults: model.UserSettings{
			Timezone:    cfg.Parser.Timezone,
			DateFormat:  model.DateFormat(cfg.Parser.DateFormat),
			StartOfWeek: cfg.Parser.StartOfWeek,
		},
		SeedProjects: cfg.Parser.SeedProjects,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
