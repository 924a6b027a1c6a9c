package main

import (
	"github.com/itisal/itisal-backend/internal/app"
	"github.com/itisal/itisal-backend/internal/config"
	"go.uber.org/zap"
)

// @title						Itisal API
// @version					1.0
// @description				Pizza shop order management backend
// @BasePath					/api
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	log.Info("starting server",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.HTTPServer.Address),
	)

	application := app.NewApp(log, *cfg)

	application.MustRun()
}

func setupLogger(env string) *zap.Logger {
	switch env {
	case "local", "dev":
		log, _ := zap.NewDevelopment()
		return log
	default:
		log, _ := zap.NewProduction()
		return log
	}
}
