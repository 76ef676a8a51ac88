package main

import (
	"dailydiet/config"
	"dailydiet/routes"

	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("config: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		sugar.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(cfg, db)

	sugar.Infof("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalf("server: %v", err)
	}
}
