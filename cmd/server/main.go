package main

import (
	"os"

	"gymtrack/internal/config"
	"gymtrack/internal/models"
	"gymtrack/internal/router"
	"gymtrack/internal/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	configFile := os.Getenv("GYMTRACK_CONFIG")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	if cfg.Server.ProductionMode {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := models.InitDB(cfg); err != nil {
		logger.WithError(err).Fatal("failed to initialize database")
	}
	db := models.GetDB()

	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, cfg.JWT.GetExpireDuration())

	utils.RegisterValidators()

	r := router.SetupRouter(cfg, db, jwtManager, logger)

	addr := cfg.Server.GetAddress()
	logger.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
