package main

import (
	"log"

	"pageforge/config"
	"pageforge/models"
	"pageforge/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	logger.SetLogLevel("info")

	cfg := config.Load()

	if err := models.InitDB(cfg.DBPath); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer models.CloseDB()

	if err := models.InitJWT(cfg.JWTSecret); err != nil {
		log.Fatal("Failed to initialize JWT:", err)
	}

	srv := web.NewServer(cfg)
	logger.Info("Starting PageForge", "address", cfg.Address)
	log.Fatal(web.Run(srv, cfg))
}
