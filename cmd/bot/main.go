package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/config"
	appLogger "github.com/Speakmu/whatsapp-bot-agendamento/internal/logger"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := appLogger.New(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API online - WhatsApp Bot Agendamento")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, logger)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
