package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/audit"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/config"
	dbpkg "github.com/Speakmu/whatsapp-bot-agendamento/internal/db"
	domainchat "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/handlers"
	infraHistory "github.com/Speakmu/whatsapp-bot-agendamento/internal/infra/history"
	infraLedger "github.com/Speakmu/whatsapp-bot-agendamento/internal/infra/ledger"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/infra/llm"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/infra/whatsapp"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/middleware"
	ucchat "github.com/Speakmu/whatsapp-bot-agendamento/internal/usecase/chat"
	ucschedule "github.com/Speakmu/whatsapp-bot-agendamento/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(logger))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var ledger domain.Ledger
	if cfg.DatabaseURL != "" {
		ledger = infraLedger.NewGormLedger(dbpkg.NewDB(cfg))
	} else {
		sheetsLedger, err := infraLedger.NewSheetsLedger(
			context.Background(),
			cfg.SheetsCredentialsFile,
			cfg.SpreadsheetID,
			map[domain.Channel]string{
				domain.ChannelPresencial: cfg.TabPresencial,
				domain.ChannelRemoto:     cfg.TabRemoto,
			},
		)
		if err != nil {
			logger.Fatal("falha ao conectar na planilha", zap.Error(err))
		}
		ledger = sheetsLedger
	}

	var store domainchat.Store
	if cfg.RedisURL != "" {
		redisStore, err := infraHistory.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Fatal("falha ao conectar no redis", zap.Error(err))
		}
		store = redisStore
	} else {
		store = infraHistory.NewFileStore(cfg.HistoryFile)
	}

	reasoner := llm.NewOpenAIReasoner(cfg.OpenAIKey, cfg.OpenAIModel)
	sender := whatsapp.NewCloudSender(cfg.AccessToken, cfg.PhoneNumberID, logger)
	auditDispatcher := audit.NewDispatcher(logger)
	agenda := domain.DefaultAgenda()

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTO
	// ======================================================
	availabilityUC := ucschedule.NewAvailability(ledger, agenda, logger)

	bookUC := ucschedule.NewBook(ledger, availabilityUC, auditDispatcher, logger)
	rescheduleUC := ucschedule.NewReschedule(ledger, availabilityUC, auditDispatcher, logger)
	cancelUC := ucschedule.NewCancel(ledger, auditDispatcher, logger)
	customerNameUC := ucschedule.NewCustomerName(ledger, logger)

	// ======================================================
	// 🧠 USE CASES — CONVERSA
	// ======================================================
	orchestrator := ucchat.NewOrchestrator(
		reasoner,
		store,
		customerNameUC,
		bookUC,
		rescheduleUC,
		cancelUC,
		logger,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	webhookHandler := handlers.NewWebhookHandler(
		orchestrator,
		sender,
		cfg.VerifyToken,
		logger,
	)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================
	r.GET("/webhook", webhookHandler.Verify)
	r.POST("/webhook", webhookHandler.Receive)
}
