package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	ServerPort string

	// Colaborador de raciocínio
	OpenAIKey   string
	OpenAIModel string

	// Registro de agendamentos (planilha, ou Postgres quando DatabaseURL
	// está presente)
	SheetsCredentialsFile string
	SpreadsheetID         string
	TabPresencial         string
	TabRemoto             string
	DatabaseURL           string

	// WhatsApp Cloud
	VerifyToken   string
	AccessToken   string
	PhoneNumberID string

	// Histórico de conversa (Redis quando RedisURL está presente)
	HistoryFile string
	RedisURL    string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", ""),

		SheetsCredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", "whatsapp-bot-agendamentos.json"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		TabPresencial:         getEnv("TAB_PRESENCIAL", "PRESENCIAL"),
		TabRemoto:             getEnv("TAB_REMOTO", "REMOTO"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),

		VerifyToken:   getEnv("VERIFY_TOKEN", ""),
		AccessToken:   getEnv("ACCESS_TOKEN", ""),
		PhoneNumberID: getEnv("PHONE_NUMBER_ID", ""),

		HistoryFile: getEnv("HISTORY_FILE", "chat_history.json"),
		RedisURL:    getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
