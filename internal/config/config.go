package config

import (
	"os"

	"github.com/mathcamp/daily-problem-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	ProblemsPath       string
	InfoChannelID      string
	ProblemChannelID   string
	SendTime           string // HH:MM, local to Timezone
	Timezone           string // IANA name
	SelectionMode      string // plain or offset
	Port               string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./problems.db"),
		ProblemsPath:       getEnv("PROBLEMS_PATH", "./problems.json"),
		InfoChannelID:      getEnv("INFO_CHANNEL_ID", ""),
		ProblemChannelID:   getEnv("PROBLEM_CHANNEL_ID", ""),
		SendTime:           getEnv("SEND_TIME", domain.DefaultSendTime),
		Timezone:           getEnv("TIMEZONE", domain.DefaultTimezone),
		SelectionMode:      getEnv("SELECTION_MODE", domain.DefaultMode),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
