package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/mathcamp/daily-problem-bot/internal/config"
	"github.com/mathcamp/daily-problem-bot/internal/database"
	"github.com/mathcamp/daily-problem-bot/internal/domain/service"
	"github.com/mathcamp/daily-problem-bot/internal/handlers"
	"github.com/mathcamp/daily-problem-bot/migrator/sqlite"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.SlackBotToken == "" {
		log.Fatal("SLACK_BOT_TOKEN is required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)
	slackClient := slack.New(cfg.SlackBotToken)

	services, err := service.NewInstance(dm, slackClient, service.Config{
		SelectionMode:    cfg.SelectionMode,
		SendTime:         cfg.SendTime,
		Timezone:         cfg.Timezone,
		InfoChannelID:    cfg.InfoChannelID,
		ProblemChannelID: cfg.ProblemChannelID,
		ProblemsPath:     cfg.ProblemsPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	added, err := services.Problem.ImportFromFile(cfg.ProblemsPath)
	if err != nil {
		log.Printf("Startup import failed: %v", err)
	} else {
		log.Printf("Imported %d new problems from %s", added, cfg.ProblemsPath)
	}

	services.Scheduler.AnnounceStatus()

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(slackClient, services.Problem, cfg.SlackSigningSecret, cfg.SelectionMode)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
