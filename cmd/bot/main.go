package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/studyping/slack-study-bot/internal/config"
	"github.com/studyping/slack-study-bot/internal/database"
	"github.com/studyping/slack-study-bot/internal/domain/service"
	"github.com/studyping/slack-study-bot/internal/handlers"
	"github.com/studyping/slack-study-bot/internal/store"
	"github.com/studyping/slack-study-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
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

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	scheduleStore := store.New()
	services := service.NewInstance(dm, scheduleStore, slackClient, loc, cfg.SweepInterval)

	// The sweeper must not fire before the Slack session is confirmed
	// valid, so ticking is gated on a successful auth check.
	ready := make(chan struct{})
	services.Sweeper.Start(ready)
	defer services.Sweeper.Stop()

	go func() {
		auth, err := slackClient.AuthTest()
		if err != nil {
			log.Fatalf("Failed to validate Slack token: %v", err)
		}
		log.Printf("Authenticated as %s on team %s", auth.User, auth.Team)
		close(ready)
	}()

	handler := handlers.New(services.Schedule, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/events", handler.HandleEvents)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
