package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/api/handlers"
	"github.com/medassist/medassist-api/api/scheduler"
	"github.com/medassist/medassist-api/config"
)

func main() {
	// load a local .env if present, real deployments set the environment
	_ = godotenv.Load()

	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	// the scheduler runs for the lifetime of the process, no stop path
	// is needed since the only exits below are fatal
	if rdb := a.InjuryRecordDB(); rdb != nil {
		s := scheduler.NewScheduler(rdb, a.Config.RecordRetentionDays)
		s.Start()
	}

	zap.S().Infow("medassist-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
