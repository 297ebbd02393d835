package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/api"
	"github.com/medassist/medassist-api/config"
	"github.com/medassist/medassist-api/databases"
	"github.com/medassist/medassist-api/models"
)

// Version is reported by the status endpoint
const Version = "0.1.0"

const requestTimeout = 30 * time.Second

// activeProtocols lists the protocol handlers this server exposes
var activeProtocols = []string{"trauma_assessment", "safety_intelligence"}

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	dbHelper databases.DatabaseHelper
	recordDB databases.InjuryRecordDatabase
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	g := api.Guard{Config: a.Config}
	g.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)
	r.Use(api.TimeoutMiddleware(requestTimeout))

	var ratesDB databases.InjuryRateDatabase
	if a.dbHelper != nil {
		a.recordDB = databases.NewInjuryRecordDatabase(a.dbHelper)
		ratesDB = databases.NewInjuryRateDatabase(a.dbHelper)
	}

	feed := NewLiveFeed()
	t := Trauma{DB: a.recordDB, Feed: feed, Config: a.Config}
	rec := InjuryRecord{DB: a.recordDB}
	s := Safety{DB: ratesDB}
	u := Uploads{Config: a.Config}
	m := MetricsHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.HandleFunc("/status", a.statusHandler).Methods("GET")

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(g.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/medical/trauma-assessment", http.HandlerFunc(t.TraumaAssessmentHandler)).Methods("POST")
	apiCreate.Handle("/medical/injury-records", api.Middleware(http.HandlerFunc(rec.InjuryRecordsHandler))).Methods("GET")
	apiCreate.Handle("/medical/injury-records/{record_id}", api.Middleware(http.HandlerFunc(rec.InjuryRecordByIDHandler))).Methods("GET")
	apiCreate.Handle("/medical/injury-records/{record_id}", api.Middleware(http.HandlerFunc(rec.DeleteInjuryRecordHandler))).Methods("DELETE")
	apiCreate.Handle("/medical/upload-signature", api.Middleware(http.HandlerFunc(u.GenerateUploadSignature))).Methods("POST")
	apiCreate.HandleFunc("/medical/live", feed.LiveFeedHandler)

	apiCreate.Handle("/safety/risk-profile/{naics_code}", http.HandlerFunc(s.RiskProfileHandler)).Methods("GET")
	apiCreate.Handle("/safety/industry-benchmark/{naics_prefix}", http.HandlerFunc(s.IndustryBenchmarkHandler)).Methods("GET")
	apiCreate.Handle("/safety/similar-industries", http.HandlerFunc(s.SimilarIndustriesHandler)).Methods("GET")
	apiCreate.Handle("/safety/generate-jhsa", http.HandlerFunc(s.GenerateJHSAHandler)).Methods("POST")
	apiCreate.Handle("/safety/jhsa-trades", http.HandlerFunc(s.JHSATradesHandler)).Methods("GET")

	apiCreate.Handle("/metrics", api.Middleware(http.HandlerFunc(m.GetMetricsSummary))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	if a.Config.DBURI != "" {
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			// if we fail to create a new database client, then kill the pod
			zap.S().With(err).Error("failed to create new client")
			return err
		}

		a.dbHelper = databases.NewDatabase(&a.Config, client)
		err = client.Connect()
		if err != nil {
			// if we fail to connect to the database, then kill the pod
			zap.S().With(err).Error("failed to connect to database")
			return err
		}
		zap.S().Info("medassist-api has connected to the database")
	} else {
		// assessment is pure and works without persistence; record and
		// safety endpoints will answer 503
		zap.S().Warn("DB_URI not set, running without persistence")
	}

	api.InitMetrics(1 * time.Hour)

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// InjuryRecordDB exposes the record store for the retention scheduler.
// Returns nil when the service runs without persistence.
func (a *App) InjuryRecordDB() databases.InjuryRecordDatabase {
	return a.recordDB
}

func (a *App) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.StatusResponse{
		Status:          "Medical API Server is running",
		Version:         Version,
		ActiveProtocols: activeProtocols,
	})
	_, _ = io.WriteString(w, string(b))
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
