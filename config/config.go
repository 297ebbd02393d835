package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config holds the project config values, populated from the environment
type Config struct {
	Port                   string `envconfig:"PORT" default:"8002"`
	BaseURL                string `envconfig:"BASE_URL"`
	Environment            string `envconfig:"ENVIRONMENT" default:"local"`
	DBURI                  string `envconfig:"DB_URI"`
	DatabaseName           string `envconfig:"DB_NAME" default:"medassist"`
	JWTSecret              string `envconfig:"JWT_SECRET"`
	OperatorEmail          string `envconfig:"OPERATOR_EMAIL"`
	OperatorPasswordHash   string `envconfig:"OPERATOR_PASSWORD_HASH"`
	SendgridAPIKey         string `envconfig:"SENDGRID_API_KEY"`
	AlertEmailFrom         string `envconfig:"ALERT_EMAIL_FROM" default:"no-reply@medassist-api.io"`
	AlertEmailTo           string `envconfig:"ALERT_EMAIL_TO"`
	RecordRetentionDays    int    `envconfig:"RECORD_RETENTION_DAYS" default:"365"`
	CloudinaryUploadPreset string `envconfig:"CLOUDINARY_UPLOAD_PRESET"`
	CloudinaryAPIKey       string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret    string `envconfig:"CLOUDINARY_API_SECRET"`
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENVIRONMENT"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		zap.S().With(err).Error("failed to process environment config")
	}
	return &c
}

func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
