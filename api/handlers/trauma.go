package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/config"
	"github.com/medassist/medassist-api/databases"
	"github.com/medassist/medassist-api/medical"
	"github.com/medassist/medassist-api/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON field names in validation errors, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Trauma represents the trauma assessment handler
type Trauma struct {
	DB     databases.InjuryRecordDatabase
	Feed   *LiveFeed
	Config config.Config
}

// TraumaAssessmentHandler handles POST requests for trauma assessments.
// The request either validates and succeeds, or is rejected before the
// assessment procedure runs.
func (h Trauma) TraumaAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.TraumaAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	result := medical.PerformTraumaAssessment(req)

	if h.DB != nil {
		record := buildInjuryRecord(req, result)
		if err := h.DB.CreateInjuryRecord(r.Context(), record); err != nil {
			// the assessment itself is still valid, so log and keep going
			zap.S().With(err).Error("failed to persist injury record")
		}
	}

	if h.Feed != nil {
		h.Feed.Broadcast(models.LiveAssessmentEvent{
			SeverityLevel:     result.SeverityLevel,
			MechanismOfInjury: req.MechanismOfInjury,
			RedFlagCount:      len(result.RedFlags),
			CreatedAt:         time.Now().UTC(),
		})
	}

	if result.SeverityLevel == medical.SeverityCritical {
		go h.sendCriticalAlert(req, result)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		zap.S().With(err).Error("failed to encode trauma assessment response")
	}
}

func buildInjuryRecord(req models.TraumaAssessmentRequest, result models.TraumaAssessmentResponse) *models.InjuryRecord {
	return &models.InjuryRecord{
		UserID:            req.UserID,
		MechanismOfInjury: req.MechanismOfInjury,
		ReportedSymptoms:  req.ReportedSymptoms,
		Conscious:         req.Conscious != nil && *req.Conscious,
		Age:               req.Age,
		Gender:            req.Gender,
		ObviousBleeding:   req.ObviousBleeding != nil && *req.ObviousBleeding,
		SeverityLevel:     result.SeverityLevel,
		Assessment:        result,
		CreatedAt:         time.Now().UTC(),
	}
}

func writeValidationErrors(w http.ResponseWriter, err error) {
	details := []models.FieldError{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, models.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(models.ValidationErrorResponse{
		Error:   "request validation failed",
		Details: details,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed validation on " + fe.Tag()
	}
}

// sendCriticalAlert emails the configured responder address when an
// assessment comes back critical. Best effort; failures are logged only.
func (h Trauma) sendCriticalAlert(req models.TraumaAssessmentRequest, result models.TraumaAssessmentResponse) {
	if h.Config.SendgridAPIKey == "" || h.Config.AlertEmailTo == "" {
		return
	}

	from := mail.NewEmail("MedAssist API", h.Config.AlertEmailFrom)
	to := mail.NewEmail("", h.Config.AlertEmailTo)
	subject := "Critical trauma assessment received"
	plainText := fmt.Sprintf(
		"A trauma assessment returned severity CRITICAL.\n\nMechanism of injury: %s\nReported symptoms: %s\n\nRed flags:\n- %s\n",
		req.MechanismOfInjury,
		strings.Join(req.ReportedSymptoms, ", "),
		strings.Join(result.RedFlags, "\n- "),
	)
	htmlContent := fmt.Sprintf(
		"<p>A trauma assessment returned severity <strong>CRITICAL</strong>.</p><p>Mechanism of injury: %s</p>",
		req.MechanismOfInjury,
	)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(h.Config.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send critical assessment alert", "error", err)
		return
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
}
