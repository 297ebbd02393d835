// Package docs MedAssist API.
//
// Documentation of the MedAssist emergency medical assistance API.
//
//     Schemes: https
//     BasePath: /
//     Version: 0.1.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/medassist/medassist-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/status status statusEndpointID
// Reports the server version and the active protocol handlers.
// responses:
//   200: statusResponse

// The running server status.
// swagger:response statusResponse
type statusResponseWrapper struct {
	// in:body
	Body models.StatusResponse
}

// swagger:route POST /api/medical/trauma-assessment medical traumaAssessmentID
// Runs the trauma assessment procedure for the reported injury.
// responses:
//   200: traumaAssessmentResponse

// The severity classification and first-aid guidance for the reported injury.
// swagger:response traumaAssessmentResponse
type traumaAssessmentResponseWrapper struct {
	// in:body
	Body models.TraumaAssessmentResponse
}

// swagger:route GET /api/medical/injury-records medical injuryRecordsID
// Lists persisted injury records, newest first.
// responses:
//   200: injuryRecordsResponse

// A page of injury records.
// swagger:response injuryRecordsResponse
type injuryRecordsResponseWrapper struct {
	// in:body
	Body models.InjuryRecordResponse
}

// swagger:route GET /api/safety/risk-profile/{naics_code} safety riskProfileID
// Gets the assembled safety risk profile for a NAICS industry code.
// responses:
//   200: riskProfileResponse

// The risk profile for the given industry.
// swagger:response riskProfileResponse
type riskProfileResponseWrapper struct {
	// in:body
	Body models.RiskProfile
}
