package models

import "time"

// TraumaAssessmentRequest holds the structure for an inbound trauma
// assessment request body
type TraumaAssessmentRequest struct {
	MechanismOfInjury string   `json:"mechanismOfInjury" validate:"required"`
	ReportedSymptoms  []string `json:"reportedSymptoms" validate:"required"`
	Conscious         *bool    `json:"conscious" validate:"required"`
	Age               *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender            string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other unknown"`
	ObviousBleeding   *bool    `json:"obviousBleeding,omitempty"`
	UserID            string   `json:"userId,omitempty"`
}

// TraumaAssessmentResponse holds the structure for the trauma assessment
// result returned to the caller and embedded in persisted injury records
type TraumaAssessmentResponse struct {
	SeverityLevel    string   `json:"severity_level" bson:"severityLevel"`
	ImmediateActions []string `json:"immediate_actions" bson:"immediateActions"`
	AssessmentSteps  []string `json:"assessment_steps" bson:"assessmentSteps"`
	RedFlags         []string `json:"red_flags" bson:"redFlags"`
	NextSteps        []string `json:"next_steps" bson:"nextSteps"`
}

// LiveAssessmentEvent is the summary pushed to live feed subscribers after
// each completed assessment
type LiveAssessmentEvent struct {
	SeverityLevel     string    `json:"severityLevel"`
	MechanismOfInjury string    `json:"mechanismOfInjury"`
	RedFlagCount      int       `json:"redFlagCount"`
	CreatedAt         time.Time `json:"createdAt"`
}
