package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InjuryRecord holds the structure for the injury record collection in
// mongo, one document per completed trauma assessment
type InjuryRecord struct {
	ID                primitive.ObjectID       `json:"_id" bson:"_id,omitempty"`
	UserID            string                   `json:"userId,omitempty" bson:"userId,omitempty"`
	MechanismOfInjury string                   `json:"mechanismOfInjury" bson:"mechanismOfInjury"`
	ReportedSymptoms  []string                 `json:"reportedSymptoms" bson:"reportedSymptoms"`
	Conscious         bool                     `json:"conscious" bson:"conscious"`
	Age               *int                     `json:"age,omitempty" bson:"age,omitempty"`
	Gender            string                   `json:"gender,omitempty" bson:"gender,omitempty"`
	ObviousBleeding   bool                     `json:"obviousBleeding" bson:"obviousBleeding"`
	SeverityLevel     string                   `json:"severityLevel" bson:"severityLevel"`
	Assessment        TraumaAssessmentResponse `json:"assessment" bson:"assessment"`
	CreatedAt         time.Time                `json:"createdAt" bson:"createdAt"`
}

// InjuryRecordResponse represents the paginated API response structure
type InjuryRecordResponse struct {
	InjuryRecords []InjuryRecord `json:"injuryRecords"`
	Pagination    Pagination     `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	Limit        int64 `json:"limit"`
}
