package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InjuryRate holds the structure for the OSHA injury rate collection in
// mongo. Injury rates and fatality counts live in the same collection and
// are told apart by their data source.
type InjuryRate struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	NAICSCode    string             `json:"naicsCode" bson:"naicsCode"`
	IndustryName string             `json:"industryName" bson:"industryName"`
	InjuryRate   *float64           `json:"injuryRate,omitempty" bson:"injuryRate,omitempty"`
	TotalCases   *int64             `json:"totalCases,omitempty" bson:"totalCases,omitempty"`
	DataSource   string             `json:"dataSource" bson:"dataSource"`
}

// RiskProfile is the assembled safety risk profile for a NAICS industry code
type RiskProfile struct {
	NAICSCode       string   `json:"naics_code"`
	IndustryName    string   `json:"industry_name"`
	InjuryRate      *float64 `json:"injury_rate"`
	Fatalities      *int64   `json:"fatalities_2023"`
	RiskScore       float64  `json:"risk_score"`
	RiskCategory    string   `json:"risk_category"`
	Recommendations []string `json:"recommendations"`
}

// IndustryBenchmark is a single benchmark row for an industry group
type IndustryBenchmark struct {
	NAICSCode    string   `json:"naics_code"`
	IndustryName string   `json:"industry_name"`
	InjuryRate   *float64 `json:"injury_rate"`
}

// SimilarIndustry is an industry whose injury rate falls within the
// requested tolerance of the target rate
type SimilarIndustry struct {
	NAICSCode      string  `json:"naics_code"`
	IndustryName   string  `json:"industry_name"`
	InjuryRate     float64 `json:"injury_rate"`
	RateDifference float64 `json:"rate_difference"`
}
