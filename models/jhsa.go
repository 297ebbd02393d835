package models

// JHSARequest holds the structure for an inbound job hazard safety
// assessment generation request
type JHSARequest struct {
	NAICSCode   string   `json:"naics_code" validate:"required"`
	JobTitle    string   `json:"job_title" validate:"required"`
	CustomTasks []string `json:"custom_tasks,omitempty"`
}

// JHSAJobInfo identifies the job the assessment covers. The blank fields
// are left for the analyst to fill in on the printed form.
type JHSAJobInfo struct {
	JobTitle     string  `json:"job_title"`
	NAICSCode    string  `json:"naics_code"`
	IndustryName string  `json:"industry_name"`
	DateCreated  *string `json:"date_created"`
	AnalystName  *string `json:"analyst_name"`
	JobLocation  *string `json:"job_location"`
}

// JHSARiskContext carries the industry risk profile the job steps are
// assessed against
type JHSARiskContext struct {
	IndustryInjuryRate   *float64 `json:"industry_injury_rate"`
	IndustryRiskScore    float64  `json:"industry_risk_score"`
	IndustryRiskCategory string   `json:"industry_risk_category"`
	Fatalities           *int64   `json:"fatalities_2023"`
}

// JHSAJobStep is the hazard analysis for a single task step
type JHSAJobStep struct {
	StepNumber           int      `json:"step_number"`
	TaskDescription      string   `json:"task_description"`
	PotentialHazards     []string `json:"potential_hazards"`
	PreventiveMeasures   []string `json:"preventive_measures"`
	RequiredPPE          []string `json:"required_ppe"`
	TrainingRequirements []string `json:"training_requirements"`
}

// JHSATemplate is a complete generated job hazard safety assessment
type JHSATemplate struct {
	JobInfo     JHSAJobInfo     `json:"job_info"`
	RiskContext JHSARiskContext `json:"risk_context"`
	JobSteps    []JHSAJobStep   `json:"job_steps"`
}

// JHSAResponse wraps a generated template for the API response
type JHSAResponse struct {
	Success        bool         `json:"success"`
	JHSATemplate   JHSATemplate `json:"jhsa_template"`
	OSHACompliance string       `json:"osha_compliance"`
}

// JHSATrade is a trade with a built-in task template
type JHSATrade struct {
	NAICSCode string `json:"naics_code"`
	TradeName string `json:"trade_name"`
}

// JHSATradesResponse lists the trades with built-in task templates
type JHSATradesResponse struct {
	SupportedTrades   []JHSATrade `json:"supported_trades"`
	CanGenerateCustom bool        `json:"can_generate_custom"`
	BasedOn           string      `json:"based_on"`
}
