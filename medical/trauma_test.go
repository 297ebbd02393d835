package medical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/models"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestPerformTraumaAssessmentSeverityRules(t *testing.T) {
	tests := []struct {
		name             string
		req              models.TraumaAssessmentRequest
		expectedSeverity string
		expectedFlag     string
	}{
		{
			name: "unconscious patient is critical",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Fall from 20ft ladder",
				ReportedSymptoms:  []string{"unresponsive", "visible head wound"},
				Conscious:         boolPtr(false),
				ObviousBleeding:   boolPtr(true),
			},
			expectedSeverity: SeverityCritical,
			expectedFlag:     "Patient is unconscious.",
		},
		{
			name: "obvious bleeding is serious",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Kitchen knife slip",
				ReportedSymptoms:  []string{"deep cut on hand"},
				Conscious:         boolPtr(true),
				ObviousBleeding:   boolPtr(true),
			},
			expectedSeverity: SeveritySerious,
			expectedFlag:     "Obvious or reported severe bleeding.",
		},
		{
			name: "arterial bleeding is critical",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Arterial laceration from glass",
				ReportedSymptoms:  []string{"severe bleeding"},
				Conscious:         boolPtr(true),
			},
			expectedSeverity: SeverityCritical,
			expectedFlag:     "Obvious or reported severe bleeding.",
		},
		{
			name: "breathing difficulty is critical",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Crushed against wall",
				ReportedSymptoms:  []string{"difficulty breathing"},
				Conscious:         boolPtr(true),
			},
			expectedSeverity: SeverityCritical,
			expectedFlag:     "Reported difficulty breathing or abnormal breathing pattern.",
		},
		{
			name: "high risk mechanism is serious",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Fall from 10ft ladder",
				ReportedSymptoms:  []string{"severe leg pain", "dizziness"},
				Conscious:         boolPtr(true),
				Age:               intPtr(35),
				Gender:            "female",
				ObviousBleeding:   boolPtr(false),
			},
			expectedSeverity: SeveritySerious,
			expectedFlag:     "High-risk mechanism of injury (potential for internal or spinal injuries).",
		},
		{
			name: "motor vehicle accident is serious",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Motor vehicle accident at 45mph",
				ReportedSymptoms:  []string{"neck pain"},
				Conscious:         boolPtr(true),
			},
			expectedSeverity: SeveritySerious,
			expectedFlag:     "High-risk mechanism of injury (potential for internal or spinal injuries).",
		},
		{
			name: "minor mechanism defaults to moderate",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Twisted ankle on hike",
				ReportedSymptoms:  []string{"pain in ankle", "swelling"},
				Conscious:         boolPtr(true),
				ObviousBleeding:   boolPtr(false),
			},
			expectedSeverity: SeverityModerate,
		},
		{
			name: "chest pain escalates moderate to serious",
			req: models.TraumaAssessmentRequest{
				MechanismOfInjury: "Tripped over curb",
				ReportedSymptoms:  []string{"chest pain"},
				Conscious:         boolPtr(true),
			},
			expectedSeverity: SeveritySerious,
			expectedFlag:     "Reported chest pain - consider cardiac or significant thoracic trauma.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PerformTraumaAssessment(tt.req)

			assert.Equal(t, tt.expectedSeverity, result.SeverityLevel)
			assert.Contains(t, Severities, result.SeverityLevel)
			assert.NotEmpty(t, result.ImmediateActions)
			assert.NotEmpty(t, result.AssessmentSteps)
			assert.NotEmpty(t, result.NextSteps)
			if tt.expectedFlag != "" {
				assert.Contains(t, result.RedFlags, tt.expectedFlag)
			}
		})
	}
}

func TestPerformTraumaAssessmentIsDeterministic(t *testing.T) {
	req := models.TraumaAssessmentRequest{
		MechanismOfInjury: "Fall from 10ft ladder",
		ReportedSymptoms:  []string{"severe leg pain", "dizziness"},
		Conscious:         boolPtr(true),
		Age:               intPtr(35),
		Gender:            "female",
		ObviousBleeding:   boolPtr(false),
	}

	first, err := json.Marshal(PerformTraumaAssessment(req))
	assert.NoError(t, err)
	second, err := json.Marshal(PerformTraumaAssessment(req))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPerformTraumaAssessmentUnconsciousEscalates(t *testing.T) {
	conscious := models.TraumaAssessmentRequest{
		MechanismOfInjury: "Twisted ankle on hike",
		ReportedSymptoms:  []string{"pain in ankle"},
		Conscious:         boolPtr(true),
	}
	unconscious := conscious
	unconscious.Conscious = boolPtr(false)

	consciousResult := PerformTraumaAssessment(conscious)
	unconsciousResult := PerformTraumaAssessment(unconscious)

	assert.Equal(t, SeverityModerate, consciousResult.SeverityLevel)
	assert.Equal(t, SeverityCritical, unconsciousResult.SeverityLevel)
}

func TestPerformTraumaAssessmentCPRActionOrdering(t *testing.T) {
	result := PerformTraumaAssessment(models.TraumaAssessmentRequest{
		MechanismOfInjury: "Found collapsed",
		ReportedSymptoms:  []string{},
		Conscious:         boolPtr(false),
	})

	// condition-specific action sits between scene safety and the EMS call
	assert.Equal(t, "Ensure scene safety.", result.ImmediateActions[0])
	assert.Contains(t, result.ImmediateActions[1], "begin CPR immediately")
}

func TestPerformTraumaAssessmentSymptomMatchingIsCaseInsensitive(t *testing.T) {
	result := PerformTraumaAssessment(models.TraumaAssessmentRequest{
		MechanismOfInjury: "Rear-ended at stoplight",
		ReportedSymptoms:  []string{"Difficulty Breathing"},
		Conscious:         boolPtr(true),
	})

	assert.Equal(t, SeverityCritical, result.SeverityLevel)
}
