package safety

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/models"
)

func glazingProfile() models.RiskProfile {
	rate := 4.2
	fatalities := int64(12)
	return models.RiskProfile{
		NAICSCode:    "23815",
		IndustryName: "Glass and Glazing Contractors",
		InjuryRate:   &rate,
		Fatalities:   &fatalities,
		RiskScore:    48.0,
		RiskCategory: CategoryModerate,
	}
}

func TestGenerateJHSAUsesTradeTasks(t *testing.T) {
	template := GenerateJHSA(glazingProfile(), "Curtain Wall Installation", nil)

	assert.Equal(t, "Curtain Wall Installation", template.JobInfo.JobTitle)
	assert.Equal(t, "23815", template.JobInfo.NAICSCode)
	assert.Equal(t, "Glass and Glazing Contractors", template.JobInfo.IndustryName)
	assert.Equal(t, 48.0, template.RiskContext.IndustryRiskScore)
	assert.Equal(t, CategoryModerate, template.RiskContext.IndustryRiskCategory)

	assert.Len(t, template.JobSteps, 6)
	assert.Equal(t, 1, template.JobSteps[0].StepNumber)
	assert.Equal(t, "Material delivery and staging", template.JobSteps[0].TaskDescription)
	assert.Equal(t, 6, template.JobSteps[5].StepNumber)
}

func TestGenerateJHSACustomTasksTakePrecedence(t *testing.T) {
	template := GenerateJHSA(glazingProfile(), "Storefront Repair", []string{
		"Material delivery",
		"Glass panel lifting",
	})

	assert.Len(t, template.JobSteps, 2)
	assert.Equal(t, "Material delivery", template.JobSteps[0].TaskDescription)
	assert.Equal(t, "Glass panel lifting", template.JobSteps[1].TaskDescription)
}

func TestGenerateJHSAUnknownTradeFallsBackToDefaults(t *testing.T) {
	profile := models.RiskProfile{NAICSCode: "99999", IndustryName: "Unknown Industry"}
	template := GenerateJHSA(profile, "General Labor", nil)

	assert.Len(t, template.JobSteps, 6)
	assert.Equal(t, "Task setup and preparation", template.JobSteps[0].TaskDescription)
}

func TestGenerateJHSAHazardAnalysis(t *testing.T) {
	template := GenerateJHSA(glazingProfile(), "Curtain Wall Installation", []string{
		"Glass panel lifting and positioning",
	})

	step := template.JobSteps[0]

	// lifting triggers height work and heavy lifting, glass triggers
	// glass handling
	assert.Contains(t, step.PotentialHazards, "Falls from elevation")
	assert.Contains(t, step.PotentialHazards, "Cuts from broken glass")
	assert.Contains(t, step.PotentialHazards, "Back injury")
	assert.Contains(t, step.PreventiveMeasures, "Fall protection harness")
	assert.Contains(t, step.PreventiveMeasures, "Glass lifters")

	assert.Contains(t, step.RequiredPPE, "Hard hat")
	assert.Contains(t, step.RequiredPPE, "Fall protection harness")
	assert.Contains(t, step.RequiredPPE, "Cut-resistant gloves")

	assert.Contains(t, step.TrainingRequirements, "General safety orientation")
	assert.Contains(t, step.TrainingRequirements, "Rigging and lifting safety")
	assert.Contains(t, step.TrainingRequirements, "Glass handling procedures")
}

func TestGenerateJHSAHazardsAreDeduplicated(t *testing.T) {
	// "cutting" matches both glass handling and power tools, which share
	// the cut-resistant gloves control
	template := GenerateJHSA(glazingProfile(), "Shop Work", []string{
		"Glass cutting and preparation",
	})

	controls := template.JobSteps[0].PreventiveMeasures
	count := 0
	for _, c := range controls {
		if c == "Cut-resistant gloves" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerateJHSAIsDeterministic(t *testing.T) {
	first, err := json.Marshal(GenerateJHSA(glazingProfile(), "Curtain Wall Installation", nil))
	assert.NoError(t, err)
	second, err := json.Marshal(GenerateJHSA(glazingProfile(), "Curtain Wall Installation", nil))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
