package safety

import (
	"strings"

	"github.com/samber/lo"

	"github.com/medassist/medassist-api/models"
)

// OSHAMethodology names the job hazard analysis methodology the generated
// templates follow
const OSHAMethodology = "OSHA 3071 Job Hazard Analysis methodology"

// hazardProfile pairs the hazards of a work category with the controls
// that mitigate them
type hazardProfile struct {
	hazards  []string
	controls []string
}

// constructionHazards is the OSHA 3071 common construction hazard catalogue
var constructionHazards = map[string]hazardProfile{
	"height_work": {
		hazards:  []string{"Falls from elevation", "Falling objects", "Ladder/scaffold failure"},
		controls: []string{"Fall protection harness", "Guardrails", "Safety nets", "Ladder inspection"},
	},
	"heavy_lifting": {
		hazards:  []string{"Back injury", "Crush injury", "Strain/sprain"},
		controls: []string{"Mechanical lifting aids", "Team lifting", "Proper lifting technique", "Weight limits"},
	},
	"power_tools": {
		hazards:  []string{"Cuts/lacerations", "Eye injury", "Noise exposure", "Electrical shock"},
		controls: []string{"Cut-resistant gloves", "Safety glasses", "Hearing protection", "GFCI protection"},
	},
	"glass_handling": {
		hazards:  []string{"Cuts from broken glass", "Back strain", "Eye injury from glass shards"},
		controls: []string{"Cut-resistant gloves", "Proper lifting technique", "Safety glasses", "Glass lifters"},
	},
	"welding": {
		hazards:  []string{"Burns", "Eye damage", "Fume inhalation", "Fire risk"},
		controls: []string{"Welding helmet", "Fire extinguisher", "Ventilation", "Fire watch"},
	},
	"confined_space": {
		hazards:  []string{"Oxygen deficiency", "Toxic atmosphere", "Engulfment"},
		controls: []string{"Atmospheric testing", "Ventilation", "Entry permit", "Attendant"},
	},
}

// tradeTasks maps NAICS trade codes to their built-in task sequence
var tradeTasks = map[string][]string{
	// Glass and Glazing
	"23815": {
		"Material delivery and staging",
		"Glass cutting and preparation",
		"Installation of anchors and frames",
		"Glass panel lifting and positioning",
		"Glazing compound application",
		"Final inspection and cleanup",
	},
	// Framing
	"23813": {
		"Material layout and preparation",
		"Frame assembly on ground",
		"Frame lifting and positioning",
		"Fastening and securing",
		"Plumb and square checking",
		"Temporary bracing installation",
	},
	// Roofing
	"23816": {
		"Material hoisting to roof level",
		"Roof surface preparation",
		"Installation of underlayment",
		"Shingle/tile installation",
		"Flashing installation",
		"Cleanup and debris removal",
	},
}

// SupportedTrades lists the trades with built-in task templates
var SupportedTrades = []models.JHSATrade{
	{NAICSCode: "23815", TradeName: "Glass and Glazing Contractors"},
	{NAICSCode: "23813", TradeName: "Framing Contractors"},
	{NAICSCode: "23816", TradeName: "Roofing Contractors"},
}

// defaultTasks is the generic task sequence used when the trade has no
// built-in template and no custom tasks were supplied
var defaultTasks = []string{
	"Task setup and preparation",
	"Main work activity",
	"Tool/equipment operation",
	"Material handling",
	"Quality inspection",
	"Cleanup and securing",
}

// GenerateJHSA builds a job hazard safety assessment template for a job in
// the given industry. Custom tasks take precedence over the trade's built-in
// task sequence; hazard analysis per step is keyword-driven and
// deterministic.
func GenerateJHSA(profile models.RiskProfile, jobTitle string, customTasks []string) models.JHSATemplate {
	tasks := customTasks
	if len(tasks) == 0 {
		tasks = tradeTasks[profile.NAICSCode]
	}
	if len(tasks) == 0 {
		tasks = defaultTasks
	}

	industryName := profile.IndustryName
	if industryName == "" {
		industryName = "Unknown"
	}

	template := models.JHSATemplate{
		JobInfo: models.JHSAJobInfo{
			JobTitle:     jobTitle,
			NAICSCode:    profile.NAICSCode,
			IndustryName: industryName,
		},
		RiskContext: models.JHSARiskContext{
			IndustryInjuryRate:   profile.InjuryRate,
			IndustryRiskScore:    profile.RiskScore,
			IndustryRiskCategory: profile.RiskCategory,
			Fatalities:           profile.Fatalities,
		},
		JobSteps: make([]models.JHSAJobStep, 0, len(tasks)),
	}

	for i, task := range tasks {
		template.JobSteps = append(template.JobSteps, models.JHSAJobStep{
			StepNumber:           i + 1,
			TaskDescription:      task,
			PotentialHazards:     hazardsForTask(task),
			PreventiveMeasures:   controlsForTask(task),
			RequiredPPE:          ppeForTask(task),
			TrainingRequirements: trainingForTask(task),
		})
	}

	return template
}

func taskMatches(task string, keywords ...string) bool {
	task = strings.ToLower(task)
	return lo.SomeBy(keywords, func(k string) bool { return strings.Contains(task, k) })
}

func hazardsForTask(task string) []string {
	hazards := []string{}

	if taskMatches(task, "lifting", "positioning", "installation", "roof", "elevation") {
		hazards = append(hazards, constructionHazards["height_work"].hazards...)
	}
	if taskMatches(task, "glass", "panel", "glazing", "cutting") {
		hazards = append(hazards, constructionHazards["glass_handling"].hazards...)
	}
	if taskMatches(task, "material", "lifting", "moving", "hoisting") {
		hazards = append(hazards, constructionHazards["heavy_lifting"].hazards...)
	}
	if taskMatches(task, "cutting", "drilling", "fastening", "assembly") {
		hazards = append(hazards, constructionHazards["power_tools"].hazards...)
	}

	return lo.Uniq(hazards)
}

func controlsForTask(task string) []string {
	controls := []string{}

	if taskMatches(task, "lifting", "positioning", "installation") {
		controls = append(controls, constructionHazards["height_work"].controls...)
	}
	if taskMatches(task, "glass", "panel", "glazing") {
		controls = append(controls, constructionHazards["glass_handling"].controls...)
	}
	if taskMatches(task, "material", "lifting", "moving") {
		controls = append(controls, constructionHazards["heavy_lifting"].controls...)
	}
	if taskMatches(task, "cutting", "drilling", "fastening") {
		controls = append(controls, constructionHazards["power_tools"].controls...)
	}

	return lo.Uniq(controls)
}

func ppeForTask(task string) []string {
	ppe := []string{"Hard hat", "Safety glasses", "Steel-toed boots"}

	if taskMatches(task, "height", "elevation", "lifting", "positioning") {
		ppe = append(ppe, "Fall protection harness")
	}
	if taskMatches(task, "glass", "cutting", "sharp") {
		ppe = append(ppe, "Cut-resistant gloves")
	}
	if taskMatches(task, "noise", "drilling", "cutting") {
		ppe = append(ppe, "Hearing protection")
	}

	return ppe
}

func trainingForTask(task string) []string {
	training := []string{"General safety orientation"}

	if taskMatches(task, "height", "elevation") {
		training = append(training, "Fall protection training")
	}
	if taskMatches(task, "lifting", "crane", "hoist") {
		training = append(training, "Rigging and lifting safety")
	}
	if taskMatches(task, "glass", "glazing") {
		training = append(training, "Glass handling procedures")
	}

	return training
}
