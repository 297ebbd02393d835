// Package medical implements the deterministic trauma assessment procedure.
// The procedure is pure: it touches no external state and identical input
// always yields identical output.
package medical

import (
	"strings"

	"github.com/samber/lo"

	"github.com/medassist/medassist-api/models"
)

// Severity levels, ordered from most to least urgent
const (
	SeverityCritical = "critical"
	SeveritySerious  = "serious"
	SeverityModerate = "moderate"
	SeverityMinor    = "minor"
	SeverityUnknown  = "unknown"
)

// Severities lists every severity level the procedure can emit
var Severities = []string{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor, SeverityUnknown}

// breathingSymptoms are symptom strings that indicate a compromised airway
// or abnormal breathing pattern
var breathingSymptoms = []string{
	"difficulty breathing",
	"shortness of breath",
	"no breathing",
	"gasping",
}

// highRiskMechanisms are mechanism-of-injury keywords that carry a risk of
// internal or spinal injuries regardless of reported symptoms
var highRiskMechanisms = []string{
	"fall from",
	"ladder",
	"scaffold",
	"height",
	"motor vehicle accident",
	"mva",
	"car accident",
	"diving",
}

func baseImmediateActions() []string {
	return []string{
		"Ensure scene safety.",
		"Call for emergency medical services if possible and not already done.",
	}
}

func baseAssessmentSteps() []string {
	return []string{
		"Check for responsiveness (AVPU: Alert, Verbal, Painful, Unresponsive).",
		"Assess Airway (A): Is it clear? Any obstructions? Consider C-spine immobilization if trauma mechanism suggests.",
		"Assess Breathing (B): Rate, depth, effort. Look for chest rise and fall. Check for cyanosis.",
		"Assess Circulation (C): Check for major bleeding. Check pulse (rate, rhythm, strength). Check skin color, temperature, and capillary refill.",
		"Assess Disability (D): Neurological status (e.g., GCS if trained, pupil response, orientation).",
		"Expose and Examine (E): Systematically check for injuries from head to toe, maintaining spinal precautions if suspected neck/back injury. Keep patient warm.",
	}
}

func baseRedFlags() []string {
	return []string{
		"Unresponsiveness or significantly altered mental status.",
		"Difficulty breathing, gasping, or no breathing.",
		"Absent or very weak pulse, signs of shock (pale, cool, clammy skin).",
		"Severe, uncontrolled external bleeding.",
		"Penetrating trauma to head, neck, chest, or abdomen.",
		"Suspected spinal injury (e.g., fall from height, diving accident, high-speed MVA).",
		"Open fractures or severe deformities.",
	}
}

func baseNextSteps() []string {
	return []string{
		"Reassess ABCDEs frequently (e.g., every 5 minutes for critical, 15 for stable).",
		"Treat life-threatening injuries found during assessment immediately (e.g., control major bleeding, basic airway maneuvers, CPR if indicated).",
		"Maintain body temperature (prevent hypothermia).",
		"Gather SAMPLE history if possible (Signs/Symptoms, Allergies, Medications, Past medical history, Last oral intake, Events leading to injury).",
		"Prepare for transport or await arrival of higher-level care.",
	}
}

// PerformTraumaAssessment maps an injury report to a severity assessment.
// Risk predicates are evaluated in priority order and the most severe
// matching condition selects the severity level; each match also
// contributes entries to the red flags and immediate actions.
func PerformTraumaAssessment(req models.TraumaAssessmentRequest) models.TraumaAssessmentResponse {
	mechanism := strings.ToLower(req.MechanismOfInjury)
	symptoms := lo.Map(req.ReportedSymptoms, func(s string, _ int) string {
		return strings.ToLower(s)
	})
	conscious := req.Conscious != nil && *req.Conscious
	bleeding := req.ObviousBleeding != nil && *req.ObviousBleeding

	severity := SeverityUnknown
	immediateActions := baseImmediateActions()
	redFlags := baseRedFlags()

	switch {
	case !conscious:
		severity = SeverityCritical
		immediateActions = insertAction(immediateActions,
			"If not breathing or only gasping, begin CPR immediately if trained and appropriate.")
		redFlags = append(redFlags, "Patient is unconscious.")

	case bleeding || lo.Contains(symptoms, "severe bleeding"):
		severity = SeveritySerious
		if strings.Contains(mechanism, "arterial") {
			severity = SeverityCritical
		}
		immediateActions = insertAction(immediateActions,
			"Apply direct pressure to any sites of major bleeding. Elevate if possible. Consider tourniquet for life-threatening limb hemorrhage.")
		redFlags = append(redFlags, "Obvious or reported severe bleeding.")

	case lo.SomeBy(breathingSymptoms, func(s string) bool { return lo.Contains(symptoms, s) }):
		severity = SeverityCritical
		immediateActions = insertAction(immediateActions,
			"Ensure airway is open. Assist ventilations if necessary and trained.")
		redFlags = append(redFlags, "Reported difficulty breathing or abnormal breathing pattern.")

	case lo.SomeBy(highRiskMechanisms, func(k string) bool { return strings.Contains(mechanism, k) }):
		// could be critical depending on other factors
		severity = SeveritySerious
		immediateActions = append(immediateActions,
			"Maintain spinal immobilization if suspected neck/back injury.")
		redFlags = append(redFlags, "High-risk mechanism of injury (potential for internal or spinal injuries).")

	default:
		// conscious patient without immediate critical signs
		severity = SeverityModerate
	}

	if lo.Contains(symptoms, "chest pain") {
		redFlags = append(redFlags, "Reported chest pain - consider cardiac or significant thoracic trauma.")
		if severity != SeverityCritical && severity != SeveritySerious {
			severity = SeveritySerious
		}
	}

	return models.TraumaAssessmentResponse{
		SeverityLevel:    severity,
		ImmediateActions: immediateActions,
		AssessmentSteps:  baseAssessmentSteps(),
		RedFlags:         redFlags,
		NextSteps:        baseNextSteps(),
	}
}

// insertAction places a condition-specific action directly after the scene
// safety instruction so it is read before the generic EMS guidance
func insertAction(actions []string, action string) []string {
	out := make([]string, 0, len(actions)+1)
	out = append(out, actions[0], action)
	out = append(out, actions[1:]...)
	return out
}
