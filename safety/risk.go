// Package safety implements the risk scoring rules for the construction
// safety intelligence endpoints. Like the trauma procedure, everything here
// is pure and deterministic.
package safety

import (
	"math"
	"sort"

	"github.com/medassist/medassist-api/models"
)

// Risk categories by descending severity
const (
	CategoryCritical = "CRITICAL"
	CategoryHigh     = "HIGH"
	CategoryModerate = "MODERATE"
	CategoryLow      = "LOW"
)

// Score combines an industry injury rate and fatality count into a 0-100
// risk score, rounded to one decimal. Either input may be absent.
func Score(injuryRate *float64, fatalities *int64) float64 {
	score := 0.0

	if injuryRate != nil {
		score += math.Min(*injuryRate*10, 50)
	}
	if fatalities != nil {
		score += math.Min(float64(*fatalities)*0.5, 50)
	}

	return math.Round(math.Min(score, 100)*10) / 10
}

// Category buckets a risk score into a named risk level
func Category(score float64) string {
	switch {
	case score >= 75:
		return CategoryCritical
	case score >= 50:
		return CategoryHigh
	case score >= 25:
		return CategoryModerate
	default:
		return CategoryLow
	}
}

// Recommendations returns the safety recommendations for a risk score
func Recommendations(score float64) []string {
	switch {
	case score >= 75:
		return []string{
			"Implement immediate safety intervention program",
			"Mandatory daily safety briefings",
			"Enhanced PPE requirements",
			"Third-party safety audit recommended",
		}
	case score >= 50:
		return []string{
			"Increase safety training frequency",
			"Review and update safety protocols",
			"Implement weekly safety inspections",
		}
	case score >= 25:
		return []string{
			"Maintain current safety standards",
			"Regular safety training updates",
			"Monitor injury trends",
		}
	default:
		return []string{
			"Continue best practices",
			"Share safety insights with industry peers",
		}
	}
}

// SimilarIndustries filters rate rows to those within tolerance of the
// target injury rate, sorted by how close they are to the target
func SimilarIndustries(rates []models.InjuryRate, target, tolerance float64) []models.SimilarIndustry {
	similar := []models.SimilarIndustry{}
	for _, rate := range rates {
		if rate.InjuryRate == nil {
			continue
		}
		diff := math.Abs(*rate.InjuryRate - target)
		if diff <= tolerance {
			similar = append(similar, models.SimilarIndustry{
				NAICSCode:      rate.NAICSCode,
				IndustryName:   rate.IndustryName,
				InjuryRate:     *rate.InjuryRate,
				RateDifference: diff,
			})
		}
	}

	sort.Slice(similar, func(i, j int) bool {
		return similar[i].RateDifference < similar[j].RateDifference
	})
	return similar
}
