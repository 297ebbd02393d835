package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/config"
	"github.com/medassist/medassist-api/databases"
	"github.com/medassist/medassist-api/models"
	"github.com/medassist/medassist-api/safety"
)

// Safety represents the construction safety intelligence handler
type Safety struct {
	DB databases.InjuryRateDatabase
}

// RiskProfileHandler handles GET requests for a NAICS industry risk profile
func (h Safety) RiskProfileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	vars := mux.Vars(r)
	naicsCode := vars["naics_code"]

	profile, err := h.riskProfile(r.Context(), naicsCode)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		zap.S().With(err).Error("failed to encode risk profile response")
	}
}

// riskProfile assembles the risk profile for a NAICS code. Missing injury
// rate or fatality rows are tolerated, the industry just scores lower.
func (h Safety) riskProfile(ctx context.Context, naicsCode string) (models.RiskProfile, error) {
	profile := models.RiskProfile{
		NAICSCode:    naicsCode,
		IndustryName: "Unknown Industry",
	}

	injuryData, err := h.DB.GetInjuryRate(ctx, naicsCode)
	if err != nil && err != mongo.ErrNoDocuments {
		zap.S().With(err).Error("failed to get injury rate")
		return profile, err
	}

	fatalityData, err := h.DB.GetFatalityRecord(ctx, naicsCode)
	if err != nil && err != mongo.ErrNoDocuments {
		zap.S().With(err).Error("failed to get fatality record")
		return profile, err
	}

	if injuryData != nil {
		profile.IndustryName = injuryData.IndustryName
		profile.InjuryRate = injuryData.InjuryRate
	}
	if fatalityData != nil {
		profile.Fatalities = fatalityData.TotalCases
	}

	profile.RiskScore = safety.Score(profile.InjuryRate, profile.Fatalities)
	profile.RiskCategory = safety.Category(profile.RiskScore)
	profile.Recommendations = safety.Recommendations(profile.RiskScore)

	return profile, nil
}

// GenerateJHSAHandler handles POST requests that generate a job hazard
// safety assessment template for a job in an industry
func (h Safety) GenerateJHSAHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	var req models.JHSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	profile, err := h.riskProfile(r.Context(), req.NAICSCode)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := models.JHSAResponse{
		Success:        true,
		JHSATemplate:   safety.GenerateJHSA(profile, req.JobTitle, req.CustomTasks),
		OSHACompliance: "Based on OSHA 3071 methodology",
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zap.S().With(err).Error("failed to encode jhsa response")
	}
}

// JHSATradesHandler handles GET requests for the trades with built-in
// task templates
func (h Safety) JHSATradesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := models.JHSATradesResponse{
		SupportedTrades:   safety.SupportedTrades,
		CanGenerateCustom: true,
		BasedOn:           safety.OSHAMethodology,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zap.S().With(err).Error("failed to encode jhsa trades response")
	}
}

// IndustryBenchmarkHandler handles GET requests for industry group benchmarks
func (h Safety) IndustryBenchmarkHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	vars := mux.Vars(r)
	naicsPrefix := vars["naics_prefix"]

	rates, err := h.DB.GetInjuryRatesByPrefix(r.Context(), naicsPrefix)
	if err != nil {
		zap.S().With(err).Error("failed to get industry benchmarks")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	benchmarks := make([]models.IndustryBenchmark, 0, len(rates))
	for _, rate := range rates {
		benchmarks = append(benchmarks, models.IndustryBenchmark{
			NAICSCode:    rate.NAICSCode,
			IndustryName: rate.IndustryName,
			InjuryRate:   rate.InjuryRate,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(benchmarks); err != nil {
		zap.S().With(err).Error("failed to encode benchmark response")
	}
}

// SimilarIndustriesHandler handles GET requests for industries with a
// similar injury rate to the target
func (h Safety) SimilarIndustriesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	targetStr := r.URL.Query().Get("injury_rate")
	target, err := strconv.ParseFloat(targetStr, 64)
	if err != nil {
		http.Error(w, "injury_rate is required and must be a number", http.StatusBadRequest)
		return
	}

	tolerance := 0.5
	if toleranceStr := r.URL.Query().Get("tolerance"); toleranceStr != "" {
		if parsed, err := strconv.ParseFloat(toleranceStr, 64); err == nil && parsed >= 0 {
			tolerance = parsed
		}
	}

	rates, err := h.DB.GetAllInjuryRates(r.Context())
	if err != nil {
		zap.S().With(err).Error("failed to get injury rates")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(safety.SimilarIndustries(rates, target, tolerance)); err != nil {
		zap.S().With(err).Error("failed to encode similar industries response")
	}
}
