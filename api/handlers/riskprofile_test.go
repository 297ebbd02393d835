package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medassist/medassist-api/databases/mocks"
	"github.com/medassist/medassist-api/models"
)

func float64Ptr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64       { return &i }

func TestRiskProfileHandler(t *testing.T) {
	rate := float64Ptr(4.2)
	fatalities := int64Ptr(96)

	mockDB := mocks.NewInjuryRateDatabase(t)
	mockDB.On("GetInjuryRate", mock.Anything, "23611").Return(&models.InjuryRate{
		NAICSCode:    "23611",
		IndustryName: "Residential building construction",
		InjuryRate:   rate,
	}, nil)
	mockDB.On("GetFatalityRecord", mock.Anything, "23611").Return(&models.InjuryRate{
		NAICSCode:  "23611",
		TotalCases: fatalities,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/safety/risk-profile/23611", nil)
	req = mux.SetURLVars(req, map[string]string{"naics_code": "23611"})
	rr := httptest.NewRecorder()

	h := Safety{DB: mockDB}
	h.RiskProfileHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.RiskProfile
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "23611", got.NAICSCode)
	assert.Equal(t, "Residential building construction", got.IndustryName)
	// min(4.2*10, 50) + min(96*0.5, 50) = 42 + 48
	assert.Equal(t, 90.0, got.RiskScore)
	assert.Equal(t, "CRITICAL", got.RiskCategory)
	assert.NotEmpty(t, got.Recommendations)
}

func TestRiskProfileHandlerUnknownIndustry(t *testing.T) {
	mockDB := mocks.NewInjuryRateDatabase(t)
	mockDB.On("GetInjuryRate", mock.Anything, "99999").Return(nil, mongo.ErrNoDocuments)
	mockDB.On("GetFatalityRecord", mock.Anything, "99999").Return(nil, mongo.ErrNoDocuments)

	req := httptest.NewRequest(http.MethodGet, "/api/safety/risk-profile/99999", nil)
	req = mux.SetURLVars(req, map[string]string{"naics_code": "99999"})
	rr := httptest.NewRecorder()

	h := Safety{DB: mockDB}
	h.RiskProfileHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.RiskProfile
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "Unknown Industry", got.IndustryName)
	assert.Nil(t, got.InjuryRate)
	assert.Equal(t, 0.0, got.RiskScore)
	assert.Equal(t, "LOW", got.RiskCategory)
}

func TestRiskProfileHandlerWithoutPersistence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/safety/risk-profile/23611", nil)
	rr := httptest.NewRecorder()

	h := Safety{DB: nil}
	h.RiskProfileHandler(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestIndustryBenchmarkHandler(t *testing.T) {
	mockDB := mocks.NewInjuryRateDatabase(t)
	mockDB.On("GetInjuryRatesByPrefix", mock.Anything, "236").Return([]models.InjuryRate{
		{NAICSCode: "23611", IndustryName: "Residential building construction", InjuryRate: float64Ptr(4.2)},
		{NAICSCode: "23622", IndustryName: "Commercial building construction", InjuryRate: float64Ptr(2.1)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/safety/industry-benchmark/236", nil)
	req = mux.SetURLVars(req, map[string]string{"naics_prefix": "236"})
	rr := httptest.NewRecorder()

	h := Safety{DB: mockDB}
	h.IndustryBenchmarkHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.IndustryBenchmark
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "23611", got[0].NAICSCode)
}

func TestSimilarIndustriesHandler(t *testing.T) {
	mockDB := mocks.NewInjuryRateDatabase(t)
	mockDB.On("GetAllInjuryRates", mock.Anything).Return([]models.InjuryRate{
		{NAICSCode: "23611", IndustryName: "Residential building construction", InjuryRate: float64Ptr(4.2)},
		{NAICSCode: "23622", IndustryName: "Commercial building construction", InjuryRate: float64Ptr(2.1)},
		{NAICSCode: "23711", IndustryName: "Water and sewer line construction", InjuryRate: float64Ptr(4.0)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/safety/similar-industries?injury_rate=4.0&tolerance=0.3", nil)
	rr := httptest.NewRecorder()

	h := Safety{DB: mockDB}
	h.SimilarIndustriesHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.SimilarIndustry
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// sorted by distance to the target rate
	assert.Equal(t, "23711", got[0].NAICSCode)
	assert.Equal(t, "23611", got[1].NAICSCode)
}

func TestSimilarIndustriesHandlerMissingRate(t *testing.T) {
	mockDB := mocks.NewInjuryRateDatabase(t)

	req := httptest.NewRequest(http.MethodGet, "/api/safety/similar-industries", nil)
	rr := httptest.NewRecorder()

	h := Safety{DB: mockDB}
	h.SimilarIndustriesHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
