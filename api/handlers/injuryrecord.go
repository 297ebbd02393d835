package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/databases"
)

// InjuryRecord represents the injury record handler
type InjuryRecord struct {
	DB databases.InjuryRecordDatabase
}

// InjuryRecordsHandler handles GET requests for persisted injury records
func (h InjuryRecord) InjuryRecordsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	userID := r.URL.Query().Get("user_id")
	limitStr := r.URL.Query().Get("limit")
	pageStr := r.URL.Query().Get("page")

	limit := int64(20)
	page := int64(0)

	if limitStr != "" {
		if parsedLimit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	if pageStr != "" {
		if parsedPage, err := strconv.ParseInt(pageStr, 10, 64); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	response, err := h.DB.GetInjuryRecords(r.Context(), userID, limit, page)
	if err != nil {
		zap.S().With(err).Error("failed to get injury records")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zap.S().With(err).Error("failed to encode injury records response")
	}
}

// InjuryRecordByIDHandler handles GET requests for a single injury record
func (h InjuryRecord) InjuryRecordByIDHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	vars := mux.Vars(r)
	id := vars["record_id"]

	if id == "" {
		http.Error(w, "injury record ID is required", http.StatusBadRequest)
		return
	}

	record, err := h.DB.GetInjuryRecordByID(r.Context(), id)
	if err != nil {
		zap.S().With(err).Error("failed to get injury record by ID")
		http.Error(w, "Injury record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		zap.S().With(err).Error("failed to encode injury record response")
	}
}

// DeleteInjuryRecordHandler handles DELETE requests for a single injury record
func (h InjuryRecord) DeleteInjuryRecordHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.DB == nil {
		persistenceUnavailable(w)
		return
	}

	vars := mux.Vars(r)
	id := vars["record_id"]

	if err := h.DB.DeleteInjuryRecord(r.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Injury record not found", http.StatusNotFound)
			return
		}
		zap.S().With(err).Error("failed to delete injury record")
		http.Error(w, "Injury record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

func persistenceUnavailable(w http.ResponseWriter) {
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(`{"error": "persistence is not configured"}`))
}
