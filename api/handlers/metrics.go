package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medassist/medassist-api/api"
)

// formatRouteMetrics converts duration fields to milliseconds for JSON serialization
func formatRouteMetrics(routes map[string]*api.RouteMetrics) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(routes))
	for _, route := range routes {
		result = append(result, map[string]interface{}{
			"method":      route.Method,
			"path":        route.Path,
			"count":       route.Count,
			"errorCount":  route.ErrorCount,
			"avgTime":     route.AvgTime.Milliseconds(),
			"minTime":     route.MinTime.Milliseconds(),
			"maxTime":     route.MaxTime.Milliseconds(),
			"lastRequest": route.LastRequest,
		})
	}
	return result
}

// MetricsHandler handles metrics dashboard requests
type MetricsHandler struct{}

// GetMetricsSummary returns the summary metrics plus per-route aggregates
func (m MetricsHandler) GetMetricsSummary(w http.ResponseWriter, r *http.Request) {
	metrics := api.GetMetrics()

	response := map[string]interface{}{
		"summary": metrics.GetSummary(),
		"routes":  formatRouteMetrics(metrics.GetRouteMetrics()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
