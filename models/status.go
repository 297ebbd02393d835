package models

// StatusResponse describes the operational status of the API server
type StatusResponse struct {
	Status          string   `json:"status"`
	Version         string   `json:"version"`
	ActiveProtocols []string `json:"active_protocols"`
}

// HealthCheckResponse returns the health check response struct
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
