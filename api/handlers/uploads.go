package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cldapi "github.com/cloudinary/cloudinary-go/v2/api"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/config"
)

// Uploads handles signing requests for direct-to-Cloudinary photo uploads.
// Responders attach wound photos to a record from the field, so the server
// only signs the upload and never proxies the image bytes.
type Uploads struct {
	Config config.Config
}

// GenerateUploadSignature generates a signed payload for Cloudinary uploads
func (u Uploads) GenerateUploadSignature(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if u.Config.CloudinaryUploadPreset == "" || u.Config.CloudinaryAPISecret == "" {
		http.Error(w, "upload signing is not configured", http.StatusInternalServerError)
		return
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := url.Values{}
	params.Set("timestamp", timestamp)
	params.Set("upload_preset", u.Config.CloudinaryUploadPreset)

	signature, err := cldapi.SignParameters(params, u.Config.CloudinaryAPISecret)
	if err != nil {
		zap.S().With(err).Error("failed to sign upload parameters")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
		"apiKey":    u.Config.CloudinaryAPIKey,
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
