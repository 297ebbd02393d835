package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist/medassist-api/config"
)

func TestGenerateUploadSignature(t *testing.T) {
	u := Uploads{Config: config.Config{
		CloudinaryUploadPreset: "wound-photos",
		CloudinaryAPIKey:       "test-key",
		CloudinaryAPISecret:    "test-secret",
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/medical/upload-signature", nil)
	rr := httptest.NewRecorder()

	u.GenerateUploadSignature(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.NotEmpty(t, got["timestamp"])
	assert.NotEmpty(t, got["signature"])
	assert.Equal(t, "test-key", got["apiKey"])
}

func TestGenerateUploadSignatureUnconfigured(t *testing.T) {
	u := Uploads{Config: config.Config{}}

	req := httptest.NewRequest(http.MethodPost, "/api/medical/upload-signature", nil)
	rr := httptest.NewRecorder()

	u.GenerateUploadSignature(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
