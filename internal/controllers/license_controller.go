package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"ptd/internal/models"
	"ptd/internal/providers"
)

type LicenseController struct {
	logger  providers.Logger
	license providers.LicenseProviderInterface
}

func NewLicenseController(logger providers.Logger, license providers.LicenseProviderInterface) *LicenseController {
	return &LicenseController{
		logger:  logger,
		license: license,
	}
}

type activateRequest struct {
	Key string `json:"key"`
}

type licenseResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error,omitempty"`
	License models.LicenseState `json:"license"`
}

func (lc *LicenseController) Activate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload activateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state, err := lc.license.Activate(payload.Key)
	if err != nil {
		if errors.Is(err, providers.ErrInvalidLicenseKey) {
			lc.writeJson(w, http.StatusOK, licenseResponse{Success: false, Error: "invalid_key"})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	lc.logger.Infof(providers.TypeApp, "License activated")
	lc.writeJson(w, http.StatusOK, licenseResponse{Success: true, License: state})
}

func (lc *LicenseController) Deactivate(w http.ResponseWriter, r *http.Request) {
	lc.license.Deactivate()
	lc.logger.Infof(providers.TypeApp, "License deactivated")
	lc.writeJson(w, http.StatusOK, licenseResponse{Success: true})
}

func (lc *LicenseController) Info(w http.ResponseWriter, r *http.Request) {
	lc.writeJson(w, http.StatusOK, licenseResponse{Success: true, License: lc.license.State()})
}

func (lc *LicenseController) writeJson(w http.ResponseWriter, status int, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
