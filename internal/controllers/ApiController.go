package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"ptd/internal/models"
	"ptd/internal/providers"
	"ptd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.TrackerServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.TrackerServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeJson(w http.ResponseWriter, status int, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// Listing caches go stale on any write, so mutations drop all of them.
func (ac *ApiController) invalidate() {
	ac.cache.Del("products")
	ac.cache.Del("alerts")
	ac.cache.Del("stats")
	ac.cache.Del("badge")
}

func (ac *ApiController) TrackProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.Reading
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.URL == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result := ac.service.TrackProduct(&payload)
	if result.Success {
		ac.invalidate()
	}
	ac.writeJson(w, http.StatusOK, result)
}

func (ac *ApiController) CheckPrice(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.Reading
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.URL == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	foreground := cast.ToBool(r.URL.Query().Get("foreground"))

	result := ac.service.CheckPrice(&payload, foreground)
	if result.Tracked {
		ac.invalidate()
	}
	ac.writeJson(w, http.StatusOK, result)
}

func (ac *ApiController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "products", func() (any, error) {
		return ac.service.GetProducts(), nil
	})
}

func (ac *ApiController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "alerts", func() (any, error) {
		return ac.service.GetAlerts(), nil
	})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "stats", func() (any, error) {
		return ac.service.GetStats(), nil
	})
}

func (ac *ApiController) GetBadge(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "badge", func() (any, error) {
		return ac.service.Badge(), nil
	})
}

func (ac *ApiController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.DeleteProduct(id)
	ac.invalidate()
	ac.writeJson(w, http.StatusOK, map[string]bool{"success": true})
}

func (ac *ApiController) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.DeleteAlert(id)
	ac.invalidate()
	ac.writeJson(w, http.StatusOK, map[string]bool{"success": true})
}

func (ac *ApiController) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	ac.service.DeleteAllProducts()
	ac.invalidate()
	ac.writeJson(w, http.StatusOK, map[string]bool{"success": true})
}

func (ac *ApiController) ClearAlerts(w http.ResponseWriter, r *http.Request) {
	ac.service.ClearAlerts()
	ac.invalidate()
	ac.writeJson(w, http.StatusOK, map[string]bool{"success": true})
}

// Settings dispatches on method since the path serves both reads and updates.
func (ac *ApiController) Settings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ac.GetSettings(w, r)
	case http.MethodPost:
		ac.UpdateSettings(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ac.writeJson(w, http.StatusOK, ac.service.GetSettings())
}

func (ac *ApiController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch models.SettingsPatch
	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	settings := ac.service.UpdateSettings(patch)
	ac.cache.Del("badge")
	ac.writeJson(w, http.StatusOK, settings)
}
