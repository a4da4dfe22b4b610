package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptd/internal/controllers"
	"ptd/internal/providers"
	"ptd/internal/structures"
	"ptd/internal/testutil"
)

func newTestRouter() providers.RouterProviderInterface {
	ac := controllers.NewApiController(&testutil.MockLogger{}, &testutil.MockTrackerService{}, testutil.NewMockCache())
	lp := providers.NewLicenseProvider(&testutil.MockLogger{})
	lc := controllers.NewLicenseController(&testutil.MockLogger{}, lp)
	return InitRoutes(ac, lc, &structures.Config{})
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	routes := newTestRouter().GetRoutes()

	require.Len(t, routes, 14)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/track")
	assert.Contains(t, urls, "/check")
	assert.Contains(t, urls, "/products")
	assert.Contains(t, urls, "/product")
	assert.Contains(t, urls, "/products/clear")
	assert.Contains(t, urls, "/alerts")
	assert.Contains(t, urls, "/alert")
	assert.Contains(t, urls, "/alerts/clear")
	assert.Contains(t, urls, "/stats")
	assert.Contains(t, urls, "/badge")
	assert.Contains(t, urls, "/settings")
	assert.Contains(t, urls, "/license")
	assert.Contains(t, urls, "/license/activate")
	assert.Contains(t, urls, "/license/deactivate")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := newTestRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// POST /track with GET should fail
	req := httptest.NewRequest(http.MethodGet, "/track", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// GET /products with POST should fail
	req = httptest.NewRequest(http.MethodPost, "/products", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// DELETE /product with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/product", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// /settings serves GET and POST but nothing else
	req = httptest.NewRequest(http.MethodDelete, "/settings", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/settings", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
