package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripnation/internal/api/controllers"
	"tripnation/internal/catalog"
	"tripnation/pkg/utils"
)

func TestRouterHealthMetricsAndAuth(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	tokens, err := utils.NewTokenManager("router-secret")
	require.NoError(t, err)

	// Handlers that would touch a service are never reached in this test.
	r := ProvideRouter(zap.NewNop(), tokens,
		controllers.NewPricingController(nil),
		controllers.NewCatalogController(cat),
		controllers.NewQuizController(nil),
		controllers.NewTripController(nil),
		controllers.NewReviewController(nil))
	gin.SetMode(gin.TestMode)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/catalog/packages", http.StatusOK},
		{http.MethodGet, "/catalog/guides/mariana", http.StatusOK},
		{http.MethodGet, "/trips", http.StatusUnauthorized},
		{http.MethodPost, "/trips/packages/1/interest", http.StatusUnauthorized},
		{http.MethodPost, "/reviews", http.StatusUnauthorized},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodGet, "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
