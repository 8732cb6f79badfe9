package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"twscreener/client"
	"twscreener/config"
	"twscreener/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedModel struct{}

func (cannedModel) Generate(ctx context.Context, req client.GenerateRequest) (string, error) {
	return "```json\n{\"results\": [],}\n```", nil
}

func testConfigs(t *testing.T, raw string) *config.SystemConfigs {
	t.Helper()
	env, err := config.ParseConfig(raw)
	require.NoError(t, err)
	return &config.SystemConfigs{Config: env}
}

func TestNewModelClient(t *testing.T) {
	rest, err := NewModelClient(context.Background(), testConfigs(t, `{"geminiApiKey": "k", "transport": "rest"}`))
	require.NoError(t, err)
	assert.IsType(t, &client.GeminiRestClient{}, rest)

	sys := testConfigs(t, `{"geminiApiKey": "k"}`)
	sys.Config.Transport = "carrier-pigeon"
	_, err = NewModelClient(context.Background(), sys)
	assert.Error(t, err)
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sys := testConfigs(t, `{"geminiApiKey": "k"}`)
	r := SetupRouter(sys, config.NewConfigManager(sys.Runtime()), cannedModel{})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/openapi.json", http.StatusOK},
		{http.MethodGet, "/api/dashboard", http.StatusOK},
		{http.MethodPost, "/api/scan/market", http.StatusOK},
		{http.MethodGet, "/api/views/market", http.StatusOK},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.status, w.Code, tt.path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards/market", nil))
	assert.Contains(t, w.Body.String(), `"status":"`+string(model.CardSuccess)+`"`)
}
