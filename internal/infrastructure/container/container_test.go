package container

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, Env: "test"},
		Store:  config.StoreConfig{Driver: config.StoreDriverMemory, Timeout: time.Second},
		JWT:    config.JWTConfig{Secret: "0123456789abcdef0123456789abcdef", ExpiryHours: 24},
		Auth:   config.AuthConfig{BcryptCost: 4},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestNewContainer_MemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewContainer(memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.DB)
	assert.Nil(t, app.Mongo)
	assert.Nil(t, app.Redis)

	handler := app.Server.Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","store":"memory"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"a@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewContainer_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewContainer(memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	req := httptest.NewRequest(http.MethodOptions, "/addmatch", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	app.Server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "cassandra"

	_, err := NewContainer(cfg, zap.NewNop())
	assert.Error(t, err)
}
