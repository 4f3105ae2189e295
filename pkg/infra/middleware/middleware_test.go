package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRecovery_StackTraceEnabled(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryWithConfig(RecoveryConfig{EnableStackTrace: true}))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())

	var inContext string
	r.GET("/", func(c *gin.Context) {
		inContext = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(HeaderXRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, inContext)
}

func TestRequestID_ClientProvided(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "client-id-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "client-id-123", w.Header().Get(HeaderXRequestID))
}

func TestCORSConfig_Validate(t *testing.T) {
	cfg := DefaultCORSConfig
	assert.Error(t, cfg.Validate())

	cfg.AllowOrigins = []string{"https://app.example.com"}
	assert.NoError(t, cfg.Validate())

	cfg.AllowOrigins = []string{"*"}
	cfg.AllowCredentials = true
	assert.Error(t, cfg.Validate())
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := DefaultCORSConfig
	cfg.AllowOrigins = []string{"https://app.example.com"}
	mw, err := CORSWithConfig(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	cfg := DefaultCORSConfig
	cfg.AllowOrigins = []string{"https://app.example.com"}
	mw, err := CORSWithConfig(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := DefaultCORSConfig
	cfg.AllowOrigins = []string{"https://app.example.com"}
	mw, err := CORSWithConfig(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
