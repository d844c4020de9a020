package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
	"interview-tracker/pkg/auth"
	"interview-tracker/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperror.Validation(`"name" is required`))
	})
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Job not found"))
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("pool closed"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation Error", body.Message)
	assert.Equal(t, `"name" is required`, body.Error)
	assert.NotEmpty(t, body.RequestID)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Job not found", body.Message)
	assert.Nil(t, body.Error)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Equal(t, "pool closed", body.Error)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("nil map") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode(t, w).Message)
}

func TestRequestIDPropagation(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", decode(t, w).RequestID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	w = serve(r, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com/"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		return serve(r, req)
	}

	w := preflight("https://app.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	wildcard := gin.New()
	wildcard.Use(CORSMiddleware([]string{"*"}))
	wildcard.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.test")
	w = serve(wildcard, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", AuthMiddleware(tokens, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(string(domain.KeyUserID)),
			"email": c.GetString(string(domain.KeyUserEmail)),
		})
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authorization header required", decode(t, w).Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := serve(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decode(t, w).Message)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := tokens.Issue("user-1", "grace@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := serve(r, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"user-1","email":"grace@example.com"}`, w.Body.String())
	})
}

func TestRateLimiterInMemory(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(AuthRateLimitConfig(2, time.Minute), nil, nil)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		return serve(r, req)
	}

	assert.Equal(t, http.StatusOK, hit().Code)
	w := hit()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusOK, hit().Code)
}

func TestRateLimiterRedisUnavailable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	for _, tc := range []struct {
		name       string
		failClosed bool
		want       int
	}{
		{"fail open falls back to memory", false, http.StatusOK},
		{"fail closed rejects", true, http.StatusServiceUnavailable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := AuthRateLimitConfig(5, time.Minute)
			cfg.FailClosed = tc.failClosed
			rl := NewRateLimiter(cfg, client, nil)

			r := gin.New()
			r.POST("/signup", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
			w := serve(r, httptest.NewRequest(http.MethodPost, "/signup", nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := metrics.NewHTTPMetrics(registry)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/api/jobs/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/jobs/2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	count, err := testutil.GatherAndCount(registry, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
