package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/auth"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/metrics"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/middleware"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123"

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/ping", nil)
		rid := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("propagated when given", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/ping", map[string]string{middleware.RequestIDHeader: "req-42"})
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestContextLogger(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		l := contextutil.GetLogger(c.Request.Context(), nil)
		assert.NotNil(t, l)
		c.Status(http.StatusNoContent)
	})

	w := perform(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/leaves", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetActor(c.Request.Context()))
	})

	now := time.Now()
	valid, _ := auth.IssueToken([]byte(testSecret), "admin", now, now.Add(time.Hour))
	expired, _ := auth.IssueToken([]byte(testSecret), "admin", now.Add(-2*time.Hour), now.Add(-time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing token", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Token not found"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Token not found"},
		{name: "garbage token", header: "Bearer abc", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(r, http.MethodPost, "/leaves", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/ping", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/ping", nil).Code)
	w := perform(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestIdempotency(t *testing.T) {
	const ttl = time.Hour
	cacheKey, lockKey := middleware.IdempotencyKeys(http.MethodPost, "/leaves", "", "key-1")
	headers := map[string]string{middleware.IdempotencyHeader: "key-1"}

	newRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.Use(middleware.Idempotency(rdb, ttl, zap.NewNop()))
		r.POST("/leaves", func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"id": 1})
		})
		r.GET("/leaves", func(c *gin.Context) {
			calls++
			c.Status(http.StatusOK)
		})
		return r, mock, &calls
	}

	t.Run("first request runs and is stored", func(t *testing.T) {
		r, mock, calls := newRouter(t)

		payload, _ := json.Marshal(middleware.CachedResponse{
			Status:      http.StatusCreated,
			ContentType: "application/json; charset=utf-8",
			Body:        `{"id":1}`,
		})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, payload, ttl).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := perform(r, http.MethodPost, "/leaves", headers)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		r, mock, calls := newRouter(t)

		payload, _ := json.Marshal(middleware.CachedResponse{
			Status:      http.StatusCreated,
			ContentType: "application/json; charset=utf-8",
			Body:        `{"id":1}`,
		})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := perform(r, http.MethodPost, "/leaves", headers)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"id":1}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(middleware.ReplayedHeader))
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		r, mock, calls := newRouter(t)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := perform(r, http.MethodPost, "/leaves", headers)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("requests without a key or with GET bypass redis", func(t *testing.T) {
		r, mock, calls := newRouter(t)

		assert.Equal(t, http.StatusCreated, perform(r, http.MethodPost, "/leaves", nil).Code)
		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/leaves", headers).Code)
		assert.Equal(t, 2, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client disables the check", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.Idempotency(nil, ttl, zap.NewNop()))
		r.POST("/leaves", func(c *gin.Context) { c.Status(http.StatusCreated) })

		assert.Equal(t, http.StatusCreated, perform(r, http.MethodPost, "/leaves", headers).Code)
	})
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Metrics())
	r.GET("/leaves/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodGet, "/leaves/7", nil)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HTTPRequestDuration), 1)
}
