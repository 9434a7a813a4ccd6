package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs successful request at info", func(t *testing.T) {
		log, logs := newObservedLogger()

		engine := gin.New()
		engine.Use(GinMiddleware(log))
		engine.GET("/trips", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest("GET", "/trips?sort=newest", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zap.InfoLevel, entry.Level)
		assert.Equal(t, "HTTP Request", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/trips", fields["path"])
		assert.Equal(t, "sort=newest", fields["query"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
	})

	t.Run("logs client error at warn", func(t *testing.T) {
		log, logs := newObservedLogger()

		engine := gin.New()
		engine.Use(GinMiddleware(log))
		engine.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		req := httptest.NewRequest("GET", "/missing", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
	})

	t.Run("logs server error at error", func(t *testing.T) {
		log, logs := newObservedLogger()

		engine := gin.New()
		engine.Use(GinMiddleware(log))
		engine.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		req := httptest.NewRequest("GET", "/boom", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("carries request id set by earlier middleware", func(t *testing.T) {
		log, logs := newObservedLogger()

		engine := gin.New()
		engine.Use(func(c *gin.Context) {
			c.Set("request_id", "req-123")
			c.Next()
		})
		engine.Use(GinMiddleware(log))
		engine.GET("/", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
	})
}

func TestRecovery(t *testing.T) {
	log, logs := newObservedLogger()

	engine := gin.New()
	engine.Use(Recovery(log))
	engine.GET("/panic", func(c *gin.Context) {
		panic("something broke")
	})

	req := httptest.NewRequest("GET", "/panic", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "Panic recovered", entry.Message)
	assert.Equal(t, "something broke", entry.ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	t.Run("returns request-scoped logger", func(t *testing.T) {
		log, _ := newObservedLogger()

		engine := gin.New()
		engine.Use(GinMiddleware(log))
		engine.GET("/", func(c *gin.Context) {
			assert.NotNil(t, GetGinLogger(c))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	})

	t.Run("falls back to nop without middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.NotNil(t, GetGinLogger(c))
	})
}
