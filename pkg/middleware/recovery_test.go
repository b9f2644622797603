package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recoveredBody struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func TestRecovery(t *testing.T) {
	t.Run("panic answers 500 with the request id", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.Use(Recovery())
		router.GET("/links", func(c *gin.Context) {
			panic("dashboard exploded")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/links", nil)
		req.Header.Set(RequestIDHeader, "req-500")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "req-500", w.Header().Get(RequestIDHeader))

		var body recoveredBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, body.Code)
		assert.Equal(t, "Internal server error", body.Message)
		assert.Equal(t, "req-500", body.RequestID)
	})

	t.Run("panic aborts the chain", func(t *testing.T) {
		var aborted, reached bool
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Next()
			aborted = c.IsAborted()
		})
		router.Use(Recovery())
		router.GET("/links", func(c *gin.Context) {
			var link *struct{ ID int64 }
			_ = link.ID
		}, func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/links", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.True(t, aborted)
		assert.False(t, reached)

		var body recoveredBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.RequestID)
	})

	t.Run("normal request passes through", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.Use(Recovery())
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.NotContains(t, w.Body.String(), "Internal server error")
	})
}
