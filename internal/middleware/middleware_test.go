package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.SessionMiddleware(time.Hour))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.SessionIDKey))
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	r := newRouter()

	t.Run("uses_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.SessionHeader, "session-from-header")
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "session-from-cookie"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "session-from-header", w.Body.String())
		assert.Equal(t, "session-from-header", w.Header().Get(middleware.SessionHeader))
	})

	t.Run("falls_back_to_cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "session-from-cookie"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "session-from-cookie", w.Body.String())
	})

	t.Run("generates_new_session", func(t *testing.T) {
		for _, header := range []string{"", "bad id!", "short"} {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set(middleware.SessionHeader, header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			_, err := uuid.Parse(w.Body.String())
			require.NoError(t, err, header)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, w.Body.String(), cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
