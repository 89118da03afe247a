package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navneetmaurya-hub/WonderLust/internal/middleware"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

func newErrorHandlerEngine(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sess := session.NewManager("test-secret", zap.NewNop())
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), sess))
	return r, sess
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	r, sess := newErrorHandlerEngine(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/listings", w.Header().Get("Location"))

	// The flash survives into the redirected request.
	next := httptest.NewRequest(http.MethodGet, "/listings", nil)
	for _, ck := range w.Result().Cookies() {
		next.AddCookie(ck)
	}
	_, errs := sess.Flashes(httptest.NewRecorder(), next)
	assert.Equal(t, []string{"Something went wrong"}, errs)
}

func TestErrorHandlerReportedError(t *testing.T) {
	r, sess := newErrorHandlerEngine(t)
	r.GET("/fail", func(c *gin.Context) {
		c.Error(errors.New("store down"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/listings", w.Header().Get("Location"))

	next := httptest.NewRequest(http.MethodGet, "/listings", nil)
	for _, ck := range w.Result().Cookies() {
		next.AddCookie(ck)
	}
	_, errs := sess.Flashes(httptest.NewRecorder(), next)
	assert.Equal(t, []string{"store down"}, errs)
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	r, _ := newErrorHandlerEngine(t)
	r.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusOK, "already sent")
		c.Error(errors.New("too late"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "already sent", w.Body.String())
	assert.Empty(t, w.Header().Get("Location"))
}
