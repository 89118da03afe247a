package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/navneetmaurya-hub/WonderLust/internal/middleware"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

// view decorates template data with the current user and any pending flash
// messages. Popping the flashes here keeps them one-request-lived.
func view(c *gin.Context, sess *session.Manager, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	success, errs := sess.Flashes(c.Writer, c.Request)
	data["Success"] = success
	data["Error"] = errs
	if u, ok := middleware.UserFrom(c); ok {
		data["CurrentUser"] = u
	}
	return data
}
