package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

// ErrorHandler is the catch-all: a panic or an error a handler reported via
// c.Error becomes a logged redirect to the listing index with a flash
// message, never a crashed request.
func ErrorHandler(log *zap.Logger, sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in request handler",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				sess.Error(c.Writer, c.Request, "Something went wrong")
				c.Redirect(http.StatusFound, "/listings")
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			log.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			sess.Error(c.Writer, c.Request, err.Error())
			c.Redirect(http.StatusFound, "/listings")
		}
	}
}
