package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

const currentUserKey = "currentUser"

// CurrentUser resolves the session identity into a user record and attaches
// it to the request context. A stale session pointing at a deleted user is
// treated as no session.
func CurrentUser(sess *session.Manager, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hex, ok := sess.UserID(c.Request); ok {
			if id, err := primitive.ObjectIDFromHex(hex); err == nil {
				if u, err := users.GetByID(c.Request.Context(), id); err == nil {
					c.Set(currentUserKey, u)
				}
			}
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user attached by CurrentUser.
func UserFrom(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok
}

// RequireLogin is the authorization gate: it only asks whether a session
// identity is attached, nothing about ownership or roles.
func RequireLogin(sess *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFrom(c); !ok {
			sess.Error(c.Writer, c.Request, "You must be logged in to do that")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
