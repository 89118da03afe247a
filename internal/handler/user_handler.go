package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

// UserHandler serves signup, login and logout.
type UserHandler struct {
	svc  *service.UserService
	sess *session.Manager
}

func NewUserHandler(svc *service.UserService, sess *session.Manager) *UserHandler {
	return &UserHandler{svc: svc, sess: sess}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/signup", h.SignupForm)
	r.POST("/signup", h.Signup)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email"`
	Password string `form:"password" binding:"required"`
}

func (h *UserHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/signup", view(c, h.sess, nil))
}

// Signup registers a new account and logs it in immediately.
func (h *UserHandler) Signup(c *gin.Context) {
	var in credentialsForm
	if err := c.ShouldBind(&in); err != nil {
		h.sess.Error(c.Writer, c.Request, "Username and password are required")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	u, err := h.svc.Register(c.Request.Context(), in.Username, in.Email, in.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		h.sess.Error(c.Writer, c.Request, "The username is already taken")
		c.Redirect(http.StatusFound, "/signup")
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.sess.SetUserID(c.Writer, c.Request, u.ID.Hex()); err != nil {
		c.Error(err)
		return
	}
	h.sess.Success(c.Writer, c.Request, "Welcome to the Listings App!")
	c.Redirect(http.StatusFound, "/listings")
}

func (h *UserHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "users/login", view(c, h.sess, nil))
}

// Login authenticates and establishes a session.
func (h *UserHandler) Login(c *gin.Context) {
	var in credentialsForm
	if err := c.ShouldBind(&in); err != nil {
		h.sess.Error(c.Writer, c.Request, "Invalid username or password!")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	u, err := h.svc.Authenticate(c.Request.Context(), in.Username, in.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.sess.Error(c.Writer, c.Request, "Invalid username or password!")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.sess.SetUserID(c.Writer, c.Request, u.ID.Hex()); err != nil {
		c.Error(err)
		return
	}
	h.sess.Success(c.Writer, c.Request, "Welcome back!")
	c.Redirect(http.StatusFound, "/listings")
}

// Logout tears down the session. A teardown failure goes to the generic
// error handler instead of being swallowed.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.sess.ClearUserID(c.Writer, c.Request); err != nil {
		c.Error(err)
		return
	}
	h.sess.Success(c.Writer, c.Request, "Logged out successfully!")
	c.Redirect(http.StatusFound, "/listings")
}
