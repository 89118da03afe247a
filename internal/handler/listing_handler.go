package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/middleware"
	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/session"
)

// ListingHandler serves the listing CRUD surface.
type ListingHandler struct {
	svc  *service.ListingService
	sess *session.Manager
}

func NewListingHandler(svc *service.ListingService, sess *session.Manager) *ListingHandler {
	return &ListingHandler{svc: svc, sess: sess}
}

// RegisterRoutes wires the listing routes. Mutating routes and the forms that
// feed them sit behind the login gate; index and detail are public.
func (h *ListingHandler) RegisterRoutes(r *gin.Engine, requireLogin gin.HandlerFunc) {
	r.GET("/listings", h.Index)
	r.GET("/listings/new", requireLogin, h.New)
	r.POST("/listings", requireLogin, h.Create)
	r.GET("/listings/:id", h.Show)
	r.GET("/listings/:id/edit", requireLogin, h.Edit)
	r.PUT("/listings/:id", requireLogin, h.Update)
	r.DELETE("/listings/:id", requireLogin, h.Delete)
}

// Index renders all listings, no filter, no pagination.
func (h *ListingHandler) Index(c *gin.Context) {
	listings, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "listings/index", view(c, h.sess, gin.H{
		"Listings": listings,
	}))
}

// New renders the creation form.
func (h *ListingHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "listings/new", view(c, h.sess, nil))
}

// Create persists a new listing owned by the logged-in user.
func (h *ListingHandler) Create(c *gin.Context) {
	owner, _ := middleware.UserFrom(c)

	var in model.ListingInput
	if err := c.ShouldBind(&in); err != nil {
		h.sess.Error(c.Writer, c.Request, "Title is required")
		c.Redirect(http.StatusFound, "/listings/new")
		return
	}

	l, err := h.svc.Create(c.Request.Context(), in, owner.ID)
	if errors.Is(err, service.ErrTitleRequired) {
		h.sess.Error(c.Writer, c.Request, "Title is required")
		c.Redirect(http.StatusFound, "/listings/new")
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/listings/"+l.ID.Hex())
}

// Show renders the detail view with owner and reviews expanded.
func (h *ListingHandler) Show(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}
	detail, err := h.svc.GetDetail(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "listings/show", view(c, h.sess, gin.H{
		"Listing": detail.Listing,
		"Owner":   detail.Owner,
		"Reviews": detail.Reviews,
	}))
}

// Edit renders the edit form.
func (h *ListingHandler) Edit(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}
	l, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.HTML(http.StatusOK, "listings/edit", view(c, h.sess, gin.H{
		"Listing": l,
	}))
}

// Update applies a partial update and returns to the detail view.
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}

	var in model.ListingInput
	if err := c.ShouldBind(&in); err != nil {
		h.sess.Error(c.Writer, c.Request, "Title is required")
		c.Redirect(http.StatusFound, "/listings/"+id.Hex()+"/edit")
		return
	}

	err := h.svc.Update(c.Request.Context(), id, in)
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		h.sess.Error(c.Writer, c.Request, "Title is required")
		c.Redirect(http.StatusFound, "/listings/"+id.Hex()+"/edit")
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
	case err != nil:
		c.Error(err)
	default:
		c.Redirect(http.StatusFound, "/listings/"+id.Hex())
	}
}

// Delete removes the listing and cascades over its reviews.
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := h.listingID(c)
	if !ok {
		return
	}
	err := h.svc.DeleteCascade(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/listings")
}

// listingID parses the :id param. A malformed identifier is handled like a
// missing record.
func (h *ListingHandler) listingID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *ListingHandler) notFound(c *gin.Context) {
	h.sess.Error(c.Writer, c.Request, "Listing not found")
	c.Redirect(http.StatusFound, "/listings")
}
