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

// ReviewHandler serves the review sub-resource under a listing.
type ReviewHandler struct {
	svc  *service.ReviewService
	sess *session.Manager
}

func NewReviewHandler(svc *service.ReviewService, sess *session.Manager) *ReviewHandler {
	return &ReviewHandler{svc: svc, sess: sess}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine, requireLogin gin.HandlerFunc) {
	r.POST("/listings/:id/reviews", requireLogin, h.Create)
	r.DELETE("/listings/:id/reviews/:reviewId", requireLogin, h.Delete)
}

// Create adds a review to its parent listing, authored by the logged-in user.
func (h *ReviewHandler) Create(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.listingNotFound(c)
		return
	}
	author, _ := middleware.UserFrom(c)

	var in model.ReviewInput
	if err := c.ShouldBind(&in); err != nil {
		h.sess.Error(c.Writer, c.Request, "Review comment is required")
		c.Redirect(http.StatusFound, "/listings/"+listingID.Hex())
		return
	}

	_, err = h.svc.Create(c.Request.Context(), listingID, in, author.ID)
	if errors.Is(err, service.ErrNotFound) {
		h.listingNotFound(c)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/listings/"+listingID.Hex())
}

// Delete removes a review from its parent and deletes the record.
func (h *ReviewHandler) Delete(c *gin.Context) {
	listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.listingNotFound(c)
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewId"))
	if err != nil {
		h.sess.Error(c.Writer, c.Request, "Review not found")
		c.Redirect(http.StatusFound, "/listings/"+listingID.Hex())
		return
	}

	err = h.svc.Delete(c.Request.Context(), listingID, reviewID)
	if errors.Is(err, service.ErrNotFound) {
		h.listingNotFound(c)
		return
	}
	if errors.Is(err, service.ErrReviewNotFound) {
		h.sess.Error(c.Writer, c.Request, "Review not found")
		c.Redirect(http.StatusFound, "/listings/"+listingID.Hex())
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/listings/"+listingID.Hex())
}

func (h *ReviewHandler) listingNotFound(c *gin.Context) {
	h.sess.Error(c.Writer, c.Request, "Listing not found")
	c.Redirect(http.StatusFound, "/listings")
}
