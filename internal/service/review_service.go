package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/repository"
)

// ReviewService contains business logic for reviews.
type ReviewService struct {
	reviews  ReviewStore
	listings ListingStore
}

func NewReviewService(reviews ReviewStore, listings ListingStore) *ReviewService {
	return &ReviewService{reviews: reviews, listings: listings}
}

// Create checks that the parent listing exists, inserts the review with its
// author taken from the session identity, and appends the new review's ID to
// the parent's reviews array.
func (s *ReviewService) Create(ctx context.Context, listingID primitive.ObjectID, in model.ReviewInput, authorID primitive.ObjectID) (*model.Review, error) {
	if _, err := s.listings.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ReviewService.Create: %w", err)
	}

	rev := &model.Review{
		Comment:   in.Comment,
		Rating:    in.Rating,
		Author:    authorID,
		CreatedAt: time.Now(),
	}
	id, err := s.reviews.Insert(ctx, rev)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Create: %w", err)
	}
	if err := s.listings.PushReview(ctx, listingID, id); err != nil {
		return nil, fmt.Errorf("ReviewService.Create: %w", err)
	}
	return rev, nil
}

// Delete removes the review reference from the parent listing and then the
// review record itself. The two writes are independent and not wrapped in a
// transaction; a crash between them leaves an orphaned review record.
// A missing parent yields ErrNotFound, a missing review ErrReviewNotFound.
func (s *ReviewService) Delete(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	err := s.listings.PullReview(ctx, listingID, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ReviewService.Delete: %w", err)
	}

	err = s.reviews.Delete(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrReviewNotFound
	}
	if err != nil {
		return fmt.Errorf("ReviewService.Delete: %w", err)
	}
	return nil
}
