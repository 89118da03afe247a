package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
)

// Service-level failures handlers branch on.
var (
	ErrNotFound           = errors.New("not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrUsernameTaken      = errors.New("the username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ListingStore is the data access the listing service needs. Satisfied by
// repository.ListingRepository.
type ListingStore interface {
	FindAll(ctx context.Context) ([]model.Listing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error)
	Insert(ctx context.Context, l *model.Listing) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd model.ListingUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error
}

// ReviewStore is satisfied by repository.ReviewRepository.
type ReviewStore interface {
	Insert(ctx context.Context, rev *model.Review) (primitive.ObjectID, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error
}

// UserStore is satisfied by repository.UserRepository.
type UserStore interface {
	Insert(ctx context.Context, u *model.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error)
}
