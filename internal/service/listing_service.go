package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/repository"
)

// ListingService contains the listing business logic: owner stamping, image
// normalization and the delete cascade over the reviews collection.
type ListingService struct {
	listings ListingStore
	reviews  ReviewStore
	users    UserStore
}

func NewListingService(listings ListingStore, reviews ReviewStore, users UserStore) *ListingService {
	return &ListingService{listings: listings, reviews: reviews, users: users}
}

// ReviewDetail pairs a review with its resolved author. Author is nil when
// the referenced user no longer exists.
type ReviewDetail struct {
	Review model.Review
	Author *model.User
}

// ListingDetail is a listing with its owner and reviews expanded, the shape
// the detail view renders.
type ListingDetail struct {
	Listing model.Listing
	Owner   *model.User
	Reviews []ReviewDetail
}

func (s *ListingService) List(ctx context.Context) ([]model.Listing, error) {
	return s.listings.FindAll(ctx)
}

func (s *ListingService) Get(ctx context.Context, id primitive.ObjectID) (*model.Listing, error) {
	l, err := s.listings.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingService.Get: %w", err)
	}
	return l, nil
}

// GetDetail loads a listing and expands its owner reference and its reviews,
// each review with its author. Reviews keep the order stored on the listing.
func (s *ListingService) GetDetail(ctx context.Context, id primitive.ObjectID) (*ListingDetail, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{Listing: *l}

	owner, err := s.users.FindByID(ctx, l.Owner)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("ListingService.GetDetail: owner: %w", err)
	}
	detail.Owner = owner

	reviews, err := s.reviews.FindByIDs(ctx, l.Reviews)
	if err != nil {
		return nil, fmt.Errorf("ListingService.GetDetail: reviews: %w", err)
	}

	authorIDs := make([]primitive.ObjectID, 0, len(reviews))
	for _, rev := range reviews {
		authorIDs = append(authorIDs, rev.Author)
	}
	authors, err := s.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("ListingService.GetDetail: authors: %w", err)
	}
	authorByID := make(map[primitive.ObjectID]*model.User, len(authors))
	for i := range authors {
		authorByID[authors[i].ID] = &authors[i]
	}

	// Preserve the order of the listing's reviews array.
	reviewByID := make(map[primitive.ObjectID]model.Review, len(reviews))
	for _, rev := range reviews {
		reviewByID[rev.ID] = rev
	}
	for _, rid := range l.Reviews {
		rev, ok := reviewByID[rid]
		if !ok {
			continue
		}
		detail.Reviews = append(detail.Reviews, ReviewDetail{
			Review: rev,
			Author: authorByID[rev.Author],
		})
	}
	return detail, nil
}

// Create persists a new listing owned by ownerID. The owner always comes from
// the authenticated session, never from the payload. A non-blank image url is
// wrapped as {url, filename: "listingimage"}; otherwise the placeholder is used.
func (s *ListingService) Create(ctx context.Context, in model.ListingInput, ownerID primitive.ObjectID) (*model.Listing, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	l := &model.Listing{
		Title:       title,
		Description: in.Description,
		Image:       normalizeImage(in.ImageURL),
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
		Reviews:     []primitive.ObjectID{},
		Owner:       ownerID,
	}
	if _, err := s.listings.Insert(ctx, l); err != nil {
		return nil, fmt.Errorf("ListingService.Create: %w", err)
	}
	return l, nil
}

// Update applies a partial update. A blank image url leaves the stored image
// untouched; a non-blank one is normalized the same way as on create.
func (s *ListingService) Update(ctx context.Context, id primitive.ObjectID, in model.ListingInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrTitleRequired
	}

	upd := model.ListingUpdate{
		Title:       title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
	}
	if strings.TrimSpace(in.ImageURL) != "" {
		img := model.Image{URL: in.ImageURL, Filename: "listingimage"}
		upd.Image = &img
	}

	err := s.listings.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ListingService.Update: %w", err)
	}
	return nil
}

// DeleteCascade removes a listing and every review referenced by it. The
// reviews go first so a failure midway cannot leave reviews pointing at a
// deleted listing.
func (s *ListingService) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reviews.DeleteByIDs(ctx, l.Reviews); err != nil {
		return fmt.Errorf("ListingService.DeleteCascade: %w", err)
	}
	err = s.listings.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("ListingService.DeleteCascade: %w", err)
	}
	return nil
}

func normalizeImage(url string) model.Image {
	if strings.TrimSpace(url) == "" {
		return model.Image{URL: model.DefaultImageURL}
	}
	return model.Image{URL: url, Filename: "listingimage"}
}
