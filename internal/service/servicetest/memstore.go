// Package servicetest provides in-memory store implementations for tests
// that exercise the service and handler layers without a running MongoDB.
package servicetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/repository"
)

// ListingStore is an in-memory stand-in for repository.ListingRepository.
type ListingStore struct {
	mu       sync.Mutex
	listings map[primitive.ObjectID]model.Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{listings: make(map[primitive.ObjectID]model.Listing)}
}

func (s *ListingStore) FindAll(ctx context.Context) ([]model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, l)
	}
	return out, nil
}

func (s *ListingStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := l
	return &cp, nil
}

func (s *ListingStore) Insert(ctx context.Context, l *model.Listing) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	s.listings[l.ID] = *l
	return l.ID, nil
}

func (s *ListingStore) Update(ctx context.Context, id primitive.ObjectID, upd model.ListingUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return repository.ErrNotFound
	}
	l.Title = upd.Title
	l.Description = upd.Description
	l.Price = upd.Price
	l.Location = upd.Location
	l.Country = upd.Country
	if upd.Image != nil {
		l.Image = *upd.Image
	}
	s.listings[id] = l
	return nil
}

func (s *ListingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.listings, id)
	return nil
}

func (s *ListingStore) PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return repository.ErrNotFound
	}
	l.Reviews = append(l.Reviews, reviewID)
	s.listings[id] = l
	return nil
}

func (s *ListingStore) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return repository.ErrNotFound
	}
	kept := l.Reviews[:0]
	for _, rid := range l.Reviews {
		if rid != reviewID {
			kept = append(kept, rid)
		}
	}
	l.Reviews = kept
	s.listings[id] = l
	return nil
}

// Len reports how many listings are stored.
func (s *ListingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listings)
}

// ReviewStore is an in-memory stand-in for repository.ReviewRepository.
type ReviewStore struct {
	mu      sync.Mutex
	reviews map[primitive.ObjectID]model.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: make(map[primitive.ObjectID]model.Review)}
}

func (s *ReviewStore) Insert(ctx context.Context, rev *model.Review) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rev.ID.IsZero() {
		rev.ID = primitive.NewObjectID()
	}
	s.reviews[rev.ID] = *rev
	return rev.ID, nil
}

func (s *ReviewStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Review
	for _, id := range ids {
		if rev, ok := s.reviews[id]; ok {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *ReviewStore) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.reviews, id)
	}
	return nil
}

// Len reports how many review records remain.
func (s *ReviewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

// Has reports whether a review record exists.
func (s *ReviewStore) Has(id primitive.ObjectID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reviews[id]
	return ok
}

// UserStore is an in-memory stand-in for repository.UserRepository,
// including its unique-username behavior.
type UserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[primitive.ObjectID]model.User)}
}

func (s *UserStore) Insert(ctx context.Context, u *model.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return primitive.NilObjectID, repository.ErrDuplicateUsername
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return u.ID, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// Len reports how many users are stored.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
