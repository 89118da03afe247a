package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/service/servicetest"
)

func newReviewFixtures(t *testing.T) (*service.ReviewService, *service.ListingService, *servicetest.ListingStore, *servicetest.ReviewStore) {
	t.Helper()
	listings := servicetest.NewListingStore()
	reviews := servicetest.NewReviewStore()
	users := servicetest.NewUserStore()
	return service.NewReviewService(reviews, listings),
		service.NewListingService(listings, reviews, users),
		listings, reviews
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	author := primitive.NewObjectID()

	t.Run("stamps the author and appends to the parent", func(t *testing.T) {
		revSvc, listingSvc, listings, _ := newReviewFixtures(t)
		l, err := listingSvc.Create(ctx, model.ListingInput{Title: "Cabin"}, owner)
		require.NoError(t, err)

		rev, err := revSvc.Create(ctx, l.ID, model.ReviewInput{Comment: "lovely", Rating: 5}, author)
		require.NoError(t, err)
		assert.Equal(t, author, rev.Author)
		assert.False(t, rev.CreatedAt.IsZero())

		parent, err := listings.FindByID(ctx, l.ID)
		require.NoError(t, err)
		require.Len(t, parent.Reviews, 1)
		assert.Equal(t, rev.ID, parent.Reviews[0])
	})

	t.Run("parent listing must exist", func(t *testing.T) {
		revSvc, _, _, reviews := newReviewFixtures(t)

		_, err := revSvc.Create(ctx, primitive.NewObjectID(), model.ReviewInput{Comment: "x", Rating: 1}, author)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Equal(t, 0, reviews.Len())
	})
}

func TestReviewDelete(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("removes the reference and the record", func(t *testing.T) {
		revSvc, listingSvc, listings, reviews := newReviewFixtures(t)
		l, err := listingSvc.Create(ctx, model.ListingInput{Title: "Cabin", Location: "Goa"}, owner)
		require.NoError(t, err)
		doomed, err := revSvc.Create(ctx, l.ID, model.ReviewInput{Comment: "meh", Rating: 2}, owner)
		require.NoError(t, err)
		survivor, err := revSvc.Create(ctx, l.ID, model.ReviewInput{Comment: "great", Rating: 5}, owner)
		require.NoError(t, err)

		require.NoError(t, revSvc.Delete(ctx, l.ID, doomed.ID))

		assert.False(t, reviews.Has(doomed.ID))
		assert.True(t, reviews.Has(survivor.ID))

		parent, err := listings.FindByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{survivor.ID}, parent.Reviews)
		// The parent is otherwise unmodified.
		assert.Equal(t, "Cabin", parent.Title)
		assert.Equal(t, "Goa", parent.Location)
	})

	t.Run("missing parent listing", func(t *testing.T) {
		revSvc, _, _, _ := newReviewFixtures(t)
		err := revSvc.Delete(ctx, primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("missing review under an existing parent", func(t *testing.T) {
		revSvc, listingSvc, _, _ := newReviewFixtures(t)
		l, err := listingSvc.Create(ctx, model.ListingInput{Title: "Cabin"}, owner)
		require.NoError(t, err)

		err = revSvc.Delete(ctx, l.ID, primitive.NewObjectID())
		assert.ErrorIs(t, err, service.ErrReviewNotFound)
		assert.NotErrorIs(t, err, service.ErrNotFound)
	})
}
