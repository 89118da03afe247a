package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
)

// ErrNotFound is returned when a document with the given identifier does not
// exist in its collection.
var ErrNotFound = errors.New("not found")

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection("listings")}
}

// FindAll returns every listing, unfiltered and unpaginated.
func (r *ListingRepository) FindAll(ctx context.Context) ([]model.Listing, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindAll: %w", err)
	}
	var listings []model.Listing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("ListingRepository.FindAll: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Listing, error) {
	var l model.Listing
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindByID: %w", err)
	}
	return &l, nil
}

// Insert saves a new listing and returns its generated ID.
func (r *ListingRepository) Insert(ctx context.Context, l *model.Listing) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("ListingRepository.Insert: %w", err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	l.ID = id
	return id, nil
}

// Update applies a partial update. Fields absent from upd's $set document are
// left untouched; in particular the stored image survives when upd.Image is nil.
func (r *ListingRepository) Update(ctx context.Context, id primitive.ObjectID, upd model.ListingUpdate) error {
	set := bson.M{
		"title":       upd.Title,
		"description": upd.Description,
		"price":       upd.Price,
		"location":    upd.Location,
		"country":     upd.Country,
	}
	if upd.Image != nil {
		set["image"] = upd.Image
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushReview appends a review identifier to the listing's reviews array.
func (r *ListingRepository) PushReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$push": bson.M{"reviews": reviewID}})
	if err != nil {
		return fmt.Errorf("ListingRepository.PushReview: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PullReview removes a review identifier from the listing's reviews array.
func (r *ListingRepository) PullReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"reviews": reviewID}})
	if err != nil {
		return fmt.Errorf("ListingRepository.PullReview: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
