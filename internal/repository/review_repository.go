package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/navneetmaurya-hub/WonderLust/internal/model"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

// Insert saves a new review and returns its generated ID.
func (r *ReviewRepository) Insert(ctx context.Context, rev *model.Review) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	rev.ID = id
	return id, nil
}

// FindByIDs returns the reviews whose identifiers are in ids. Missing
// identifiers are skipped, not errors.
func (r *ReviewRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByIDs: %w", err)
	}
	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByIDs: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("ReviewRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByIDs removes every review whose identifier is in ids. Used by the
// listing delete cascade.
func (r *ReviewRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("ReviewRepository.DeleteByIDs: %w", err)
	}
	return nil
}
