package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is attached to exactly one listing. Author is set once at creation
// from the session identity.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Comment   string             `bson:"comment" json:"comment"`
	Rating    int                `bson:"rating" json:"rating"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReviewInput is the payload for creating a review.
type ReviewInput struct {
	Comment string `form:"comment" binding:"required"`
	Rating  int    `form:"rating" binding:"omitempty,min=1,max=5"`
}
