package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User holds account data. PasswordHash is opaque to everything outside the
// user service.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
}
