package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultImageURL is used when a listing is created without an image.
const DefaultImageURL = "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=800&q=80"

// Image is the embedded image subdocument of a listing.
type Image struct {
	URL      string `bson:"url" json:"url"`
	Filename string `bson:"filename" json:"filename"`
}

// Listing is a rentable-property record. Owner is set once at creation from
// the session identity and never from a request payload. Reviews holds the
// ordered identifiers of the reviews attached to this listing.
type Listing struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Image       Image                `bson:"image" json:"image"`
	Price       float64              `bson:"price" json:"price"`
	Location    string               `bson:"location" json:"location"`
	Country     string               `bson:"country" json:"country"`
	Reviews     []primitive.ObjectID `bson:"reviews" json:"reviews"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
}

// ListingInput is the payload for creating a listing. ImageURL is the raw
// url string from the form; normalization happens in the service.
type ListingInput struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	ImageURL    string  `form:"image"`
	Price       float64 `form:"price"`
	Location    string  `form:"location"`
	Country     string  `form:"country"`
}

// ListingUpdate describes a partial update. A nil Image means the stored
// image is left untouched.
type ListingUpdate struct {
	Title       string
	Description string
	Image       *Image
	Price       float64
	Location    string
	Country     string
}
