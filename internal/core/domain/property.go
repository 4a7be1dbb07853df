package domain

import "time"

// Property is a listing published by a seller. SellerID is set once from the
// authenticated creator and is never taken from client input.
type Property struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Location    string    `json:"location" bson:"location"`
	Images      []string  `json:"images" bson:"images"`
	SellerID    string    `json:"seller" bson:"seller_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
