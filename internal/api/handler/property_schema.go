package handler

import (
	"time"

	"github.com/prsunet/realestate-api/internal/core/domain"
)

type createPropertyRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price"       validate:"required"`
	Location    string   `json:"location"    validate:"required"`
	Images      []string `json:"images"      validate:"required"`
}

// updatePropertyRequest carries a partial update: absent fields stay nil and
// leave the stored value untouched.
type updatePropertyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
	Images      []string `json:"images"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type sellerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// propertyResponse is the read view with the seller resolved to a summary.
type propertyResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Location    string         `json:"location"`
	Images      []string       `json:"images"`
	Seller      sellerResponse `json:"seller"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type updatePropertyResponse struct {
	Message  string           `json:"message"`
	Property *domain.Property `json:"property"`
}

type messageResponse struct {
	Message string `json:"message"`
}
