package ports

import (
	"context"
	"time"

	"github.com/prsunet/realestate-api/internal/core/domain"
)

// CreatePropertyInput carries all data needed to publish a listing.
// SellerID is always the authenticated caller, never client input.
type CreatePropertyInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Images      []string
	SellerID    string
}

// UpdatePropertyInput holds a partial update: nil fields are left untouched.
type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	Images      []string
}

// SellerSummary is the public view of a listing's seller.
type SellerSummary struct {
	Name  string
	Email string
}

// PropertyDetail is the read view of a listing with the seller resolved.
type PropertyDetail struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Location    string
	Images      []string
	Seller      SellerSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyService defines use-case operations for listings.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	// List and Get resolve the seller to a SellerSummary.
	List(ctx context.Context) ([]PropertyDetail, error)
	Get(ctx context.Context, id string) (*PropertyDetail, error)
	// Update and Delete enforce the ownership policy: only the stored
	// seller may mutate a listing.
	Update(ctx context.Context, id, callerID string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id, callerID string) error
}
