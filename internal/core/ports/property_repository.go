package ports

import (
	"context"

	"github.com/prsunet/realestate-api/internal/core/domain"
)

// PropertyRepository defines persistence operations for property listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindAll(ctx context.Context) ([]*domain.Property, error)
	// Update replaces the stored document with p (matched by p.ID).
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}
