package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/prsunet/realestate-api/internal/api/metrics"
	"github.com/prsunet/realestate-api/internal/core/domain"
	"github.com/prsunet/realestate-api/internal/core/ports"
)

// PropertyService implements listing CRUD with the ownership policy applied
// to every mutation.
type PropertyService struct {
	repo   ports.PropertyRepository
	users  ports.UserRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

// NewPropertyService creates a PropertyService. cache may be nil, in which
// case every List call hits the repository.
func NewPropertyService(repo ports.PropertyRepository, users ports.UserRepository, cache ports.ListingCache, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, users: users, cache: cache, logger: logger}
}

// Create publishes a new listing owned by input.SellerID.
func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		Images:      input.Images,
		SellerID:    input.SellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.PropertiesCreatedTotal.Inc()
	s.logger.Info().Str("property_id", created.ID).Str("seller_id", created.SellerID).Msg("property created")
	return created, nil
}

// List returns all listings with sellers resolved. Results are served from
// the cache when fresh; cache failures fall through to the repository.
func (s *PropertyService) List(ctx context.Context) ([]ports.PropertyDetail, error) {
	if s.cache != nil {
		payload, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("listing cache read failed")
		} else if payload != nil {
			var cached []ports.PropertyDetail
			if err := json.Unmarshal(payload, &cached); err == nil {
				metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
				return cached, nil
			}
		}
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
	}

	properties, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sellers := make(map[string]ports.SellerSummary, len(properties))
	details := make([]ports.PropertyDetail, 0, len(properties))
	for _, p := range properties {
		seller, ok := sellers[p.SellerID]
		if !ok {
			seller = s.resolveSeller(ctx, p.SellerID)
			sellers[p.SellerID] = seller
		}
		details = append(details, toDetail(p, seller))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(details); err == nil {
			if err := s.cache.Set(ctx, payload); err != nil {
				s.logger.Warn().Err(err).Msg("listing cache write failed")
			}
		}
	}

	return details, nil
}

// Get returns a single listing with its seller resolved.
func (s *PropertyService) Get(ctx context.Context, id string) (*ports.PropertyDetail, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := toDetail(property, s.resolveSeller(ctx, property.SellerID))
	return &detail, nil
}

// Update applies the supplied fields to the listing. Only the stored seller
// may update; ownership is re-derived from the persisted record.
func (s *PropertyService) Update(ctx context.Context, id, callerID string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.SellerID != callerID {
		metrics.OwnershipDeniedTotal.WithLabelValues("update").Inc()
		return nil, domain.ErrNotOwner
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		s.logger.Error().Err(err).Str("property_id", id).Msg("failed to update property")
		return nil, err
	}

	s.invalidateCache(ctx)
	metrics.PropertiesMutatedTotal.WithLabelValues("update").Inc()
	return property, nil
}

// Delete removes the listing. Only the stored seller may delete.
func (s *PropertyService) Delete(ctx context.Context, id, callerID string) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if property.SellerID != callerID {
		metrics.OwnershipDeniedTotal.WithLabelValues("delete").Inc()
		return domain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("property_id", id).Msg("failed to delete property")
		return err
	}

	s.invalidateCache(ctx)
	metrics.PropertiesMutatedTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}

// resolveSeller looks up the seller's public summary. A missing or failing
// lookup yields an empty summary rather than failing the read.
func (s *PropertyService) resolveSeller(ctx context.Context, sellerID string) ports.SellerSummary {
	user, err := s.users.FindByID(ctx, sellerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("seller_id", sellerID).Msg("seller lookup failed")
		return ports.SellerSummary{}
	}
	return ports.SellerSummary{Name: user.Name, Email: user.Email}
}

func (s *PropertyService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

func toDetail(p *domain.Property, seller ports.SellerSummary) ports.PropertyDetail {
	return ports.PropertyDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Images:      p.Images,
		Seller:      seller,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
