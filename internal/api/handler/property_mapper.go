package handler

import (
	"github.com/prsunet/realestate-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createPropertyRequest, sellerID string) ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Images:      req.Images,
		SellerID:    sellerID,
	}
}

func toUpdateInput(req updatePropertyRequest) ports.UpdatePropertyInput {
	return ports.UpdatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Images:      req.Images,
	}
}

// --- Service result → HTTP response ---

func toPropertyResponse(d *ports.PropertyDetail) propertyResponse {
	return propertyResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		Images:      d.Images,
		Seller: sellerResponse{
			Name:  d.Seller.Name,
			Email: d.Seller.Email,
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func toListResponse(details []ports.PropertyDetail) []propertyResponse {
	out := make([]propertyResponse, len(details))
	for i := range details {
		out[i] = toPropertyResponse(&details[i])
	}
	return out
}
