package handler

import (
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSweetRequest, imageRef string) ports.CreateSweetInput {
	if imageRef == "" {
		imageRef = req.Image
	}
	return ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Quantity: *req.Quantity,
		ImageRef: imageRef,
	}
}

func toUpdateInput(req updateSweetRequest, imageRef string) ports.UpdateSweetInput {
	input := ports.UpdateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		ImageRef: req.Image,
	}
	if imageRef != "" {
		input.ImageRef = &imageRef
	}
	return input
}

// --- Domain → HTTP response ---

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		Image:     s.Image,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toSweetListResponse(sweets []*domain.Sweet) []sweetResponse {
	out := make([]sweetResponse, len(sweets))
	for i, s := range sweets {
		out[i] = toSweetResponse(s)
	}
	return out
}
