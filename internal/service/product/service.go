package product

import (
	"context"
	"strings"

	"ecommerce-backend/internal/domain"
	productrepo "ecommerce-backend/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"quantity"`
	CategoryID  int64  `json:"category_id"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	Quantity    *int    `json:"quantity"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ValidationError{Detail: "name required"}
	}
	if in.PriceCents < 0 {
		return nil, domain.ValidationError{Detail: "price must not be negative"}
	}
	if in.Quantity < 0 {
		return nil, domain.ValidationError{Detail: "quantity must not be negative"}
	}
	return s.repo.Create(ctx, domain.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Quantity:    in.Quantity,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return domain.ValidationError{Detail: "price must not be negative"}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return domain.ValidationError{Detail: "quantity must not be negative"}
	}
	return s.repo.Update(ctx, id, productrepo.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Quantity:    in.Quantity,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
