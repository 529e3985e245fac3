package category

import (
	"context"
	"strings"

	"ecommerce-backend/internal/domain"
	categoryrepo "ecommerce-backend/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name string `json:"name"`
}

type UpdateInput struct {
	Name *string `json:"name"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ValidationError{Detail: "name required"}
	}
	return s.repo.Create(ctx, domain.Category{Name: name})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	if in.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*in.Name)
	if name == "" {
		return domain.ValidationError{Detail: "name must not be empty"}
	}
	return s.repo.UpdateName(ctx, id, name)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
