package user

import (
	"context"
	"strings"

	"ecommerce-backend/internal/domain"
	userrepo "ecommerce-backend/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

const passwordMin = 6

// Service handles user administration and self-service updates.
type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields expected by the create-user endpoint.
type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdatePasswordInput carries the current and replacement passwords.
type UpdatePasswordInput struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// UpdateInfoInput is a partial update; nil fields are left unchanged.
type UpdateInfoInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.ValidationError{Detail: "email required"}
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	role := domain.RoleUser
	if in.Role != "" {
		parsed, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	})
}

// UpdatePassword verifies the current password before storing the new hash.
func (s *Service) UpdatePassword(ctx context.Context, userID int64, in UpdatePasswordInput) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return domain.DetailedError{Err: domain.ErrUnauthorized, Detail: "Invalid Password"}
	}
	if err := validatePassword(in.NewPassword); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}

func (s *Service) UpdateInfo(ctx context.Context, userID int64, in UpdateInfoInput) (*domain.User, error) {
	if in.Email != nil {
		trimmed := strings.TrimSpace(strings.ToLower(*in.Email))
		if trimmed == "" {
			return nil, domain.ValidationError{Detail: "email must not be empty"}
		}
		in.Email = &trimmed
	}
	u, err := s.repo.UpdateInfo(ctx, userID, userrepo.UpdateInfoInput{Name: in.Name, Email: in.Email})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validatePassword(p string) error {
	if len(p) < passwordMin {
		return domain.ValidationError{Detail: "password must be at least 6 characters"}
	}
	return nil
}
