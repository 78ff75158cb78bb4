package profile

import (
	"context"
	"errors"
	"time"

	domain "ideafund-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type RegisterInput struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	Bio         string `json:"bio"`
	Role        string `json:"role"`
}

type ProfileDTO struct {
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	Bio         string    `json:"bio"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

var validRoles = map[domain.Role]bool{
	domain.RoleFounder:  true,
	domain.RoleInvestor: true,
	domain.RoleReviewer: true,
}

// Register creates the profile row for an identity-provider user. The role
// is fixed here for good: there is no re-role workflow.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ProfileDTO, error) {
	role := domain.Role(in.Role)
	if !validRoles[role] {
		return nil, domain.ErrInvalidRole
	}

	_, err := u.repo.GetByUserID(ctx, in.UserID)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	p := &domain.Profile{
		UserID:      in.UserID,
		FullName:    in.FullName,
		Email:       in.Email,
		CompanyName: in.CompanyName,
		Bio:         in.Bio,
		Role:        role,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*ProfileDTO, error) {
	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

func toDTO(p *domain.Profile) *ProfileDTO {
	return &ProfileDTO{
		UserID:      p.UserID,
		FullName:    p.FullName,
		Email:       p.Email,
		CompanyName: p.CompanyName,
		Bio:         p.Bio,
		Role:        string(p.Role),
		CreatedAt:   p.CreatedAt,
	}
}
