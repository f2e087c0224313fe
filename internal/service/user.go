package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports"
)

type UserService struct {
	userRepo ports.UserRepo
	logger   logger.Logger
}

func NewUserService(userRepo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) Create(ctx context.Context, requester *domain.User, input domain.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: user name and email must not be empty", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleResident
	}
	switch role {
	case domain.RoleAdmin, domain.RoleOrganizer, domain.RoleResident:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	user := &domain.User{
		OrganizationID: requester.OrganizationID,
		Name:           name,
		Email:          email,
		Role:           role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created",
		logger.Int64("user_id", user.ID),
		logger.Int64("organization_id", user.OrganizationID),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, requester *domain.User, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.OrganizationID != requester.OrganizationID {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, requester *domain.User) ([]*domain.User, error) {
	return s.userRepo.List(ctx, requester.OrganizationID)
}
