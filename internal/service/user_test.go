package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports/mocks"
)

func TestUserService_Create_DefaultsToResident(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, u *domain.User) {
		u.ID = 3
	}).Return(nil)

	user, err := svc.Create(context.Background(), testAdmin, domain.CreateUserInput{
		Name:  "New Member",
		Email: "New.Member@Example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleResident, user.Role)
	assert.Equal(t, "new.member@example.com", user.Email)
	assert.Equal(t, testAdmin.OrganizationID, user.OrganizationID)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), testAdmin, domain.CreateUserInput{
		Name:  "New",
		Email: "new@example.com",
		Role:  "OVERLORD",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), testAdmin, domain.CreateUserInput{
		Name:  "New",
		Email: "taken@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Get_ForeignOrgLooksMissing(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	foreign := &domain.User{ID: 9, OrganizationID: 2}
	userRepo.EXPECT().GetByID(mock.Anything, int64(9)).Return(foreign, nil)

	_, err := svc.Get(context.Background(), testAdmin, 9)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().List(mock.Anything, int64(1)).Return([]*domain.User{testAdmin, testResident}, nil)

	users, err := svc.List(context.Background(), testAdmin)

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
