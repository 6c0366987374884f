package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_ExistingUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(userRepo)
	ctx := context.Background()

	existing := &entity.User{
		UID:         "uid-1",
		Email:       "buyer@example.com",
		DisplayName: "小明",
		CreatedAt:   time.Now().Add(-time.Hour).UTC(),
	}

	userRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(existing, nil)

	user, err := svc.GetProfile(ctx, usecase.Actor{UID: "uid-1"}, "other@example.com", "other")
	require.NoError(t, err)
	// The stored profile wins over whatever the token carries.
	assert.Same(t, existing, user)
}

func TestProfileService_GetProfile_CreatesOnFirstAccess(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(userRepo)
	ctx := context.Background()

	userRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(nil, repository.ErrUserNotFound)

	var saved *entity.User
	userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { saved = user }).
		Return(nil)

	user, err := svc.GetProfile(ctx, usecase.Actor{UID: "uid-1", Admin: true}, "buyer@example.com", "小明")
	require.NoError(t, err)
	assert.Same(t, saved, user)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, "小明", user.DisplayName)
	assert.True(t, user.Admin)
	assert.Nil(t, user.DefaultAddress)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestProfileService_SaveDefaultAddress(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(userRepo)
	ctx := context.Background()

	input := &usecase.SaveAddressInput{
		FullName:   "王小明",
		Email:      "buyer@example.com",
		Line1:      "中山路 100 號",
		City:       "台北市",
		PostalCode: "104",
		Country:    "TW",
	}

	userRepo.EXPECT().
		SaveDefaultAddress(ctx, "uid-1", mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)

	address, err := svc.SaveDefaultAddress(ctx, "uid-1", input)
	require.NoError(t, err)
	assert.Equal(t, "王小明", address.FullName)
	assert.Equal(t, "中山路 100 號", address.Line1)
	assert.Equal(t, "TW", address.Country)
}
