package impl

import (
	"context"
	"regexp"
	"testing"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	"fence/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Number: "0101234567",
		Name:   "김순자",
	})

	require.NoError(t, err)
	assert.Equal(t, "0101234567", user.Number)
	assert.Equal(t, "김순자", user.Name)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), user.LinkCode)
}

func TestUserService_RegisterUser_DuplicateNumber(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := service.RegisterUser(ctx, &usecase.RegisterUserInput{Number: "0101234567"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()
	want := &entity.User{Number: "0101234567", Name: "김순자", LinkCode: "AB12CD34"}

	userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(want, nil)

	user, err := service.GetUser(ctx, "0101234567")

	require.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newDiscardLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByNumber(ctx, "0109999999").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, "0109999999")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestNewLinkCode_Format(t *testing.T) {
	seen := make(map[string]struct{})

	for range 100 {
		code := newLinkCode()
		assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), code)
		seen[code] = struct{}{}
	}

	// Codes are random; a hundred draws colliding would be a broken generator.
	assert.Greater(t, len(seen), 90)
}
