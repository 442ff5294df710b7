package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new user identified by their phone number.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	user := &entity.User{
		Number:    input.Number,
		Name:      input.Name,
		LinkCode:  newLinkCode(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "number already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("number", user.Number))

	return user, nil
}

// GetUser retrieves a user by their phone number.
func (srv *userService) GetUser(ctx context.Context, number string) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// newLinkCode generates the share code supporters use to link to this user.
// Eight hex characters keeps the code typeable while collisions stay
// unlikely at this system's scale; the column's unique index catches the
// rest.
func newLinkCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
