package repository

import (
	"context"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for link persistence.
var (
	// ErrLinkNotFound is returned when a link is not found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrDuplicateLink is returned when the (supporter, ward) pair is already linked.
	ErrDuplicateLink = errors.New("link already exists")
)

// LinkRepository defines the interface for supporter-ward link operations.
type LinkRepository interface {
	// CreateLink persists a new supporter->ward link.
	CreateLink(ctx context.Context, link *entity.Link) error

	// FindLinkByID retrieves a link by its unique ID.
	FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// FindLinksByWard retrieves all links pointing at a ward, i.e. the
	// ward's supporter subscriptions.
	FindLinksByWard(ctx context.Context, wardNumber string) ([]*entity.Link, error)

	// FindLinksBySupporter retrieves all links owned by a supporter.
	FindLinksBySupporter(ctx context.Context, supporterNumber string) ([]*entity.Link, error)

	// ClearPrimary sets is_primary to false on every link of the ward.
	ClearPrimary(ctx context.Context, wardNumber string) error

	// MarkPrimary sets is_primary to true on the given link.
	MarkPrimary(ctx context.Context, id uuid.UUID) error

	// DeleteLink removes a link by its ID.
	DeleteLink(ctx context.Context, id uuid.UUID) error
}
