package usecase

import (
	"context"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLinkInput represents the input for linking a supporter to a ward
type AddLinkInput struct {
	LinkCode string `json:"link_code" validate:"required"`
	Relation string `json:"relation" validate:"required"`
}

// LinkUsecase defines the interface for supporter-ward link use cases
type LinkUsecase interface {
	// AddLink subscribes the supporter to the ward identified by the link
	// code. Linking oneself or linking the same ward twice is rejected.
	AddLink(ctx context.Context, supporterNumber string, input *AddLinkInput) (*entity.Link, error)

	// GetSupporters retrieves the links pointing at a ward.
	GetSupporters(ctx context.Context, wardNumber string) ([]*entity.Link, error)

	// GetWards retrieves the links owned by a supporter.
	GetWards(ctx context.Context, supporterNumber string) ([]*entity.Link, error)

	// SetPrimarySupporter marks the given link as the ward's primary one.
	// Only the ward themselves may change it. Any previously primary link is
	// demoted in the same transaction, so at most one link stays primary.
	SetPrimarySupporter(ctx context.Context, callerNumber string, linkID uuid.UUID) error

	// GetPrimarySupporter retrieves the ward's primary link, if one is set.
	GetPrimarySupporter(ctx context.Context, wardNumber string) (*entity.Link, error)

	// DeleteLink removes a link. Either endpoint of the link may remove it.
	DeleteLink(ctx context.Context, callerNumber string, linkID uuid.UUID) error

	// GenerateLinkQR renders the user's link code as a QR code PNG for
	// supporters to scan.
	GenerateLinkQR(ctx context.Context, userNumber string) ([]byte, error)
}
