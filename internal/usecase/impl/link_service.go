package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	"fence/internal/domain/service"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// linkService implements the LinkUsecase interface.
type linkService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	linkRepo  repository.LinkRepository
	qrSvc     service.QRCodeService
	logger    *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	linkRepo repository.LinkRepository,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.LinkUsecase {
	return &linkService{
		txManager: txManager,
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		qrSvc:     qrSvc,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddLink subscribes the supporter to the ward identified by the link code.
func (srv *linkService) AddLink(ctx context.Context, supporterNumber string, input *usecase.AddLinkInput) (*entity.Link, error) {
	ward, err := srv.userRepo.FindUserByLinkCode(ctx, input.LinkCode)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkCodeNotFound, "no user with link code")
		}

		return nil, errors.Wrap(err, "failed to find user by link code")
	}

	if ward.Number == supporterNumber {
		return nil, errors.WithStack(domainerrors.ErrCannotLinkSelf)
	}

	link := &entity.Link{
		ID:              uuid.New(),
		SupporterNumber: supporterNumber,
		WardNumber:      ward.Number,
		Relation:        input.Relation,
		IsPrimary:       false,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := srv.linkRepo.CreateLink(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateLink) {
			return nil, errors.Wrap(domainerrors.ErrLinkAlreadyExists, "supporter already linked to ward")
		}

		return nil, errors.Wrap(err, "failed to create link")
	}

	srv.log(ctx).Info("Link created",
		slog.String("supporter_number", supporterNumber),
		slog.String("ward_number", ward.Number))

	return link, nil
}

// GetSupporters retrieves the links pointing at a ward.
func (srv *linkService) GetSupporters(ctx context.Context, wardNumber string) ([]*entity.Link, error) {
	links, err := srv.linkRepo.FindLinksByWard(ctx, wardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find links by ward")
	}

	return links, nil
}

// GetWards retrieves the links owned by a supporter.
func (srv *linkService) GetWards(ctx context.Context, supporterNumber string) ([]*entity.Link, error) {
	links, err := srv.linkRepo.FindLinksBySupporter(ctx, supporterNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find links by supporter")
	}

	return links, nil
}

// SetPrimarySupporter marks the given link as the ward's primary one. The
// demotion of the previous primary and the promotion share one transaction,
// so at no point do two links of a ward read as primary.
func (srv *linkService) SetPrimarySupporter(ctx context.Context, callerNumber string, linkID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linkRepo := repoFactory.LinkRepo()

		link, err := linkRepo.FindLinkByID(ctx, linkID)
		if err != nil {
			if errors.Is(err, repository.ErrLinkNotFound) {
				return errors.Wrap(domainerrors.ErrLinkNotFound, "link not found")
			}

			return errors.Wrap(err, "failed to find link")
		}

		if link.WardNumber != callerNumber {
			return errors.Wrap(domainerrors.ErrUnauthorizedAccess, "only the ward may choose their primary supporter")
		}

		if err := linkRepo.ClearPrimary(ctx, link.WardNumber); err != nil {
			return errors.Wrap(err, "failed to clear primary flags")
		}

		if err := linkRepo.MarkPrimary(ctx, linkID); err != nil {
			return errors.Wrap(err, "failed to mark link primary")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Primary supporter set",
		slog.String("ward_number", callerNumber),
		slog.Any("link_id", linkID))

	return nil
}

// GetPrimarySupporter retrieves the ward's primary link, if one is set.
func (srv *linkService) GetPrimarySupporter(ctx context.Context, wardNumber string) (*entity.Link, error) {
	links, err := srv.linkRepo.FindLinksByWard(ctx, wardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find links by ward")
	}

	for _, link := range links {
		if link.IsPrimary {
			return link, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrPrimarySupporterNotFound, "ward has no primary supporter")
}

// DeleteLink removes a link. Either endpoint of the link may remove it.
func (srv *linkService) DeleteLink(ctx context.Context, callerNumber string, linkID uuid.UUID) error {
	link, err := srv.linkRepo.FindLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return errors.Wrap(domainerrors.ErrLinkNotFound, "link not found")
		}

		return errors.Wrap(err, "failed to find link")
	}

	if link.SupporterNumber != callerNumber && link.WardNumber != callerNumber {
		return errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller is not an endpoint of the link")
	}

	if err := srv.linkRepo.DeleteLink(ctx, linkID); err != nil {
		return errors.Wrap(err, "failed to delete link")
	}

	srv.log(ctx).Info("Link deleted", slog.String("caller", callerNumber), slog.Any("link_id", linkID))

	return nil
}

// GenerateLinkQR renders the user's link code as a QR code PNG.
func (srv *linkService) GenerateLinkQR(ctx context.Context, userNumber string) ([]byte, error) {
	user, err := srv.userRepo.FindUserByNumber(ctx, userNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	png, err := srv.qrSvc.GenerateLinkQR(user.LinkCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate link QR code")
	}

	return png, nil
}
