package impl

import (
	"context"
	"testing"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	mockService "fence/internal/mocks/service"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// linkServiceFixtures holds all test dependencies for link service tests.
type linkServiceFixtures struct {
	service   usecase.LinkUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	linkRepo  *mockRepo.MockLinkRepository
	qrSvc     *mockService.MockQRCodeService
}

func createTestLinkService(t *testing.T) linkServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	qrSvc := mockService.NewMockQRCodeService(t)
	service := NewLinkService(txManager, userRepo, linkRepo, qrSvc, newDiscardLogger())

	return linkServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		qrSvc:     qrSvc,
	}
}

func TestLinkService_AddLink_Success(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByLinkCode(ctx, "AB12CD34").
		Return(&entity.User{Number: "0101234567", Name: "김순자", LinkCode: "AB12CD34"}, nil)
	fixtures.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Return(nil)

	link, err := fixtures.service.AddLink(ctx, "0101111111", &usecase.AddLinkInput{
		LinkCode: "AB12CD34",
		Relation: "딸",
	})

	require.NoError(t, err)
	assert.Equal(t, "0101111111", link.SupporterNumber)
	assert.Equal(t, "0101234567", link.WardNumber)
	assert.Equal(t, "딸", link.Relation)
	assert.False(t, link.IsPrimary)
}

func TestLinkService_AddLink_UnknownCode(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByLinkCode(ctx, "NOPE0000").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.AddLink(ctx, "0101111111", &usecase.AddLinkInput{LinkCode: "NOPE0000"})
	assert.ErrorIs(t, err, domainerrors.ErrLinkCodeNotFound)
}

func TestLinkService_AddLink_SelfLinkRejected(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByLinkCode(ctx, "AB12CD34").
		Return(&entity.User{Number: "0101234567", LinkCode: "AB12CD34"}, nil)

	_, err := fixtures.service.AddLink(ctx, "0101234567", &usecase.AddLinkInput{LinkCode: "AB12CD34"})
	assert.ErrorIs(t, err, domainerrors.ErrCannotLinkSelf)
}

func TestLinkService_AddLink_DuplicateRejected(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByLinkCode(ctx, "AB12CD34").
		Return(&entity.User{Number: "0101234567", LinkCode: "AB12CD34"}, nil)
	fixtures.linkRepo.EXPECT().
		CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
		Return(repository.ErrDuplicateLink)

	_, err := fixtures.service.AddLink(ctx, "0101111111", &usecase.AddLinkInput{LinkCode: "AB12CD34"})
	assert.ErrorIs(t, err, domainerrors.ErrLinkAlreadyExists)
}

func TestLinkService_SetPrimarySupporter_ClearsBeforeMarking(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	linkID := uuid.New()
	var calls []string

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().
				FindLinkByID(ctx, linkID).
				Return(&entity.Link{ID: linkID, SupporterNumber: "0101111111", WardNumber: "0101234567"}, nil)
			mockLinkRepo.EXPECT().
				ClearPrimary(ctx, "0101234567").
				Run(func(ctx context.Context, wardNumber string) {
					calls = append(calls, "clear")
				}).
				Return(nil)
			mockLinkRepo.EXPECT().
				MarkPrimary(ctx, linkID).
				Run(func(ctx context.Context, id uuid.UUID) {
					calls = append(calls, "mark")
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	err := fixtures.service.SetPrimarySupporter(ctx, "0101234567", linkID)

	require.NoError(t, err)
	// Demotion precedes promotion inside the same transaction, so the ward
	// never has two primary links.
	assert.Equal(t, []string{"clear", "mark"}, calls)
}

func TestLinkService_SetPrimarySupporter_OnlyTheWardMayChoose(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	linkID := uuid.New()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockLinkRepository(t)

			mockFactory.EXPECT().LinkRepo().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().
				FindLinkByID(ctx, linkID).
				Return(&entity.Link{ID: linkID, SupporterNumber: "0101111111", WardNumber: "0101234567"}, nil)

			return fn(mockFactory)
		}).
		Once()

	// The supporter on the link tries to promote themselves.
	err := fixtures.service.SetPrimarySupporter(ctx, "0101111111", linkID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestLinkService_GetPrimarySupporter(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	primary := &entity.Link{ID: uuid.New(), SupporterNumber: "0102222222", WardNumber: "0101234567", IsPrimary: true}

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			{ID: uuid.New(), SupporterNumber: "0101111111", WardNumber: "0101234567"},
			primary,
		}, nil)

	link, err := fixtures.service.GetPrimarySupporter(ctx, "0101234567")

	require.NoError(t, err)
	assert.Equal(t, primary, link)
}

func TestLinkService_GetPrimarySupporter_NoneSet(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			{ID: uuid.New(), SupporterNumber: "0101111111", WardNumber: "0101234567"},
		}, nil)

	_, err := fixtures.service.GetPrimarySupporter(ctx, "0101234567")
	assert.ErrorIs(t, err, domainerrors.ErrPrimarySupporterNotFound)
}

func TestLinkService_DeleteLink_EitherEndpointMayRemove(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	linkID := uuid.New()
	link := &entity.Link{ID: linkID, SupporterNumber: "0101111111", WardNumber: "0101234567"}

	fixtures.linkRepo.EXPECT().FindLinkByID(ctx, linkID).Return(link, nil).Twice()
	fixtures.linkRepo.EXPECT().DeleteLink(ctx, linkID).Return(nil).Twice()

	require.NoError(t, fixtures.service.DeleteLink(ctx, "0101111111", linkID))
	require.NoError(t, fixtures.service.DeleteLink(ctx, "0101234567", linkID))
}

func TestLinkService_DeleteLink_StrangerRejected(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	linkID := uuid.New()

	fixtures.linkRepo.EXPECT().
		FindLinkByID(ctx, linkID).
		Return(&entity.Link{ID: linkID, SupporterNumber: "0101111111", WardNumber: "0101234567"}, nil)

	err := fixtures.service.DeleteLink(ctx, "0109999999", linkID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestLinkService_GenerateLinkQR(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(&entity.User{Number: "0101234567", LinkCode: "AB12CD34"}, nil)
	fixtures.qrSvc.EXPECT().
		GenerateLinkQR("AB12CD34").
		Return(png, nil)

	got, err := fixtures.service.GenerateLinkQR(ctx, "0101234567")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestLinkService_GenerateLinkQR_UnknownUser(t *testing.T) {
	fixtures := createTestLinkService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0109999999").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GenerateLinkQR(ctx, "0109999999")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
