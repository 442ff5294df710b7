package impl

import (
	"context"
	"testing"
	"time"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	mockRepo "fence/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogService_GetWardLogs_WardReadsOwnLogs(t *testing.T) {
	logRepo := mockRepo.NewMockLogRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	service := NewLogService(logRepo, linkRepo, newDiscardLogger())

	ctx := context.Background()
	want := []*entity.Log{
		{ID: uuid.New(), WardNumber: "0101234567", Label: "Home", Address: "Seoul", OccurredAt: time.Now()},
	}

	// The ward reads their own history without any link lookup.
	logRepo.EXPECT().
		FindLogsByWard(ctx, "0101234567").
		Return(want, nil)

	logs, err := service.GetWardLogs(ctx, "0101234567", "0101234567")

	require.NoError(t, err)
	assert.Equal(t, want, logs)
}

func TestLogService_GetWardLogs_LinkedSupporterAllowed(t *testing.T) {
	logRepo := mockRepo.NewMockLogRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	service := NewLogService(logRepo, linkRepo, newDiscardLogger())

	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0101111111").
		Return([]*entity.Link{supporterLink("0101234567", "0101111111")}, nil)
	logRepo.EXPECT().
		FindLogsByWard(ctx, "0101234567").
		Return([]*entity.Log{}, nil)

	_, err := service.GetWardLogs(ctx, "0101111111", "0101234567")
	require.NoError(t, err)
}

func TestLogService_GetWardLogs_UnlinkedCallerRejected(t *testing.T) {
	logRepo := mockRepo.NewMockLogRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	service := NewLogService(logRepo, linkRepo, newDiscardLogger())

	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0109999999").
		Return([]*entity.Link{supporterLink("0105555555", "0109999999")}, nil)

	_, err := service.GetWardLogs(ctx, "0109999999", "0101234567")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}
