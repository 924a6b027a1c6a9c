package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/storesetup"
	"github.com/itisal/itisal-backend/internal/storesetup/db"
	mockstoresetupdb "github.com/itisal/itisal-backend/internal/storesetup/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var ErrUnexpected = errors.New("unexpected error")

// The service is backend-agnostic: these cases hold for both the pool
// and the legacy SQL repository since both return the same sentinels.
func TestStoreSetupService(t *testing.T) {
	setup := &storesetup.StoreSetup{
		ID:        "ss1",
		StoreCode: "S001",
		EngName:   "Downtown",
		ArName:    "وسط المدينة",
	}

	t.Run("get all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockstoresetupdb.NewMockRepository(ctrl)

		service := New(mockRepo, zap.NewNop())

		ctx := context.Background()
		mockRepo.EXPECT().GetAll(ctx).Return([]storesetup.StoreSetup{*setup}, nil)

		resp, err := service.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, []storesetup.StoreSetup{*setup}, resp)
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockstoresetupdb.NewMockRepository(ctrl)

		service := New(mockRepo, zap.NewNop())

		ctx := context.Background()
		mockRepo.EXPECT().GetByID(ctx, "missing").Return(nil, db.ErrStoreSetupNotFound)

		_, err := service.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockstoresetupdb.NewMockRepository(ctrl)

		service := New(mockRepo, zap.NewNop())

		ctx := context.Background()
		input := storesetup.StoreSetup{StoreCode: "S001", EngName: "Downtown", ArName: "وسط المدينة"}
		mockRepo.EXPECT().Create(ctx, input).Return(setup, nil)

		resp, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, setup, resp)
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockstoresetupdb.NewMockRepository(ctrl)

		service := New(mockRepo, zap.NewNop())

		ctx := context.Background()
		mockRepo.EXPECT().Update(ctx, *setup).Return(nil, db.ErrStoreSetupNotFound)

		_, err := service.Update(ctx, *setup)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("delete error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockstoresetupdb.NewMockRepository(ctrl)

		service := New(mockRepo, zap.NewNop())

		ctx := context.Background()
		mockRepo.EXPECT().Delete(ctx, "ss1").Return(ErrUnexpected)

		err := service.Delete(ctx, "ss1")

		require.ErrorIs(t, err, ErrUnexpected)
	})
}
