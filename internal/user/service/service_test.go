package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/user"
	"github.com/itisal/itisal-backend/internal/user/db"
	mockuserdb "github.com/itisal/itisal-backend/internal/user/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCreateUser(t *testing.T) {
	hash := []byte("$2a$10$fakehash")

	t.Run("hashes the password before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockuserdb.NewMockRepository(ctrl)
		mockPasswords := mockuserdb.NewMockPasswordManager(ctrl)

		service := New(mockRepo, mockPasswords, zap.NewNop())

		ctx := context.Background()

		input := user.User{
			Username: "cashier1",
			FullName: "Cashier One",
			Permissions: user.Permissions{
				AllowNewCustomer: true,
			},
		}

		mockPasswords.EXPECT().GenerateHashFromPassword([]byte("secret1")).Return(hash, nil)
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, data user.User) (*user.User, error) {
				assert.Equal(t, hash, data.PasswordHash)
				assert.True(t, data.Permissions.AllowNewCustomer)
				stored := data
				stored.ID = "u1"
				return &stored, nil
			})

		resp, err := service.Create(ctx, input, "secret1")

		require.NoError(t, err)
		assert.Equal(t, "u1", resp.ID)
	})

	t.Run("admin implies every permission so the flags are cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockuserdb.NewMockRepository(ctrl)
		mockPasswords := mockuserdb.NewMockPasswordManager(ctrl)

		service := New(mockRepo, mockPasswords, zap.NewNop())

		ctx := context.Background()

		input := user.User{
			Username: "boss",
			FullName: "The Boss",
			IsAdmin:  true,
			Permissions: user.Permissions{
				AllowStoreSetup: true,
				AllowUserSetup:  true,
			},
		}

		mockPasswords.EXPECT().GenerateHashFromPassword([]byte("secret1")).Return(hash, nil)
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, data user.User) (*user.User, error) {
				assert.True(t, data.IsAdmin)
				assert.Equal(t, user.Permissions{}, data.Permissions)
				return &data, nil
			})

		_, err := service.Create(ctx, input, "secret1")

		require.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockuserdb.NewMockRepository(ctrl)
		mockPasswords := mockuserdb.NewMockPasswordManager(ctrl)

		service := New(mockRepo, mockPasswords, zap.NewNop())

		ctx := context.Background()

		mockPasswords.EXPECT().GenerateHashFromPassword([]byte("secret1")).Return(hash, nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, db.ErrUserAlreadyExists)

		_, err := service.Create(ctx, user.User{Username: "cashier1"}, "secret1")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "setup.usernameTaken", appErr.Key)
	})
}

func TestUserPermissions(t *testing.T) {
	canOpenUserSetup := func(p user.Permissions) bool { return p.AllowUserSetup }

	tests := []struct {
		name     string
		user     user.User
		expected bool
	}{
		{
			name:     "admin passes any check",
			user:     user.User{IsAdmin: true},
			expected: true,
		},
		{
			name:     "explicit flag",
			user:     user.User{Permissions: user.Permissions{AllowUserSetup: true}},
			expected: true,
		},
		{
			name:     "other flags do not leak",
			user:     user.User{Permissions: user.Permissions{AllowStoreSetup: true}},
			expected: false,
		},
		{
			name:     "no flags",
			user:     user.User{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.Can(canOpenUserSetup))
		})
	}
}

func TestSetPassword(t *testing.T) {
	hash := []byte("$2a$10$fakehash")

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockuserdb.NewMockRepository(ctrl)
		mockPasswords := mockuserdb.NewMockPasswordManager(ctrl)

		service := New(mockRepo, mockPasswords, zap.NewNop())

		ctx := context.Background()

		mockPasswords.EXPECT().GenerateHashFromPassword([]byte("secret1")).Return(hash, nil)
		mockRepo.EXPECT().UpdatePasswordHash(ctx, "missing", hash).Return(db.ErrUserNotFound)

		err := service.SetPassword(ctx, "missing", "secret1")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockuserdb.NewMockRepository(ctrl)
		mockPasswords := mockuserdb.NewMockPasswordManager(ctrl)

		service := New(mockRepo, mockPasswords, zap.NewNop())

		ctx := context.Background()

		mockPasswords.EXPECT().GenerateHashFromPassword([]byte("secret1")).Return(hash, nil)
		mockRepo.EXPECT().UpdatePasswordHash(ctx, "u1", hash).Return(nil)

		require.NoError(t, service.SetPassword(ctx, "u1", "secret1"))
	})
}
