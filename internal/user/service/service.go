package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/user"
	"github.com/itisal/itisal-backend/internal/user/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockuserdb

type Repository interface {
	GetAll(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, data user.User) (*user.User, error)
	Update(ctx context.Context, data user.User) (*user.User, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash []byte) error
	Delete(ctx context.Context, id string) error
}

type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	repository      Repository
	passwordManager PasswordManager
	logger          *zap.Logger
}

func New(
	repository Repository,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:      repository,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]user.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when getting users", zap.Error(err))

		return nil, err
	}

	return users, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*user.User, error) {
	existingUser, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when getting user", zap.Error(err))

		return nil, err
	}

	return existingUser, nil
}

// Create hashes the plain password and stores the user. Admins get every
// permission implicitly, so the individual flags are cleared for them.
func (s *service) Create(ctx context.Context, data user.User, password string) (*user.User, error) {
	passwordHash, err := s.passwordManager.GenerateHashFromPassword([]byte(password))
	if err != nil {
		return nil, err
	}

	data.PasswordHash = passwordHash
	if data.IsAdmin {
		data.Permissions = user.Permissions{}
	}

	createdUser, err := s.repository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrUserAlreadyExists) {
			return nil, apperror.NewLocalizedError(
				"this username is already taken",
				"setup.usernameTaken",
			)
		}

		s.logger.Error("unexpected error when creating user", zap.Error(err))

		return nil, err
	}

	return createdUser, nil
}

func (s *service) Update(ctx context.Context, data user.User) (*user.User, error) {
	if data.IsAdmin {
		data.Permissions = user.Permissions{}
	}

	updatedUser, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, apperror.ErrNotFound
		}

		if errors.Is(err, db.ErrUserAlreadyExists) {
			return nil, apperror.NewLocalizedError(
				"this username is already taken",
				"setup.usernameTaken",
			)
		}

		s.logger.Error("unexpected error when updating user", zap.Error(err))

		return nil, err
	}

	return updatedUser, nil
}

func (s *service) SetPassword(ctx context.Context, id string, password string) error {
	passwordHash, err := s.passwordManager.GenerateHashFromPassword([]byte(password))
	if err != nil {
		return err
	}

	if err := s.repository.UpdatePasswordHash(ctx, id, passwordHash); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating user password", zap.Error(err))

		return err
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting user", zap.Error(err))

		return err
	}

	return nil
}
