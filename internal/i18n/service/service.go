package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/i18n"
	"github.com/itisal/itisal-backend/internal/i18n/db"
	"go.uber.org/zap"
)

const languageSettingKey = "language"

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocki18nservice
type Repository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	UpsertSetting(ctx context.Context, key, value string) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(
	repository Repository,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

// GetLocale reads the persisted language selection, defaulting to
// English when nothing has been saved yet.
func (s *service) GetLocale(ctx context.Context) (*i18n.Locale, error) {
	lang, err := s.repository.GetSetting(ctx, languageSettingKey)
	if err != nil {
		if errors.Is(err, db.ErrSettingNotFound) {
			return i18n.NewLocale(i18n.LangEN), nil
		}

		s.logger.Error("unexpected error when reading language setting", zap.Error(err))

		return nil, err
	}

	if !i18n.IsSupported(lang) {
		lang = i18n.LangEN
	}

	return i18n.NewLocale(lang), nil
}

// SetLocale persists the language selection. The returned locale
// carries the new text direction so the caller can flip rendering
// without a second round trip.
func (s *service) SetLocale(ctx context.Context, lang string) (*i18n.Locale, error) {
	if !i18n.IsSupported(lang) {
		return nil, apperror.NewAppError("unsupported language")
	}

	if err := s.repository.UpsertSetting(ctx, languageSettingKey, lang); err != nil {
		s.logger.Error("unexpected error when saving language setting", zap.Error(err))

		return nil, err
	}

	return i18n.NewLocale(lang), nil
}
