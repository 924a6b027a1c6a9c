package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/i18n"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocki18nservice
type Service interface {
	GetLocale(ctx context.Context) (*i18n.Locale, error)
	SetLocale(ctx context.Context, lang string) (*i18n.Locale, error)
}

type handler struct {
	service    Service
	translator *i18n.Translator
	logger     *zap.Logger
}

func New(
	service Service,
	translator *i18n.Translator,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/locale", func(localeRouter chi.Router) {
		localeRouter.Get("/", apperror.Middleware(h.getLocaleHandler))
		localeRouter.Put("/", apperror.Middleware(h.setLocaleHandler))
		localeRouter.Get("/messages", apperror.Middleware(h.getMessagesHandler))
	})
}

// @Tags		locale
// @Success	200	{object}	LocaleResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/locale [get]
func (h *handler) getLocaleHandler(w http.ResponseWriter, r *http.Request) error {
	locale, err := h.service.GetLocale(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, LocaleResponse{Locale: *locale})

	return nil
}

// @Tags		locale
// @Param		request	body	LocaleRequest	true	"language code"
// @Success	200	{object}	LocaleResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/locale [put]
func (h *handler) setLocaleHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LocaleRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	locale, err := h.service.SetLocale(r.Context(), dto.Language)
	if err != nil {
		return err
	}

	render.JSON(w, r, LocaleResponse{Locale: *locale})

	return nil
}

// @Tags		locale
// @Success	200	{object}	MessagesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/locale/messages [get]
func (h *handler) getMessagesHandler(w http.ResponseWriter, r *http.Request) error {
	locale, err := h.service.GetLocale(r.Context())
	if err != nil {
		return err
	}

	messages := make(map[string]string)
	for _, key := range h.translator.Keys(locale.Language) {
		messages[key] = h.translator.Translate(locale.Language, key, nil)
	}

	render.JSON(w, r, MessagesResponse{
		Locale:   *locale,
		Messages: messages,
	})

	return nil
}
