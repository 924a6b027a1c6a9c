package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/user"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuserservice
type Service interface {
	GetAll(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	Create(ctx context.Context, data user.User, password string) (*user.User, error)
	Update(ctx context.Context, data user.User) (*user.User, error)
	SetPassword(ctx context.Context, id string, password string) error
	Delete(ctx context.Context, id string) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(
	service Service,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/users", func(userRouter chi.Router) {
		userRouter.Get("/", apperror.Middleware(h.getAllUsersHandler))
		userRouter.Post("/", apperror.Middleware(h.createUserHandler))
		userRouter.Get("/{id}", apperror.Middleware(h.getUserHandler))
		userRouter.Put("/{id}", apperror.Middleware(h.updateUserHandler))
		userRouter.Put("/{id}/password", apperror.Middleware(h.setPasswordHandler))
		userRouter.Delete("/{id}", apperror.Middleware(h.deleteUserHandler))
	})
}

// @Tags		users
// @Success	200	{object}	UsersResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/users [get]
func (h *handler) getAllUsersHandler(w http.ResponseWriter, r *http.Request) error {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, UsersResponse{Users: users})

	return nil
}

// @Tags		users
// @Param		request	body	CreateUserRequest	true	"user data"
// @Success	200	{object}	UserResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/users [post]
func (h *handler) createUserHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CreateUserRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdUser, err := h.service.Create(r.Context(), dto.ToDomain(), dto.Password)
	if err != nil {
		return err
	}

	render.JSON(w, r, UserResponse{User: *createdUser})

	return nil
}

// @Tags		users
// @Param		id	path	string	true	"user id"
// @Success	200	{object}	UserResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/users/{id} [get]
func (h *handler) getUserHandler(w http.ResponseWriter, r *http.Request) error {
	existingUser, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, UserResponse{User: *existingUser})

	return nil
}

// @Tags		users
// @Param		id	path	string	true	"user id"
// @Param		request	body	UpdateUserRequest	true	"user data"
// @Success	200	{object}	UserResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/users/{id} [put]
func (h *handler) updateUserHandler(w http.ResponseWriter, r *http.Request) error {
	var dto UpdateUserRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedUser, err := h.service.Update(r.Context(), dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, UserResponse{User: *updatedUser})

	return nil
}

// @Tags		users
// @Param		id	path	string	true	"user id"
// @Param		request	body	SetPasswordRequest	true	"new password"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/users/{id}/password [put]
func (h *handler) setPasswordHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SetPasswordRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.SetPassword(r.Context(), chi.URLParam(r, "id"), dto.Password); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}

// @Tags		users
// @Param		id	path	string	true	"user id"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/users/{id} [delete]
func (h *handler) deleteUserHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}
