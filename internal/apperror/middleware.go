package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

// Middleware adapts an error-returning handler to http.HandlerFunc.
// AppError values keep their message on the wire; anything else is
// collapsed into a generic internal error so backend details never
// leak to the client.
func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)

		var appErr *AppError
		if err != nil {
			if errors.As(err, &appErr) {
				if errors.Is(err, ErrNotFound) {
					w.WriteHeader(http.StatusNotFound)
				} else if errors.Is(err, ErrForbidden) {
					w.WriteHeader(http.StatusForbidden)
				} else if appErr.status != 0 {
					w.WriteHeader(appErr.status)
				} else {
					w.WriteHeader(http.StatusBadRequest)
				}

				w.Write(appErr.Marshal())

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			w.Write(internalError().Marshal())
		}
	}
}
