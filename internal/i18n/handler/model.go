package handler

import "github.com/itisal/itisal-backend/internal/i18n"

type LocaleRequest struct {
	Language string `json:"language" validate:"required,oneof=en ar"`
}

type LocaleResponse struct {
	Locale i18n.Locale `json:"locale"`
}

type MessagesResponse struct {
	Locale   i18n.Locale       `json:"locale"`
	Messages map[string]string `json:"messages"`
}
