package db

import "errors"

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrLinkNotFound  = errors.New("store region link not found")
	ErrLinkExists    = errors.New("store region link already exists")
)
