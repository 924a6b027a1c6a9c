package db

import "errors"

var ErrStoreSetupNotFound = errors.New("store setup not found")
