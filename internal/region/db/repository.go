package db

import "errors"

var ErrRegionNotFound = errors.New("region not found")
