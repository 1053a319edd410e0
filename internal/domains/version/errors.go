package version

import "errors"

var ErrNotFound = errors.New("version not found")
