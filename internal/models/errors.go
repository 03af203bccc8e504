package models

import "errors"

// ErrVersionConflict is returned by the document store when a commit's
// expected version no longer matches the stored document.
var ErrVersionConflict = errors.New("document version conflict")
