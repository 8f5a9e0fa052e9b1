package dashboard

import "errors"

// ErrValidation flags malformed filter input (dates, ids).
var ErrValidation = errors.New("invalid dashboard filters")
