package interpretation

import "errors"

var errEmptyCompletion = errors.New("completion returned no choices")
