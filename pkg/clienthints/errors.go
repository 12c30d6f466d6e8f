package clienthints

import "errors"

// ErrMalformedHeader is returned when a client hint header is not a valid structured field.
var ErrMalformedHeader = errors.New("clienthints: malformed structured header")
