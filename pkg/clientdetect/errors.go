package clientdetect

import "errors"

// Diagnostic errors. None of them ever reaches a Result; they are only
// reported through an Observer.
var (
	ErrEmptyUserAgent        = errors.New("empty user agent string")
	ErrUnrecognizedBrowser   = errors.New("unrecognized browser")
	ErrNoUsableBrand         = errors.New("no usable brand in client hints")
	ErrHighDetailTimeout     = errors.New("high-detail hints request timed out")
	ErrHighDetailFailed      = errors.New("high-detail hints request failed")
	ErrHighDetailUnsupported = errors.New("client hints expose no high-detail resolver")
	ErrRecovered             = errors.New("recovered from panic in extractor")
	ErrInvalidHint           = errors.New("invalid hint name")
)
