package qrcode

import "errors"

var (
	// ErrNotFound covers both a missing record and a record owned by
	// someone else, so callers cannot probe for foreign ids.
	ErrNotFound = errors.New("qr code not found")

	// ErrInvalidInput rejects malformed arguments before any side effect.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncoding means the text cannot be represented as a QR image.
	ErrEncoding = errors.New("qr encoding failed")

	// ErrDispatch wraps a mail transport failure inside the notifier.
	ErrDispatch = errors.New("mail dispatch failed")

	// ErrShareFailed is what callers see when dispatch fails; the
	// transport cause stays in the logs.
	ErrShareFailed = errors.New("failed to share qr code")
)
