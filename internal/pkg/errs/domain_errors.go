package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// QR code errors
	ErrQRCodeNotFound = errors.New("qr code not found")

	// Image errors
	ErrImageEncodeFailed = errors.New("qr image encoding failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
