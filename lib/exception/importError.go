package exception

import "fmt"

type InvalidImportError struct {
	*AppError
}

func NewInvalidImportError(message string, cause error) *InvalidImportError {
	return &InvalidImportError{
		AppError: &AppError{
			Code:    "INVALID_IMPORT",
			Message: message,
			Cause:   cause,
		},
	}
}

type UnsupportedVersionError struct {
	*AppError
	Version int64
}

func NewUnsupportedVersionError(version int64) *UnsupportedVersionError {
	return &UnsupportedVersionError{
		AppError: &AppError{
			Code:    "UNSUPPORTED_VERSION",
			Message: fmt.Sprintf("unsupported data format version: %d", version),
		},
		Version: version,
	}
}
