package errors

import (
	goerrors "errors"

	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/gofiber/fiber/v2"
)

// Error represents an API error
// @Description Standardized API error response
type Error struct {
	Message string `json:"message" example:"Page not found"`
	Error   int    `json:"error" example:"404"`
}

// Send writes apiError with its own status code.
func Send(ctx *fiber.Ctx, apiError Error) error {
	return ctx.Status(apiError.Error).JSON(apiError)
}

// FromException maps the typed errors of the exception package to an API error.
// Unknown errors become InternalServerError.
func FromException(err error) Error {
	var pageNotFoundError *exception.PageNotFoundError
	var revisionNotFoundError *exception.RevisionNotFoundError
	var unknownPageTypeError *exception.UnknownPageTypeError
	var invalidImportError *exception.InvalidImportError
	var unsupportedVersionError *exception.UnsupportedVersionError
	var databaseError *exception.DatabaseError

	switch {
	case goerrors.As(err, &pageNotFoundError):
		return PageNotFoundError
	case goerrors.As(err, &revisionNotFoundError):
		return RevisionNotFoundError
	case goerrors.As(err, &invalidImportError),
		goerrors.As(err, &unsupportedVersionError),
		goerrors.As(err, &unknownPageTypeError):
		return UnsupportedImportFormatError
	case goerrors.As(err, &databaseError):
		return DataRetrievalError
	default:
		return InternalServerError
	}
}
