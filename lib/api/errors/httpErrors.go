package errors

var InvalidRevisionError = Error{
	Message: "Invalid revision number",
	Error:   400,
}

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

var UnsupportedImportFormatError = Error{
	Message: "unsupportedImportFormat",
	Error:   400,
}

var MaxFileSizeError = Error{
	Message: "maxFileSize",
	Error:   413,
}

var PageNotFoundError = Error{
	Message: "Page not found",
	Error:   404,
}

var RevisionNotFoundError = Error{
	Message: "Revision not found",
	Error:   404,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var DataRetrievalError = Error{
	Message: "Failed to retrieve data",
	Error:   500,
}

var ValidationError = Error{
	Message: "Validation failed",
	Error:   422,
}
