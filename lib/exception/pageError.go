package exception

import "fmt"

type PageNotFoundError struct {
	*AppError
	Key string
}

func NewPageNotFoundError(key string) *PageNotFoundError {
	return &PageNotFoundError{
		AppError: &AppError{
			Code:    "PAGE_NOT_FOUND",
			Message: fmt.Sprintf("page '%s' does not exist", key),
		},
		Key: key,
	}
}

type RevisionNotFoundError struct {
	*AppError
	Rev int
}

func NewRevisionNotFoundError(rev int, historyCount int) *RevisionNotFoundError {
	return &RevisionNotFoundError{
		AppError: &AppError{
			Code:    "REVISION_NOT_FOUND",
			Message: fmt.Sprintf("revision %d is out of range 1..%d", rev, historyCount),
		},
		Rev: rev,
	}
}

// UnknownPageTypeError aborts a whole merge: no page set is produced when an
// imported entry carries a kind other than FrontPage, SandBox or Content.
type UnknownPageTypeError struct {
	*AppError
	Kind string
}

func NewUnknownPageTypeError(kind string) *UnknownPageTypeError {
	return &UnknownPageTypeError{
		AppError: &AppError{
			Code:    "UNKNOWN_PAGE_TYPE",
			Message: fmt.Sprintf("unknown page type: %s", kind),
		},
		Kind: kind,
	}
}
