package constants

const (
	ContentTypeJSON      = "application/json"
	ContentTypeTextPlain = "text/plain; charset=utf-8"
	ContentTypeMarkdown  = "text/markdown; charset=utf-8"
)
