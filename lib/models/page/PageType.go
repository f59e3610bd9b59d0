package page

import (
	"github.com/DBC-Works/swiki/lib/exception"
)

// PageType tells which slot of a PageSet a page belongs to.
type PageType int

const (
	FrontPage PageType = iota
	SandBox
	Content
)

func (t PageType) String() string {
	switch t {
	case FrontPage:
		return "FrontPage"
	case SandBox:
		return "SandBox"
	case Content:
		return "Content"
	default:
		return "Unknown"
	}
}

func ParsePageType(s string) (PageType, error) {
	switch s {
	case "FrontPage":
		return FrontPage, nil
	case "SandBox":
		return SandBox, nil
	case "Content":
		return Content, nil
	default:
		return -1, exception.NewUnknownPageTypeError(s)
	}
}

func (t PageType) MarshalText() ([]byte, error) {
	switch t {
	case FrontPage, SandBox, Content:
		return []byte(t.String()), nil
	default:
		return nil, exception.NewUnknownPageTypeError(t.String())
	}
}

func (t *PageType) UnmarshalText(text []byte) error {
	parsed, err := ParsePageType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
