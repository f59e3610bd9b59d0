package page

import (
	"slices"
	"time"

	"github.com/DBC-Works/swiki/lib/exception"
)

// DateAndTimeLayout is the fixed-width UTC layout of PageData.DateAndTime. Values in this
// layout sort chronologically when compared as strings.
const DateAndTimeLayout = "2006-01-02T15:04:05Z"

func FormatDateAndTime(t time.Time) string {
	return t.UTC().Format(DateAndTimeLayout)
}

// PagePresentation is what an author edits.
type PagePresentation struct {
	// Language is an RFC 5646 language tag.
	Language string `json:"language" validate:"required,bcp47_language_tag"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// PageData is one revision of a page.
type PageData struct {
	PagePresentation
	DateAndTime string `json:"dateAndTime" validate:"required,datetime=2006-01-02T15:04:05Z"`
}

// Page is a page with its revisions, newest first. PageDataHistory is never empty.
type Page struct {
	ID              string     `json:"id" validate:"required,uuid4"`
	PageDataHistory []PageData `json:"pageDataHistory" validate:"required,min=1,dive"`
}

// Clone returns a copy of the page that shares no memory with p.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	return &Page{
		ID:              p.ID,
		PageDataHistory: slices.Clone(p.PageDataHistory),
	}
}

// Equal reports whether both pages have the same id and the same history.
func (p *Page) Equal(other *Page) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID && slices.Equal(p.PageDataHistory, other.PageDataHistory)
}

// PageSet is the whole durable state of the wiki.
type PageSet struct {
	FrontPage *Page  `json:"frontPage"`
	SandBox   *Page  `json:"sandBox"`
	Pages     []Page `json:"pages"`
}

func NewPageSet() PageSet {
	return PageSet{Pages: make([]Page, 0)}
}

func (s PageSet) Clone() PageSet {
	pages := make([]Page, len(s.Pages))
	for i := range s.Pages {
		pages[i] = *s.Pages[i].Clone()
	}
	return PageSet{
		FrontPage: s.FrontPage.Clone(),
		SandBox:   s.SandBox.Clone(),
		Pages:     pages,
	}
}

// Revision returns revision number rev. Revisions are numbered from the oldest one,
// starting at 1.
func (p *Page) Revision(rev int) (*PageData, error) {
	historyCount := len(p.PageDataHistory)
	if rev < 1 || historyCount < rev {
		return nil, exception.NewRevisionNotFoundError(rev, historyCount)
	}
	return &p.PageDataHistory[historyCount-rev], nil
}
