package io

import (
	"github.com/DBC-Works/swiki/lib/models/page"
)

// GetPageTxt returns the content of the given revision. rev counts from the oldest
// revision, starting at 1. A nil rev selects the newest revision.
func GetPageTxt(p page.Page, rev *int) (*string, error) {
	pageData, err := selectRevision(p, rev)
	if err != nil {
		return nil, err
	}
	return &pageData.Content, nil
}

func selectRevision(p page.Page, rev *int) (*page.PageData, error) {
	if rev == nil {
		rev = new(int)
		*rev = len(p.PageDataHistory)
	}
	return p.Revision(*rev)
}
