package page

// LatestPageData returns the newest revision of p, or nil if p is nil.
func LatestPageData(p *Page) *PageData {
	if p == nil || len(p.PageDataHistory) == 0 {
		return nil
	}
	return &p.PageDataHistory[0]
}

// FlattenPageList lists the front page, the sand box and then every content page.
func FlattenPageList(pageSet PageSet) []TypedPage {
	flatten := make([]TypedPage, 0, len(pageSet.Pages)+2)
	flatten = append(flatten,
		TypedPage{Kind: FrontPage, Page: pageSet.FrontPage},
		TypedPage{Kind: SandBox, Page: pageSet.SandBox},
	)
	for i := range pageSet.Pages {
		flatten = append(flatten, TypedPage{Kind: Content, Page: &pageSet.Pages[i]})
	}
	return flatten
}

// PageInfoForList summarises a page for the page list.
type PageInfoForList struct {
	Kind                  PageType  `json:"kind"`
	ID                    *string   `json:"id"`
	Page                  *PageData `json:"page"`
	CreateDateAndTime     *string   `json:"createDateAndTime"`
	LastUpdateDateAndTime *string   `json:"lastUpdateDateAndTime"`
	UpdateCount           *int      `json:"updateCount"`
}

func ToPageInfoForList(typedPage TypedPage) PageInfoForList {
	info := PageInfoForList{Kind: typedPage.Kind}
	p := typedPage.Page
	if p == nil || len(p.PageDataHistory) == 0 {
		return info
	}
	id := p.ID
	latest := p.PageDataHistory[0]
	created := p.PageDataHistory[len(p.PageDataHistory)-1].DateAndTime
	updateCount := len(p.PageDataHistory)

	info.ID = &id
	info.Page = &latest
	info.CreateDateAndTime = &created
	info.LastUpdateDateAndTime = &latest.DateAndTime
	info.UpdateCount = &updateCount
	return info
}

// CountRevisions counts the revisions of every page of pageSet.
func CountRevisions(pageSet PageSet) int {
	count := 0
	for _, typedPage := range FlattenPageList(pageSet) {
		if typedPage.Page != nil {
			count += len(typedPage.Page.PageDataHistory)
		}
	}
	return count
}
