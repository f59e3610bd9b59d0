package pageset

import (
	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
)

// identityResolver pairs imported entries with local pages. The singleton pages are
// matched by slot, content pages by id. A matched content page is consumed and is not
// offered again during the same merge.
type identityResolver struct {
	frontPage *page.Page
	sandBox   *page.Page
	pages     []page.Page
	consumed  []bool
}

func newIdentityResolver(local page.PageSet) *identityResolver {
	return &identityResolver{
		frontPage: local.FrontPage,
		sandBox:   local.SandBox,
		pages:     local.Pages,
		consumed:  make([]bool, len(local.Pages)),
	}
}

// resolve returns the local page the entry merges with, or nil if there is none.
func (r *identityResolver) resolve(typedPage page.TypedPage) (*page.Page, error) {
	switch typedPage.Kind {
	case page.FrontPage:
		return r.frontPage, nil
	case page.SandBox:
		return r.sandBox, nil
	case page.Content:
		if typedPage.Page == nil {
			return nil, nil
		}
		for i := range r.pages {
			if !r.consumed[i] && r.pages[i].ID == typedPage.Page.ID {
				r.consumed[i] = true
				return &r.pages[i], nil
			}
		}
		return nil, nil
	default:
		return nil, exception.NewUnknownPageTypeError(typedPage.Kind.String())
	}
}

// settle makes a later entry for the same slot merge with the already merged page.
func (r *identityResolver) settle(kind page.PageType, merged *page.Page) {
	switch kind {
	case page.FrontPage:
		r.frontPage = merged
	case page.SandBox:
		r.sandBox = merged
	}
}

// untouched returns the local content pages no entry resolved to, in their original order.
func (r *identityResolver) untouched() []page.Page {
	pages := make([]page.Page, 0, len(r.pages))
	for i := range r.pages {
		if !r.consumed[i] {
			pages = append(pages, r.pages[i])
		}
	}
	return pages
}
