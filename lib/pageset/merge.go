// Package pageset reconciles an imported page list with the locally stored pages.
package pageset

import (
	"slices"
	"strings"

	"github.com/DBC-Works/swiki/lib/models/page"
)

// dropDuplicates removes repeated entries of an already sorted slice. Only entries of the
// same group, that is entries with an equal sort key, are compared with each other. Every
// pair in a group is compared, not only neighbours, so duplicates separated by another
// entry of the same timestamp are dropped too.
func dropDuplicates[T any](sorted []T, sameGroup func(lhs, rhs T) bool, equal func(lhs, rhs T) bool) []T {
	kept := make([]T, 0, len(sorted))
	groupStart := 0
	for _, item := range sorted {
		if len(kept) > 0 && !sameGroup(kept[len(kept)-1], item) {
			groupStart = len(kept)
		}
		if slices.ContainsFunc(kept[groupStart:], func(k T) bool { return equal(k, item) }) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func mergePageDataHistory(currentHistory, importHistory []page.PageData) []page.PageData {
	combined := slices.Concat(currentHistory, importHistory)
	slices.SortStableFunc(combined, func(lhs, rhs page.PageData) int {
		return strings.Compare(rhs.DateAndTime, lhs.DateAndTime)
	})
	return dropDuplicates(combined,
		func(lhs, rhs page.PageData) bool { return lhs.DateAndTime == rhs.DateAndTime },
		func(lhs, rhs page.PageData) bool { return lhs == rhs },
	)
}

func createMergePage(importPage, currentPage *page.Page) *page.Page {
	return &page.Page{
		ID:              currentPage.ID,
		PageDataHistory: mergePageDataHistory(currentPage.PageDataHistory, importPage.PageDataHistory),
	}
}

func getTargetPage(importPage, currentPage *page.Page) *page.Page {
	switch {
	case importPage == nil:
		return currentPage
	case currentPage == nil:
		return importPage.Clone()
	default:
		return createMergePage(importPage, currentPage)
	}
}

func newestDateAndTime(p page.Page) string {
	if latest := page.LatestPageData(&p); latest != nil {
		return latest.DateAndTime
	}
	return ""
}

// GenerateMergedPageSet merges the histories of importPageList into current and returns
// the new page set. Neither argument is modified.
//
// Front page and sand box are merged with the local page of the same slot, content pages
// with the local page of the same id. Repeated entries for the same slot or the same id
// accumulate into one page. Pages only present on one side are kept as they are.
// Content pages are ordered by their newest revision, newest first. If an entry has an
// unknown kind, the merge fails with *exception.UnknownPageTypeError and no page set is
// returned.
func GenerateMergedPageSet(importPageList page.VersionedPageList, current page.PageSet) (page.PageSet, error) {
	resolver := newIdentityResolver(current.Clone())

	pages := make([]page.Page, 0, len(current.Pages)+len(importPageList.Pages))
	emitted := make(map[string]int)
	for _, typedPage := range importPageList.Pages {
		if typedPage.Kind == page.Content && typedPage.Page != nil {
			if index, ok := emitted[typedPage.Page.ID]; ok {
				pages[index] = *getTargetPage(typedPage.Page, &pages[index])
				continue
			}
		}

		localPage, err := resolver.resolve(typedPage)
		if err != nil {
			return page.PageSet{}, err
		}
		target := getTargetPage(typedPage.Page, localPage)
		if typedPage.Kind == page.Content {
			if target != nil {
				emitted[target.ID] = len(pages)
				pages = append(pages, *target)
			}
			continue
		}
		resolver.settle(typedPage.Kind, target)
	}

	pages = append(pages, resolver.untouched()...)
	slices.SortStableFunc(pages, func(lhs, rhs page.Page) int {
		return strings.Compare(newestDateAndTime(rhs), newestDateAndTime(lhs))
	})
	pages = dropDuplicates(pages,
		func(lhs, rhs page.Page) bool { return newestDateAndTime(lhs) == newestDateAndTime(rhs) },
		func(lhs, rhs page.Page) bool { return lhs.Equal(&rhs) },
	)

	return page.PageSet{
		FrontPage: resolver.frontPage,
		SandBox:   resolver.sandBox,
		Pages:     pages,
	}, nil
}
