package page

import (
	"slices"
	"sync"
	"time"

	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/diff"
	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/io"
	pageModel "github.com/DBC-Works/swiki/lib/models/page"
	"github.com/DBC-Works/swiki/lib/pageset"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager reads and writes the stored page set. Writes are serialised, so every
// read-modify-write cycle sees the result of the previous one.
type Manager struct {
	store  db.DataStore
	logger *zap.SugaredLogger
	mu     sync.Mutex
	now    func() time.Time
}

func NewManager(store db.DataStore, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (m *Manager) GetPageSet() (*pageModel.PageSet, error) {
	return m.store.GetPageSet()
}

// GetPageList summarises the front page, the sand box and every content page.
func (m *Manager) GetPageList() ([]pageModel.PageInfoForList, error) {
	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	flatten := pageModel.FlattenPageList(*pageSet)
	pageList := make([]pageModel.PageInfoForList, len(flatten))
	for i, typedPage := range flatten {
		pageList[i] = pageModel.ToPageInfoForList(typedPage)
	}
	return pageList, nil
}

type PageTitle struct {
	Kind  pageModel.PageType `json:"kind"`
	Title *string            `json:"title"`
}

// GetPageTitles lists the latest titles. The front page and the sand box are listed even
// if they have no page yet.
func (m *Manager) GetPageTitles() ([]PageTitle, error) {
	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	titles := make([]PageTitle, 0, len(pageSet.Pages)+2)
	for _, typedPage := range pageModel.FlattenPageList(*pageSet) {
		var title *string
		if latest := pageModel.LatestPageData(typedPage.Page); latest != nil {
			title = &latest.Title
		}
		if typedPage.Kind == pageModel.Content && title == nil {
			continue
		}
		titles = append(titles, PageTitle{Kind: typedPage.Kind, Title: title})
	}
	return titles, nil
}

func findPage(pageSet *pageModel.PageSet, kind pageModel.PageType, id string) (*pageModel.Page, error) {
	switch kind {
	case pageModel.FrontPage:
		return pageSet.FrontPage, nil
	case pageModel.SandBox:
		return pageSet.SandBox, nil
	case pageModel.Content:
		for i := range pageSet.Pages {
			if pageSet.Pages[i].ID == id {
				return &pageSet.Pages[i], nil
			}
		}
		return nil, nil
	default:
		return nil, exception.NewUnknownPageTypeError(kind.String())
	}
}

// GetPage returns the page of the given slot. id is only used for content pages.
func (m *Manager) GetPage(kind pageModel.PageType, id string) (*pageModel.Page, error) {
	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	found, err := findPage(pageSet, kind, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, exception.NewPageNotFoundError(pageKey(kind, id))
	}
	return found, nil
}

// GetPageByTitle returns the first content page whose latest revision has the given title.
func (m *Manager) GetPageByTitle(title string) (*pageModel.Page, error) {
	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	for i := range pageSet.Pages {
		if latest := pageModel.LatestPageData(&pageSet.Pages[i]); latest != nil && latest.Title == title {
			return &pageSet.Pages[i], nil
		}
	}
	return nil, exception.NewPageNotFoundError(title)
}

func pageKey(kind pageModel.PageType, id string) string {
	if kind == pageModel.Content {
		return id
	}
	return kind.String()
}

// AddPageData records a new revision. If the page does not exist yet, it is created
// with a new id. The returned page is the updated one.
func (m *Manager) AddPageData(kind pageModel.PageType, id string, presentation pageModel.PagePresentation) (*pageModel.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	target, err := findPage(pageSet, kind, id)
	if err != nil {
		return nil, err
	}

	newPageData := pageModel.PageData{
		PagePresentation: presentation,
		DateAndTime:      pageModel.FormatDateAndTime(m.now()),
	}

	if target != nil {
		// keep the history newest first even if the clock went backwards
		if latest := pageModel.LatestPageData(target); latest != nil && newPageData.DateAndTime < latest.DateAndTime {
			newPageData.DateAndTime = latest.DateAndTime
		}
		target.PageDataHistory = append([]pageModel.PageData{newPageData}, target.PageDataHistory...)
	} else {
		target = &pageModel.Page{
			ID:              uuid.NewString(),
			PageDataHistory: []pageModel.PageData{newPageData},
		}
		switch kind {
		case pageModel.FrontPage:
			pageSet.FrontPage = target
		case pageModel.SandBox:
			pageSet.SandBox = target
		}
	}

	// the edited content page has the newest revision, so it leads the list
	if kind == pageModel.Content {
		edited := *target
		pageSet.Pages = slices.DeleteFunc(pageSet.Pages, func(p pageModel.Page) bool { return p.ID == edited.ID })
		pageSet.Pages = slices.Insert(pageSet.Pages, 0, edited)
		target = &pageSet.Pages[0]
	}

	if err := m.store.SavePageSet(*pageSet); err != nil {
		return nil, err
	}
	m.logger.Debugf("Added revision %d of %s page %s", len(target.PageDataHistory), kind, target.ID)
	return target, nil
}

type PageDiff struct {
	From     pageModel.PageData `json:"from"`
	To       pageModel.PageData `json:"to"`
	Sequence []diff.Subsequence `json:"sequence"`
	Stats    diff.DiffStats     `json:"stats"`
}

// Diff compares two revisions of a page. Revisions are numbered from the oldest one,
// starting at 1.
func (m *Manager) Diff(kind pageModel.PageType, id string, fromRev int, toRev int) (*PageDiff, error) {
	found, err := m.GetPage(kind, id)
	if err != nil {
		return nil, err
	}

	from, err := found.Revision(fromRev)
	if err != nil {
		return nil, err
	}
	to, err := found.Revision(toRev)
	if err != nil {
		return nil, err
	}

	sequence := diff.GenerateDiffSequence(diff.SplitLines(from.Content), diff.SplitLines(to.Content))
	return &PageDiff{
		From:     *from,
		To:       *to,
		Sequence: sequence,
		Stats:    diff.Stats(sequence),
	}, nil
}

// ImportResult is the page set after an import with the revision counts around it.
type ImportResult struct {
	PageSet         pageModel.PageSet
	RevisionsBefore int
	RevisionsAfter  int
}

// NewRevisions is the number of revisions the import added.
func (r ImportResult) NewRevisions() int {
	return r.RevisionsAfter - r.RevisionsBefore
}

// Import merges pageList into the stored page set. Nothing is stored if the merge fails.
func (m *Manager) Import(pageList pageModel.VersionedPageList) (*ImportResult, error) {
	return m.merge(pageList, true)
}

// PreviewImport reports what Import would store without storing it.
func (m *Manager) PreviewImport(pageList pageModel.VersionedPageList) (*ImportResult, error) {
	return m.merge(pageList, false)
}

func (m *Manager) merge(pageList pageModel.VersionedPageList, save bool) (*ImportResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}

	merged, err := pageset.GenerateMergedPageSet(pageList, *current)
	if err != nil {
		m.logger.Warnf("Import of %d pages failed: %v", len(pageList.Pages), err)
		return nil, err
	}
	result := &ImportResult{
		PageSet:         merged,
		RevisionsBefore: pageModel.CountRevisions(*current),
		RevisionsAfter:  pageModel.CountRevisions(merged),
	}
	if !save {
		return result, nil
	}

	if err := m.store.SavePageSet(merged); err != nil {
		return nil, err
	}
	m.logger.Infof("Imported %d pages with %d new revisions, the wiki now has %d content pages",
		len(pageList.Pages), result.NewRevisions(), len(merged.Pages))
	return result, nil
}

func (m *Manager) Export() (*pageModel.VersionedPageList, error) {
	pageSet, err := m.store.GetPageSet()
	if err != nil {
		return nil, err
	}
	exported := io.Export(*pageSet)
	return &exported, nil
}
