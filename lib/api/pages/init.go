package pages

import (
	"github.com/DBC-Works/swiki/lib"
)

func Init(store *lib.InitStore) {
	handler := NewPagesHandler(store.PageManager, store.Validator, store.Logger)

	store.C.Get("/api/pages", handler.GetPageList)
	store.C.Post("/api/pages", handler.AddPageData)
	store.C.Get("/api/titles", handler.GetPageTitles)
	store.C.Get("/api/pages/:title", handler.GetPageByTitle)
	store.C.Get("/api/pages/:kind/:id/diff/:from/:to", handler.GetDiff)
}
