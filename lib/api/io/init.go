package io

import (
	"github.com/DBC-Works/swiki/lib"
	"github.com/gofiber/fiber/v2"
)

func Init(store *lib.InitStore) {
	importHandler := NewImportHandler(
		store.PageManager,
		store.Importer,
		store.RetrievedSettings,
		store.Logger,
	)

	store.C.Get("/api/export", func(ctx *fiber.Ctx) error {
		return GetExport(ctx, store.PageManager, store.Logger)
	})
	store.C.Get("/api/pages/:kind/:id/export/:type", func(ctx *fiber.Ctx) error {
		return GetPageExport(ctx, store.PageManager)
	})

	store.C.Post("/api/import", importHandler.ImportPages)
}
