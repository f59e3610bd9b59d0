package stats

import (
	"github.com/DBC-Works/swiki/lib"
)

func Init(store *lib.InitStore) {
	checks := []Checker{
		DBChecker{store.Store},
		PageSetChecker{store.Store},
	}

	store.C.Get("/stats/health", Handler(
		store.RetrievedSettings.GitVersion,
		"",
		"swiki-api",
		checks,
	))
}
