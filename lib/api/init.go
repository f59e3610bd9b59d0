package api

import (
	"github.com/DBC-Works/swiki/lib"
	"github.com/DBC-Works/swiki/lib/api/io"
	"github.com/DBC-Works/swiki/lib/api/pages"
	"github.com/DBC-Works/swiki/lib/api/stats"
)

func InitAPI(store *lib.InitStore) {
	pages.Init(store)
	io.Init(store)
	stats.Init(store)
}
