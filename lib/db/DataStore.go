package db

import "github.com/DBC-Works/swiki/lib/models/page"

type PageSetMethods interface {
	// GetPageSet returns the stored page set, or an empty page set if nothing was saved yet.
	GetPageSet() (*page.PageSet, error)
	// SavePageSet replaces the stored page set as a whole.
	SavePageSet(pageSet page.PageSet) error
}

type DataStore interface {
	PageSetMethods
	Ping() error
	Close() error
}
