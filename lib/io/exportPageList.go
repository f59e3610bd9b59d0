package io

import (
	"encoding/json"

	"github.com/DBC-Works/swiki/lib/models/page"
)

// Export lists every page of pageSet in a document Importer.Parse accepts.
func Export(pageSet page.PageSet) page.VersionedPageList {
	return page.VersionedPageList{
		Version: page.CurrentDataFormatVersion,
		Pages:   page.FlattenPageList(pageSet.Clone()),
	}
}

func Marshal(pageList page.VersionedPageList) ([]byte, error) {
	return json.MarshalIndent(pageList, "", "  ")
}
