package db

import (
	"encoding/json"
	"fmt"

	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
)

func encodePageSet(pageSet page.PageSet) (string, error) {
	if pageSet.Pages == nil {
		pageSet.Pages = make([]page.Page, 0)
	}
	serialized, err := json.Marshal(pageSet)
	if err != nil {
		return "", fmt.Errorf("error marshaling page set: %w", err)
	}
	return string(serialized), nil
}

func decodePageSet(serialized string) (*page.PageSet, error) {
	pageSet := page.NewPageSet()
	if err := json.Unmarshal([]byte(serialized), &pageSet); err != nil {
		return nil, exception.NewDatabaseError(PageSetDecodeError, err)
	}
	if pageSet.Pages == nil {
		pageSet.Pages = make([]page.Page, 0)
	}
	return &pageSet, nil
}

func emptyPageSet() *page.PageSet {
	pageSet := page.NewPageSet()
	return &pageSet
}
