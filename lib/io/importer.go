package io

import (
	"encoding/json"
	"errors"

	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const newestFirstTag = "newestfirst"

// Importer turns an uploaded page list document into a validated VersionedPageList.
type Importer struct {
	validator *validator.Validate
	logger    *zap.SugaredLogger
}

// NewImporter creates a new Importer. It registers the history order rule on validate.
func NewImporter(validate *validator.Validate, logger *zap.SugaredLogger) *Importer {
	validate.RegisterStructValidation(validateHistoryOrder, page.Page{})
	return &Importer{
		validator: validate,
		logger:    logger,
	}
}

// validateHistoryOrder rejects pages whose revisions are not sorted newest first.
func validateHistoryOrder(sl validator.StructLevel) {
	p := sl.Current().Interface().(page.Page)
	for i := 1; i < len(p.PageDataHistory); i++ {
		if p.PageDataHistory[i-1].DateAndTime < p.PageDataHistory[i].DateAndTime {
			sl.ReportError(p.PageDataHistory, "PageDataHistory", "pageDataHistory", newestFirstTag, "")
			return
		}
	}
}

// Parse decodes and validates content. The version is checked before the document
// is decoded, so documents of another format fail with *exception.UnsupportedVersionError
// instead of a decoding error.
func (i *Importer) Parse(content []byte) (*page.VersionedPageList, error) {
	if !gjson.ValidBytes(content) {
		return nil, exception.NewInvalidImportError("import document is not valid JSON", nil)
	}

	version := gjson.GetBytes(content, "version")
	if version.Type != gjson.Number {
		return nil, exception.NewInvalidImportError("import document has no numeric version", nil)
	}
	if !page.DataFormatVersion(version.Int()).Supported() {
		i.logger.Warnf("Rejected import document with version %d", version.Int())
		return nil, exception.NewUnsupportedVersionError(version.Int())
	}

	var pageList page.VersionedPageList
	if err := json.Unmarshal(content, &pageList); err != nil {
		var unknownPageTypeError *exception.UnknownPageTypeError
		if errors.As(err, &unknownPageTypeError) {
			i.logger.Warnf("Rejected import document: %v", err)
		}
		return nil, exception.NewInvalidImportError("import document could not be decoded", err)
	}

	if err := i.validator.Struct(pageList); err != nil {
		return nil, exception.NewInvalidImportError("import document failed validation", err)
	}

	return &pageList, nil
}
