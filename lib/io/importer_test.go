package io

import (
	"errors"
	"testing"

	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestImporter() *Importer {
	return NewImporter(validator.New(validator.WithRequiredStructEnabled()), zap.NewNop().Sugar())
}

const validDocument = `{
  "version": 202503,
  "pages": [
    {"kind": "FrontPage", "page": {
      "id": "9b2f8f0e-3c55-4a8e-9d55-1f4f2f3e6c11",
      "pageDataHistory": [
        {"language": "en", "title": "Front page", "content": "second", "dateAndTime": "2025-05-01T00:00:00Z"},
        {"language": "en", "title": "Front page", "content": "first", "dateAndTime": "2025-04-01T00:00:00Z"}
      ]
    }},
    {"kind": "SandBox", "page": null},
    {"kind": "Content", "page": {
      "id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22",
      "pageDataHistory": [
        {"language": "ja", "title": "ページ", "content": "内容", "dateAndTime": "2025-03-01T12:34:56Z"}
      ]
    }}
  ]
}`

func TestParseValidDocument(t *testing.T) {
	pageList, err := newTestImporter().Parse([]byte(validDocument))

	require.NoError(t, err)
	assert.Equal(t, page.V202503, pageList.Version)
	require.Len(t, pageList.Pages, 3)
	assert.Equal(t, page.FrontPage, pageList.Pages[0].Kind)
	assert.Len(t, pageList.Pages[0].Page.PageDataHistory, 2)
	assert.Equal(t, page.SandBox, pageList.Pages[1].Kind)
	assert.Nil(t, pageList.Pages[1].Page)
	assert.Equal(t, page.Content, pageList.Pages[2].Kind)
	assert.Equal(t, "ページ", pageList.Pages[2].Page.PageDataHistory[0].Title)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	testCases := []struct {
		name     string
		document string
	}{
		{name: "not json", document: `{"version": 202503,`},
		{name: "missing version", document: `{"pages": []}`},
		{name: "string version", document: `{"version": "202503", "pages": []}`},
		{
			name:     "unknown kind",
			document: `{"version": 202503, "pages": [{"kind": "Unknown", "page": null}]}`,
		},
		{
			name: "invalid id",
			document: `{"version": 202503, "pages": [{"kind": "Content", "page": {"id": "page-1",
				"pageDataHistory": [{"language": "en", "title": "t", "content": "c", "dateAndTime": "2025-03-01T00:00:00Z"}]}}]}`,
		},
		{
			name: "empty history",
			document: `{"version": 202503, "pages": [{"kind": "Content", "page": {
				"id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22", "pageDataHistory": []}}]}`,
		},
		{
			name: "local time stamp",
			document: `{"version": 202503, "pages": [{"kind": "Content", "page": {"id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22",
				"pageDataHistory": [{"language": "en", "title": "t", "content": "c", "dateAndTime": "2025-03-01T09:00:00+09:00"}]}}]}`,
		},
		{
			name: "missing language",
			document: `{"version": 202503, "pages": [{"kind": "Content", "page": {"id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22",
				"pageDataHistory": [{"title": "t", "content": "c", "dateAndTime": "2025-03-01T00:00:00Z"}]}}]}`,
		},
		{
			name: "oldest first",
			document: `{"version": 202503, "pages": [{"kind": "Content", "page": {"id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22",
				"pageDataHistory": [
					{"language": "en", "title": "t", "content": "old", "dateAndTime": "2025-03-01T00:00:00Z"},
					{"language": "en", "title": "t", "content": "new", "dateAndTime": "2025-04-01T00:00:00Z"}
				]}}]}`,
		},
	}

	importer := newTestImporter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pageList, err := importer.Parse([]byte(tc.document))

			require.Error(t, err)
			assert.Nil(t, pageList)
			var invalidImportError *exception.InvalidImportError
			assert.True(t, errors.As(err, &invalidImportError), "unexpected error %v", err)
		})
	}
}

func TestParseUnknownKindKeepsCause(t *testing.T) {
	_, err := newTestImporter().Parse([]byte(`{"version": 202503, "pages": [{"kind": "Unknown", "page": null}]}`))

	var unknownPageTypeError *exception.UnknownPageTypeError
	require.True(t, errors.As(err, &unknownPageTypeError))
	assert.Equal(t, "Unknown", unknownPageTypeError.Kind)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := newTestImporter().Parse([]byte(`{"version": 202401, "pages": [{"kind": "Whatever"}]}`))

	var unsupportedVersionError *exception.UnsupportedVersionError
	require.True(t, errors.As(err, &unsupportedVersionError))
	assert.Equal(t, int64(202401), unsupportedVersionError.Version)
}

func TestParseAcceptsEqualTimestamps(t *testing.T) {
	document := `{"version": 202503, "pages": [{"kind": "SandBox", "page": {"id": "5d1c0f8a-0a5e-4b9f-8d0c-7a2e9b1f4c22",
		"pageDataHistory": [
			{"language": "en", "title": "t", "content": "b", "dateAndTime": "2025-03-01T00:00:00Z"},
			{"language": "en", "title": "t", "content": "a", "dateAndTime": "2025-03-01T00:00:00Z"}
		]}}]}`

	pageList, err := newTestImporter().Parse([]byte(document))

	require.NoError(t, err)
	assert.Len(t, pageList.Pages[0].Page.PageDataHistory, 2)
}
