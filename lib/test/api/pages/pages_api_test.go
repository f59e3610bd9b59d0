package pages

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/DBC-Works/swiki/lib/api/pages"
	"github.com/DBC-Works/swiki/lib/diff"
	pageModel "github.com/DBC-Works/swiki/lib/models/page"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/DBC-Works/swiki/lib/test/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postPageData(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	marshalled, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/api/pages", bytes.NewBuffer(marshalled))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func addPageData(t *testing.T, app *fiber.App, kind pageModel.PageType, id string, title string, content string) pageModel.Page {
	t.Helper()
	resp := postPageData(t, app, pages.AddPageDataRequest{
		Kind:     &kind,
		ID:       id,
		Language: "en",
		Title:    title,
		Content:  content,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created pageModel.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestAddPageDataCreatesContentPage(t *testing.T) {
	store := testutils.InitMemoryUtils()

	created := addPageData(t, store.C, pageModel.Content, "", "Recipes", "Bread\nButter")

	assert.NotEmpty(t, created.ID)
	require.Len(t, created.PageDataHistory, 1)
	assert.Equal(t, "Recipes", created.PageDataHistory[0].Title)

	stored, err := store.Store.GetPageSet()
	require.NoError(t, err)
	require.Len(t, stored.Pages, 1)
	assert.Equal(t, created.ID, stored.Pages[0].ID)
}

func TestAddPageDataWithoutKind(t *testing.T) {
	store := testutils.InitMemoryUtils()

	resp := postPageData(t, store.C, map[string]string{"language": "en", "title": "No kind"})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAddPageDataWithUnknownKind(t *testing.T) {
	store := testutils.InitMemoryUtils()

	resp := postPageData(t, store.C, map[string]string{"kind": "Unknown", "language": "en"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddPageDataWithInvalidID(t *testing.T) {
	store := testutils.InitMemoryUtils()

	resp := postPageData(t, store.C, map[string]string{"kind": "Content", "id": "not-a-uuid", "language": "en"})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAddPageDataNoBody(t *testing.T) {
	store := testutils.InitMemoryUtils()
	req := httptest.NewRequest(fiber.MethodPost, "/api/pages", nil)

	resp, _ := store.C.Test(req, -1)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetPageList(t *testing.T) {
	store := testutils.InitMemoryUtils()
	addPageData(t, store.C, pageModel.FrontPage, "", "Welcome", "Hello")
	addPageData(t, store.C, pageModel.Content, "", "Recipes", "Bread")

	resp := get(t, store.C, "/api/pages")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var pageList []pageModel.PageInfoForList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pageList))
	require.Len(t, pageList, 3)
	assert.Equal(t, pageModel.FrontPage, pageList[0].Kind)
	require.NotNil(t, pageList[0].Page)
	assert.Equal(t, "Welcome", pageList[0].Page.Title)
	assert.Equal(t, pageModel.SandBox, pageList[1].Kind)
	assert.Nil(t, pageList[1].Page)
	assert.Equal(t, pageModel.Content, pageList[2].Kind)
	require.NotNil(t, pageList[2].UpdateCount)
	assert.Equal(t, 1, *pageList[2].UpdateCount)
}

func TestGetPageTitles(t *testing.T) {
	store := testutils.InitMemoryUtils()
	addPageData(t, store.C, pageModel.Content, "", "Recipes", "Bread")

	resp := get(t, store.C, "/api/titles")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var titles []page.PageTitle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&titles))
	require.NotEmpty(t, titles)
	last := titles[len(titles)-1]
	assert.Equal(t, pageModel.Content, last.Kind)
	require.NotNil(t, last.Title)
	assert.Equal(t, "Recipes", *last.Title)
}

func TestGetPageByTitle(t *testing.T) {
	store := testutils.InitMemoryUtils()
	created := addPageData(t, store.C, pageModel.Content, "", "Shopping list", "Milk")

	resp := get(t, store.C, "/api/pages/"+url.PathEscape("Shopping list"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found pageModel.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	assert.Equal(t, created.ID, found.ID)
}

func TestGetPageByUnknownTitle(t *testing.T) {
	store := testutils.InitMemoryUtils()

	resp := get(t, store.C, "/api/pages/Nowhere")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetDiff(t *testing.T) {
	store := testutils.InitMemoryUtils()
	created := addPageData(t, store.C, pageModel.Content, "", "Recipes", "a\nb")
	addPageData(t, store.C, pageModel.Content, created.ID, "Recipes", "c\nb")

	resp := get(t, store.C, "/api/pages/Content/"+created.ID+"/diff/1/2")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var pageDiff page.PageDiff
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pageDiff))
	assert.Equal(t, []diff.Subsequence{
		{Type: diff.Added, Sequence: []string{"c"}},
		{Type: diff.Deleted, Sequence: []string{"a"}},
		{Type: diff.Keep, Sequence: []string{"b"}},
	}, pageDiff.Sequence)
	assert.Equal(t, diff.DiffStats{Kept: 1, Added: 1, Deleted: 1}, pageDiff.Stats)
}

func TestGetDiffOfFrontPageIgnoresID(t *testing.T) {
	store := testutils.InitMemoryUtils()
	addPageData(t, store.C, pageModel.FrontPage, "", "Welcome", "Hello")

	resp := get(t, store.C, "/api/pages/FrontPage/-/diff/1/1")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetDiffErrors(t *testing.T) {
	store := testutils.InitMemoryUtils()
	created := addPageData(t, store.C, pageModel.Content, "", "Recipes", "a")

	testCases := []struct {
		name   string
		target string
		status int
	}{
		{name: "unknown kind", target: "/api/pages/Unknown/" + created.ID + "/diff/1/1", status: fiber.StatusBadRequest},
		{name: "revision not a number", target: "/api/pages/Content/" + created.ID + "/diff/one/1", status: fiber.StatusBadRequest},
		{name: "revision out of range", target: "/api/pages/Content/" + created.ID + "/diff/1/2", status: fiber.StatusNotFound},
		{name: "revision zero", target: "/api/pages/Content/" + created.ID + "/diff/0/1", status: fiber.StatusNotFound},
		{name: "unknown page", target: "/api/pages/Content/00000000-0000-4000-8000-000000000000/diff/1/1", status: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, store.C, tc.target)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tc.status, resp.StatusCode, string(body))
		})
	}
}
