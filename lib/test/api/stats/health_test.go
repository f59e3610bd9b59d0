package stats

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DBC-Works/swiki/lib/api/stats"
	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/DBC-Works/swiki/lib/test/testutils"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unreachableStore struct {
	db.DataStore
}

var errUnreachable = errors.New("connection refused")

func (unreachableStore) Ping() error {
	return errUnreachable
}

func (unreachableStore) GetPageSet() (*page.PageSet, error) {
	return nil, errUnreachable
}

func getHealth(t *testing.T, app *fiber.App) (int, stats.HealthResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/stats/health", nil), -1)
	require.NoError(t, err)

	var health stats.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	return resp.StatusCode, health
}

func TestHealthPass(t *testing.T) {
	store := testutils.InitMemoryUtils()

	status, health := getHealth(t, store.C)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, stats.StatusPass, health.Status)
	assert.Equal(t, "swiki-api", health.ServiceID)
	require.Contains(t, health.Checks, "database")
	require.Contains(t, health.Checks, "pageSet")
	assert.Equal(t, stats.StatusPass, health.Checks["database"][0].Status)
}

func TestHealthReportsPageCount(t *testing.T) {
	store := testutils.InitMemoryUtils()
	require.NoError(t, store.Store.SavePageSet(db.CreateRandomPageSet(gofakeit.New(3))))
	pageSet, err := store.Store.GetPageSet()
	require.NoError(t, err)

	_, health := getHealth(t, store.C)

	assert.EqualValues(t, len(pageSet.Pages), health.Checks["pageSet"][0].Observed)
}

func TestHealthFailsWhenStoreIsUnreachable(t *testing.T) {
	store := testutils.InitUtils(unreachableStore{})

	status, health := getHealth(t, store.C)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, stats.StatusFail, health.Status)
	assert.Equal(t, errUnreachable.Error(), health.Checks["database"][0].Output)
	assert.Equal(t, stats.StatusFail, health.Checks["pageSet"][0].Status)
}
