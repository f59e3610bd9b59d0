package db

import (
	"path/filepath"
	"testing"

	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type dataStoreFactory struct {
	name string
	open func(t *testing.T) DataStore
}

func dataStoreFactories() []dataStoreFactory {
	return []dataStoreFactory{
		{
			name: "memory",
			open: func(t *testing.T) DataStore { return NewMemoryDataStore() },
		},
		{
			name: "sqlite",
			open: func(t *testing.T) DataStore {
				store, err := NewSQLiteDB(filepath.Join(t.TempDir(), "swiki.db"), zap.NewNop().Sugar())
				require.NoError(t, err)
				return store
			},
		},
		{
			name: "redis",
			open: func(t *testing.T) DataStore {
				mr := miniredis.RunT(t)
				store, err := NewRedisDB("redis://"+mr.Addr(), "swiki:")
				require.NoError(t, err)
				return store
			},
		},
	}
}

func TestGetPageSetOfEmptyStore(t *testing.T) {
	for _, factory := range dataStoreFactories() {
		t.Run(factory.name, func(t *testing.T) {
			store := factory.open(t)
			defer store.Close()

			pageSet, err := store.GetPageSet()

			require.NoError(t, err)
			assert.Nil(t, pageSet.FrontPage)
			assert.Nil(t, pageSet.SandBox)
			assert.NotNil(t, pageSet.Pages)
			assert.Empty(t, pageSet.Pages)
		})
	}
}

func TestSaveAndGetPageSet(t *testing.T) {
	for _, factory := range dataStoreFactories() {
		t.Run(factory.name, func(t *testing.T) {
			store := factory.open(t)
			defer store.Close()
			expected := CreateRandomPageSet(gofakeit.New(42))

			require.NoError(t, store.SavePageSet(expected))
			actual, err := store.GetPageSet()

			require.NoError(t, err)
			if diff := cmp.Diff(expected, *actual); diff != "" {
				t.Fatalf("stored page set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSavePageSetReplacesPreviousValue(t *testing.T) {
	for _, factory := range dataStoreFactories() {
		t.Run(factory.name, func(t *testing.T) {
			store := factory.open(t)
			defer store.Close()
			faker := gofakeit.New(7)

			require.NoError(t, store.SavePageSet(CreateRandomPageSet(faker)))
			second := page.NewPageSet()
			second.Pages = append(second.Pages, CreateRandomPage(faker, 2))
			require.NoError(t, store.SavePageSet(second))

			actual, err := store.GetPageSet()
			require.NoError(t, err)
			assert.Nil(t, actual.FrontPage)
			assert.Nil(t, actual.SandBox)
			assert.Equal(t, second.Pages, actual.Pages)
		})
	}
}

func TestStoredPageSetIsNotShared(t *testing.T) {
	for _, factory := range dataStoreFactories() {
		t.Run(factory.name, func(t *testing.T) {
			store := factory.open(t)
			defer store.Close()
			pageSet := CreateRandomPageSet(gofakeit.New(3))
			require.NoError(t, store.SavePageSet(pageSet))

			first, err := store.GetPageSet()
			require.NoError(t, err)
			first.FrontPage.PageDataHistory[0].Content = "changed"

			second, err := store.GetPageSet()
			require.NoError(t, err)
			assert.Equal(t, pageSet.FrontPage.PageDataHistory[0].Content, second.FrontPage.PageDataHistory[0].Content)
		})
	}
}

func TestPing(t *testing.T) {
	for _, factory := range dataStoreFactories() {
		t.Run(factory.name, func(t *testing.T) {
			store := factory.open(t)
			defer store.Close()

			assert.NoError(t, store.Ping())
		})
	}
}

func TestNilPagesAreStoredAsEmptyList(t *testing.T) {
	store := NewMemoryDataStore()

	require.NoError(t, store.SavePageSet(page.PageSet{}))
	actual, err := store.GetPageSet()

	require.NoError(t, err)
	assert.NotNil(t, actual.Pages)
}

func TestRedisDBUsesPrefixedKey(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisDBWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "wiki:")
	defer store.Close()

	require.NoError(t, store.SavePageSet(page.NewPageSet()))

	assert.True(t, mr.Exists("wiki:"+PageSetKey))
	serialized, err := mr.Get("wiki:" + PageSetKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"frontPage":null,"sandBox":null,"pages":[]}`, serialized)
}

func TestRedisDBUnreadableValue(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisDBWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
	defer store.Close()
	require.NoError(t, mr.Set(PageSetKey, "not json"))

	_, err := store.GetPageSet()

	require.Error(t, err)
	assert.Contains(t, err.Error(), PageSetDecodeError)
}

func TestNewRedisDBFailsWithoutServer(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisDB("redis://"+addr, "")

	assert.Error(t, err)
}

func TestNewRedisDBRejectsInvalidURL(t *testing.T) {
	_, err := NewRedisDB("not a url", "")

	assert.Error(t, err)
}
