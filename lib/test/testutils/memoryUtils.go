package testutils

import (
	"github.com/DBC-Works/swiki/lib"
	"github.com/DBC-Works/swiki/lib/api"
	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/io"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/DBC-Works/swiki/lib/settings"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InitMemoryUtils creates an app with every route registered on top of a memory store.
func InitMemoryUtils() *lib.InitStore {
	return InitUtils(db.NewMemoryDataStore())
}

func InitUtils(store db.DataStore) *lib.InitStore {
	logger := zap.NewNop().Sugar()
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())
	initStore := &lib.InitStore{
		C: fiber.New(),
		RetrievedSettings: &settings.Settings{
			ImportMaxFileSize: 1024 * 1024,
			DBType:            settings.MEMORY,
			DBSettings:        &settings.DBSettings{},
		},
		Store:       store,
		PageManager: page.NewManager(store, logger),
		Validator:   validatorEvaluator,
		Logger:      logger,
		Importer:    io.NewImporter(validatorEvaluator, logger),
	}
	api.InitAPI(initStore)
	return initStore
}
