package lib

import (
	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/io"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/DBC-Works/swiki/lib/settings"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	Store             db.DataStore
	PageManager       *page.Manager
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
	Importer          *io.Importer
}
