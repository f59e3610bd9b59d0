package io

import (
	"bytes"
	"strings"

	apiError "github.com/DBC-Works/swiki/lib/api/errors"
	"github.com/DBC-Works/swiki/lib/io"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/DBC-Works/swiki/lib/settings"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportError represents an import error with a status code
type ImportError struct {
	Status  string
	Message string
}

func (e *ImportError) Error() string {
	if e.Message != "" {
		return e.Status + ": " + e.Message
	}
	return e.Status
}

// ImportResponse is the JSON response for import operations
type ImportResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    ImportData `json:"data"`
}

type ImportData struct {
	Pages int `json:"pages"`
}

// ImportHandler handles page list imports
type ImportHandler struct {
	pageManager *page.Manager
	importer    *io.Importer
	settings    *settings.Settings
	logger      *zap.SugaredLogger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(
	pageManager *page.Manager,
	importer *io.Importer,
	settings *settings.Settings,
	logger *zap.SugaredLogger,
) *ImportHandler {
	return &ImportHandler{
		pageManager: pageManager,
		importer:    importer,
		settings:    settings,
		logger:      logger,
	}
}

// ImportPages godoc
// @Summary Import a page list
// @Description Merges an exported page list into the wiki. The document is sent as JSON body or as multipart field "file".
// @Tags Import
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ImportResponse
// @Failure 413 {object} ImportResponse
// @Router /api/import [post]
func (h *ImportHandler) ImportPages(ctx *fiber.Ctx) error {
	pages, importErr := h.doImport(ctx)
	if importErr != nil {
		h.logger.Warnf("Import failed: %v", importErr)
		status := fiber.StatusInternalServerError
		switch importErr.Status {
		case apiError.MaxFileSizeError.Message:
			status = fiber.StatusRequestEntityTooLarge
		case apiError.UnsupportedImportFormatError.Message, "uploadFailed":
			status = fiber.StatusBadRequest
		}
		return ctx.Status(status).JSON(ImportResponse{
			Code:    1,
			Message: importErr.Status,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(ImportResponse{
		Code:    0,
		Message: "ok",
		Data:    ImportData{Pages: pages},
	})
}

func (h *ImportHandler) readDocument(ctx *fiber.Ctx) ([]byte, *ImportError) {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		content := ctx.Body()
		if h.settings.ImportMaxFileSize > 0 && int64(len(content)) > h.settings.ImportMaxFileSize {
			return nil, &ImportError{Status: apiError.MaxFileSizeError.Message}
		}
		return content, nil
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &ImportError{Status: "uploadFailed", Message: "no file uploaded"}
	}
	if h.settings.ImportMaxFileSize > 0 && fileHeader.Size > h.settings.ImportMaxFileSize {
		return nil, &ImportError{Status: apiError.MaxFileSizeError.Message}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, &ImportError{Status: "uploadFailed", Message: "could not open file"}
	}
	defer file.Close()

	var content bytes.Buffer
	if _, err := content.ReadFrom(file); err != nil {
		return nil, &ImportError{Status: "uploadFailed", Message: "could not read file"}
	}
	return content.Bytes(), nil
}

// doImport performs the actual import and returns the number of content pages after it
func (h *ImportHandler) doImport(ctx *fiber.Ctx) (int, *ImportError) {
	content, importErr := h.readDocument(ctx)
	if importErr != nil {
		return 0, importErr
	}

	pageList, err := h.importer.Parse(content)
	if err != nil {
		return 0, &ImportError{Status: apiError.UnsupportedImportFormatError.Message, Message: err.Error()}
	}

	result, err := h.pageManager.Import(*pageList)
	if err != nil {
		mapped := apiError.FromException(err)
		return 0, &ImportError{Status: mapped.Message, Message: err.Error()}
	}
	return len(result.PageSet.Pages), nil
}
