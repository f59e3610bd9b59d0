package io

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DBC-Works/swiki/lib/api/constants"
	apiError "github.com/DBC-Works/swiki/lib/api/errors"
	"github.com/DBC-Works/swiki/lib/io"
	pageModel "github.com/DBC-Works/swiki/lib/models/page"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const exportFileTimeLayout = "20060102T1504"

// GetExport godoc
// @Summary Export all pages
// @Description Downloads every page with its whole history in the import format
// @Tags Export
// @Produce json
// @Success 200 {object} pageModel.VersionedPageList
// @Failure 500 {object} apiError.Error
// @Router /api/export [get]
func GetExport(ctx *fiber.Ctx, pageManager *page.Manager, logger *zap.SugaredLogger) error {
	exported, err := pageManager.Export()
	if err != nil {
		logger.Errorf("Export failed: %v", err)
		return apiError.Send(ctx, apiError.FromException(err))
	}

	serialized, err := io.Marshal(*exported)
	if err != nil {
		logger.Errorf("Export failed: %v", err)
		return apiError.Send(ctx, apiError.InternalServerError)
	}

	fileName := fmt.Sprintf("swiki-page-data-%s.json", time.Now().UTC().Format(exportFileTimeLayout))
	ctx.Set(fiber.HeaderContentType, constants.ContentTypeJSON)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	logger.Infof("Exporting %d pages", len(exported.Pages))
	return ctx.Send(serialized)
}

// GetPageExport godoc
// @Summary Export one revision of a page
// @Tags Export
// @Produce plain
// @Param kind path string true "FrontPage, SandBox or Content"
// @Param id path string true "Page id"
// @Param type path string true "Export type (txt, markdown)"
// @Param rev query int false "Revision number, the newest if omitted"
// @Success 200 {string} string "Exported page"
// @Failure 400 {object} apiError.Error
// @Failure 404 {object} apiError.Error
// @Router /api/pages/{kind}/{id}/export/{type} [get]
func GetPageExport(ctx *fiber.Ctx, pageManager *page.Manager) error {
	kind, err := pageModel.ParsePageType(ctx.Params("kind"))
	if err != nil {
		return apiError.Send(ctx, apiError.NewInvalidParamError("kind"))
	}

	var rev *int
	if optRev := ctx.Query("rev"); optRev != "" {
		revNum, err := strconv.Atoi(optRev)
		if err != nil {
			return apiError.Send(ctx, apiError.InvalidRevisionError)
		}
		rev = &revNum
	}

	found, err := pageManager.GetPage(kind, ctx.Params("id"))
	if err != nil {
		return apiError.Send(ctx, apiError.FromException(err))
	}

	var exported *string
	var contentType string
	switch ctx.Params("type") {
	case "txt":
		exported, err = io.GetPageTxt(*found, rev)
		contentType = constants.ContentTypeTextPlain
	case "markdown":
		exported, err = io.GetPageMarkdown(*found, rev)
		contentType = constants.ContentTypeMarkdown
	default:
		return apiError.Send(ctx, apiError.NewInvalidParamError("type"))
	}
	if err != nil {
		return apiError.Send(ctx, apiError.FromException(err))
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.SendString(*exported)
}
