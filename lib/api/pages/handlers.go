package pages

import (
	"net/url"
	"strconv"

	apiError "github.com/DBC-Works/swiki/lib/api/errors"
	pageModel "github.com/DBC-Works/swiki/lib/models/page"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AddPageDataRequest struct {
	Kind     *pageModel.PageType `json:"kind" validate:"required"`
	ID       string              `json:"id" validate:"omitempty,uuid4"`
	Language string              `json:"language" validate:"required,bcp47_language_tag"`
	Title    string              `json:"title"`
	Content  string              `json:"content"`
}

type PagesHandler struct {
	pageManager *page.Manager
	validator   *validator.Validate
	logger      *zap.SugaredLogger
}

func NewPagesHandler(pageManager *page.Manager, validator *validator.Validate, logger *zap.SugaredLogger) *PagesHandler {
	return &PagesHandler{
		pageManager: pageManager,
		validator:   validator,
		logger:      logger,
	}
}

func (h *PagesHandler) fail(ctx *fiber.Ctx, err error) error {
	mapped := apiError.FromException(err)
	if mapped.Error >= 500 {
		h.logger.Errorf("Request %s %s failed: %v", ctx.Method(), ctx.Path(), err)
	}
	return apiError.Send(ctx, mapped)
}

// GetPageList godoc
// @Summary List pages
// @Description Lists the front page, the sand box and every content page with their latest revision
// @Tags Pages
// @Produce json
// @Success 200 {array} pageModel.PageInfoForList
// @Failure 500 {object} apiError.Error
// @Router /api/pages [get]
func (h *PagesHandler) GetPageList(ctx *fiber.Ctx) error {
	pageList, err := h.pageManager.GetPageList()
	if err != nil {
		return h.fail(ctx, err)
	}
	return ctx.JSON(pageList)
}

func (h *PagesHandler) GetPageTitles(ctx *fiber.Ctx) error {
	titles, err := h.pageManager.GetPageTitles()
	if err != nil {
		return h.fail(ctx, err)
	}
	return ctx.JSON(titles)
}

// GetPageByTitle godoc
// @Summary Get a content page by title
// @Tags Pages
// @Produce json
// @Param title path string true "Latest title of the page"
// @Success 200 {object} pageModel.Page
// @Failure 404 {object} apiError.Error
// @Router /api/pages/{title} [get]
func (h *PagesHandler) GetPageByTitle(ctx *fiber.Ctx) error {
	title, err := url.PathUnescape(ctx.Params("title"))
	if err != nil {
		return apiError.Send(ctx, apiError.NewInvalidParamError("title"))
	}

	found, err := h.pageManager.GetPageByTitle(title)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ctx.JSON(found)
}

// AddPageData godoc
// @Summary Add a revision
// @Description Adds a revision to a page. A page is created if it does not exist yet.
// @Tags Pages
// @Accept json
// @Produce json
// @Param request body AddPageDataRequest true "New revision"
// @Success 200 {object} pageModel.Page
// @Failure 400 {object} apiError.Error
// @Failure 422 {object} apiError.Error
// @Router /api/pages [post]
func (h *PagesHandler) AddPageData(ctx *fiber.Ctx) error {
	var request AddPageDataRequest
	if err := ctx.BodyParser(&request); err != nil {
		return apiError.Send(ctx, apiError.InvalidRequestError)
	}
	if err := h.validator.Struct(request); err != nil {
		return apiError.Send(ctx, apiError.ValidationError)
	}

	updated, err := h.pageManager.AddPageData(*request.Kind, request.ID, pageModel.PagePresentation{
		Language: request.Language,
		Title:    request.Title,
		Content:  request.Content,
	})
	if err != nil {
		return h.fail(ctx, err)
	}
	return ctx.JSON(updated)
}

func parseRevision(ctx *fiber.Ctx, name string) (int, bool) {
	rev, err := strconv.Atoi(ctx.Params(name))
	if err != nil {
		return 0, false
	}
	return rev, true
}

// GetDiff godoc
// @Summary Compare two revisions
// @Description Revisions are numbered from the oldest one, starting at 1. The id is ignored for FrontPage and SandBox.
// @Tags Pages
// @Produce json
// @Param kind path string true "FrontPage, SandBox or Content"
// @Param id path string true "Page id"
// @Param from path int true "Older revision"
// @Param to path int true "Newer revision"
// @Success 200 {object} page.PageDiff
// @Failure 400 {object} apiError.Error
// @Failure 404 {object} apiError.Error
// @Router /api/pages/{kind}/{id}/diff/{from}/{to} [get]
func (h *PagesHandler) GetDiff(ctx *fiber.Ctx) error {
	kind, err := pageModel.ParsePageType(ctx.Params("kind"))
	if err != nil {
		return apiError.Send(ctx, apiError.NewInvalidParamError("kind"))
	}
	from, ok := parseRevision(ctx, "from")
	if !ok {
		return apiError.Send(ctx, apiError.InvalidRevisionError)
	}
	to, ok := parseRevision(ctx, "to")
	if !ok {
		return apiError.Send(ctx, apiError.InvalidRevisionError)
	}

	pageDiff, err := h.pageManager.Diff(kind, ctx.Params("id"), from, to)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ctx.JSON(pageDiff)
}
