package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/request"
	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/response"
	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/service"
)

type ItemService interface {
	Create(ctx context.Context, accountID uint, name string, price float64, imageRef string) (domain.Item, error)
	Update(ctx context.Context, accountID, id uint, name string, price float64, imageRef string) (domain.Item, error)
	Delete(ctx context.Context, accountID, id uint) error
	Dashboard(ctx context.Context, accountID uint) ([]domain.ItemFunding, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Items with funding status for the session account
// @Tags         items
// @Produce      json
// @Success      200  {array}   domain.ItemFunding
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard [get]
// @Security BearerAuth
func (h *ItemHandler) HandleGetDashboard(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	fundings, err := h.svc.Dashboard(ctx.Request.Context(), sess.AccountID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboard -> h.svc.Dashboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fundings)
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateItemRequest  true  "item details"
// @Success      201    {object}  domain.Item
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.Create(ctx.Request.Context(), sess.AccountID, input.Name, input.Price, input.ImageRef)
	if err != nil {
		if errors.Is(err, service.ErrEmptyItemName) || errors.Is(err, service.ErrNonPositivePrice) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleUpdateItem godoc
// @Summary      Update an item's name, price, or image
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID  path      int                        true  "item ID"
// @Param        input   body      request.UpdateItemRequest  true  "item details"
// @Success      200     {object}  domain.Item
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [put]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateItemRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.Update(ctx.Request.Context(), sess.AccountID, itemID, input.Name, input.Price, input.ImageRef)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}
		if errors.Is(err, service.ErrEmptyItemName) || errors.Is(err, service.ErrNonPositivePrice) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleDeleteItem godoc
// @Summary      Delete an item and all its sponsorships
// @Tags         items
// @Produce      json
// @Param        itemID  path  int  true  "item ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	itemID, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), sess.AccountID, itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}
