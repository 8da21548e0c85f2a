package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/request"
	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/response"
	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/service"
)

type SponsorshipService interface {
	Create(ctx context.Context, accountID, itemID uint, sponsorName string, amount float64) (domain.Sponsorship, error)
	Update(ctx context.Context, accountID, id uint, sponsorName string, amount float64) (domain.Sponsorship, error)
	ListByItem(ctx context.Context, accountID, itemID uint) ([]domain.Sponsorship, error)
}

type SponsorshipHandler struct {
	svc SponsorshipService
}

func NewSponsorshipHandler(svc SponsorshipService) *SponsorshipHandler {
	return &SponsorshipHandler{
		svc: svc,
	}
}

// HandleCreateSponsorship godoc
// @Summary      Pledge an amount toward an item
// @Description  Rejects pledges exceeding the item's remaining balance. A successful pledge returns a one-shot thank-you acknowledgment.
// @Tags         sponsorships
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateSponsorshipRequest  true  "pledge details"
// @Success      201    {object}  response.SponsorshipResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sponsorships [post]
// @Security BearerAuth
func (h *SponsorshipHandler) HandleCreateSponsorship(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateSponsorshipRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sponsorship, err := h.svc.Create(ctx.Request.Context(), sess.AccountID, input.ItemID, input.SponsorName, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrAmountExceedsRemaining):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		case errors.Is(err, service.ErrEmptySponsorName), errors.Is(err, service.ErrNonPositiveAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateSponsorship -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSponsorshipCreated(sponsorship))
}

// HandleUpdateSponsorship godoc
// @Summary      Correct a pledge's sponsor name or amount
// @Tags         sponsorships
// @Accept       json
// @Produce      json
// @Param        sponsorshipID  path      int                               true  "sponsorship ID"
// @Param        input          body      request.UpdateSponsorshipRequest  true  "pledge details"
// @Success      200            {object}  domain.Sponsorship
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /sponsorships/{sponsorshipID} [put]
// @Security BearerAuth
func (h *SponsorshipHandler) HandleUpdateSponsorship(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sponsorshipID, err := parseIDParam(ctx, "sponsorshipID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateSponsorshipRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sponsorship, err := h.svc.Update(ctx.Request.Context(), sess.AccountID, sponsorshipID, input.SponsorName, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSponsorshipNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrEmptySponsorName), errors.Is(err, service.ErrNonPositiveAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateSponsorship -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, sponsorship)
}

// HandleListByItem godoc
// @Summary      List an item's pledges in insertion order
// @Tags         sponsorships
// @Produce      json
// @Param        itemID  path      int  true  "item ID"
// @Success      200     {array}   domain.Sponsorship
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID}/sponsorships [get]
// @Security BearerAuth
func (h *SponsorshipHandler) HandleListByItem(ctx *gin.Context) {
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

	sponsorships, err := h.svc.ListByItem(ctx.Request.Context(), sess.AccountID, itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))
			return
		}

		err = fmt.Errorf("v1.HandleListByItem -> h.svc.ListByItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sponsorships)
}
