package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/request"
	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/response"
	"github.com/sponsorapp/sponsor-api/internal/config"
	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/pkg/jwthelper"
	"github.com/sponsorapp/sponsor-api/internal/service"
)

type AuthService interface {
	LoginVisitor(ctx context.Context, passcode string) (domain.Account, error)
	LoginAdmin(ctx context.Context, username, password string) (domain.Account, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandlePasscodeLogin godoc
// @Summary      Authenticate a visitor by shared passcode
// @Tags         auth
// @Produce      json
// @Param        request   body      request.PasscodeLoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/passcode [post]
func (h *AuthHandler) HandlePasscodeLogin(ctx *gin.Context) {
	req := request.PasscodeLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	account, err := h.svc.LoginVisitor(ctx.Request.Context(), req.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandlePasscodeLogin -> h.svc.LoginVisitor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderLogin(ctx, account, domain.RoleVisitor)
}

// HandleAdminLogin godoc
// @Summary      Authenticate an admin by username and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.AdminLoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleAdminLogin(ctx *gin.Context) {
	req := request.AdminLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	account, err := h.svc.LoginAdmin(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials())

			return
		}

		err = fmt.Errorf("v1.HandleAdminLogin -> h.svc.LoginAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.renderLogin(ctx, account, domain.RoleAdmin)
}

func (h *AuthHandler) renderLogin(ctx *gin.Context, account domain.Account, role domain.Role) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), account.ID, role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.renderLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:       token,
		Role:        role,
		AccountID:   account.ID,
		DisplayName: account.DisplayName,
	})
}
