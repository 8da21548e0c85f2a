package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/response"
	"github.com/sponsorapp/sponsor-api/internal/api/middleware"
	"github.com/sponsorapp/sponsor-api/internal/domain"
)

// session is the scope the authenticator resolved for this request.
type session struct {
	AccountID uint
	Role      domain.Role
}

func sessionFromContext(ctx *gin.Context) (session, *response.Err) {
	accountID, ok := ctx.Get(middleware.ContextKeyAccountID)
	if !ok {
		return session{}, response.ErrUnauthorized("missing session")
	}

	role, ok := ctx.Get(middleware.ContextKeyRole)
	if !ok {
		return session{}, response.ErrUnauthorized("missing session")
	}

	id, idOK := accountID.(uint)
	r, roleOK := role.(domain.Role)
	if !idOK || !roleOK || !r.Valid() {
		return session{}, response.ErrUnauthorized("invalid session")
	}

	return session{AccountID: id, Role: r}, nil
}
