package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sponsorapp/sponsor-api/internal/api/handler/v1/response"
	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyAccountID and ContextKeyRole carry the session scope set by
	// VerifyJWT into handlers.
	ContextKeyAccountID = "account_id"
	ContextKeyRole      = "role"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT resolves the bearer token to an account scope and role.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired token"))
			return
		}

		ctx.Set(ContextKeyAccountID, claims.AccountID)
		ctx.Set(ContextKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin gates mutations on the admin role. Runs after VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := ctx.Get(ContextKeyRole)
		if !ok || role != domain.RoleAdmin {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin role required")))
			return
		}

		ctx.Next()
	}
}
