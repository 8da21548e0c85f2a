package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sponsorapp/sponsor-api/docs"
	v1 "github.com/sponsorapp/sponsor-api/internal/api/handler/v1"
	"github.com/sponsorapp/sponsor-api/internal/api/middleware"
	"github.com/sponsorapp/sponsor-api/internal/config"
	"github.com/sponsorapp/sponsor-api/internal/pkg/secrets"
	"github.com/sponsorapp/sponsor-api/internal/repository"
	"github.com/sponsorapp/sponsor-api/internal/repository/dao"
	"github.com/sponsorapp/sponsor-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, box *secrets.Box) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db, box)
	itemHandler := s.initItemHandler(db)
	sponsorshipHandler := s.initSponsorshipHandler(db)
	s.MountHandlers(authHandler, itemHandler, sponsorshipHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB, box *secrets.Box) *v1.AuthHandler {
	accountDAO := dao.NewAccountDAO(db)
	repo := repository.NewAccountRepository(accountDAO, box)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	sponsorshipRepo := repository.NewSponsorshipRepository(dao.NewSponsorshipDAO(db))
	svc := service.NewItemService(itemRepo, sponsorshipRepo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initSponsorshipHandler(db *gorm.DB) *v1.SponsorshipHandler {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	sponsorshipRepo := repository.NewSponsorshipRepository(dao.NewSponsorshipDAO(db))
	svc := service.NewSponsorshipService(sponsorshipRepo, itemRepo)
	handler := v1.NewSponsorshipHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, itemHandler *v1.ItemHandler, sponsorshipHandler *v1.SponsorshipHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/passcode", authHandler.HandlePasscodeLogin)
		auth.POST("/auth/login", authHandler.HandleAdminLogin)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	// Read paths and pledging are open to any authenticated session.
	scoped := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		scoped.GET("/dashboard", itemHandler.HandleGetDashboard)
		scoped.GET("/items/:itemID/sponsorships", sponsorshipHandler.HandleListByItem)
		scoped.POST("/sponsorships", sponsorshipHandler.HandleCreateSponsorship)
	}

	// Registry and ledger mutations are admin-only.
	admin := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequireAdmin())
	{
		admin.POST("/items", itemHandler.HandleCreateItem)
		admin.PUT("/items/:itemID", itemHandler.HandleUpdateItem)
		admin.DELETE("/items/:itemID", itemHandler.HandleDeleteItem)
		admin.PUT("/sponsorships/:sponsorshipID", sponsorshipHandler.HandleUpdateSponsorship)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Sponsorship tracking API"
	docs.SwaggerInfo.Description = "Items, sponsorships, and funding status per admin account."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
