package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/intellcap/association-api/docs"
	v1 "github.com/intellcap/association-api/internal/api/handler/v1"
	"github.com/intellcap/association-api/internal/api/middleware"
	"github.com/intellcap/association-api/internal/config"
	"github.com/intellcap/association-api/internal/pkg/uploads"
	"github.com/intellcap/association-api/internal/repository"
	"github.com/intellcap/association-api/internal/repository/dao"
	"github.com/intellcap/association-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	projectRepo := repository.NewProjectRepository(dao.NewProjectDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	donationRepo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	spaceRequestRepo := repository.NewSpaceRequestRepository(dao.NewSpaceRequestDAO(db))
	contactRepo := repository.NewContactRepository(dao.NewContactDAO(db))
	galleryRepo := repository.NewGalleryRepository(dao.NewGalleryDAO(db))
	settingRepo := repository.NewSettingRepository(dao.NewSettingDAO(db))

	authSvc := service.NewAuthService(userRepo, conf.API.AdminSetupCode)
	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo)
	activitySvc := service.NewActivityService(activityRepo)
	donationSvc := service.NewDonationService(donationRepo)
	spaceRequestSvc := service.NewSpaceRequestService(spaceRequestRepo)
	contactSvc := service.NewContactService(contactRepo)
	gallerySvc := service.NewGalleryService(galleryRepo)
	settingSvc := service.NewSettingService(settingRepo)
	statsSvc := service.NewStatsService(projectRepo, activityRepo, userRepo, donationRepo)

	storage, err := uploads.NewStorage(conf.API.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("uploads.NewStorage -> %w", err)
	}

	signingKey := []byte(conf.API.JWTSigningKey)

	s.MountHandlers(
		signingKey,
		userSvc,
		v1.NewAuthHandler(authSvc, userSvc, signingKey),
		v1.NewUserHandler(userSvc, activitySvc, statsSvc),
		v1.NewProjectHandler(projectSvc),
		v1.NewActivityHandler(activitySvc),
		v1.NewDonationHandler(donationSvc),
		v1.NewSpaceRequestHandler(spaceRequestSvc),
		v1.NewContactHandler(contactSvc),
		v1.NewGalleryHandler(gallerySvc),
		v1.NewSettingHandler(settingSvc),
		v1.NewStatsHandler(statsSvc),
		v1.NewUploadHandler(storage, conf.API.BaseURL),
	)

	return s, nil
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	signingKey []byte,
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	projectHandler *v1.ProjectHandler,
	activityHandler *v1.ActivityHandler,
	donationHandler *v1.DonationHandler,
	spaceRequestHandler *v1.SpaceRequestHandler,
	contactHandler *v1.ContactHandler,
	galleryHandler *v1.GalleryHandler,
	settingHandler *v1.SettingHandler,
	statsHandler *v1.StatsHandler,
	uploadHandler *v1.UploadHandler,
) {
	const basePath = "/api"

	verifyJWT := middleware.NewAuthenticator(signingKey).VerifyJWT()
	requireAdmin := middleware.RequireAdmin(userSvc)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/register-admin", authHandler.HandleRegisterAdmin)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/projects", projectHandler.HandleListProjects)
		public.GET("/projects/:id", projectHandler.HandleGetProject)
		public.GET("/activities", activityHandler.HandleListActivities)
		public.GET("/activities/:id", activityHandler.HandleGetActivity)
		public.GET("/gallery", galleryHandler.HandleListItems)
		public.GET("/settings/:key", settingHandler.HandleGetSetting)
		public.GET("/stats", statsHandler.HandleGetSiteStats)

		public.POST("/donations", donationHandler.HandleCreateDonation)
		public.POST("/space-requests", spaceRequestHandler.HandleCreateRequest)
		public.POST("/contacts", contactHandler.HandleCreateContact)
	}

	authed := s.Router.Group(basePath, verifyJWT)
	{
		authed.GET("/auth/me", authHandler.HandleGetMe)
		authed.PUT("/auth/profile", authHandler.HandleUpdateProfile)
		authed.PUT("/auth/password", authHandler.HandleChangePassword)

		authed.POST("/projects/:id/register", projectHandler.HandleRegister)
		authed.POST("/activities/:id/register", activityHandler.HandleRegister)
		authed.DELETE("/activities/:id/register", activityHandler.HandleCancelRegistration)

		authed.GET("/user/participations", userHandler.HandleGetParticipations)
		authed.GET("/user/stats", userHandler.HandleGetUserStats)

		authed.POST("/upload", uploadHandler.HandleUpload)
	}

	admin := s.Router.Group(basePath, verifyJWT, requireAdmin)
	{
		admin.POST("/projects", projectHandler.HandleCreateProject)
		admin.PUT("/projects/:id", projectHandler.HandleUpdateProject)
		admin.DELETE("/projects/:id", projectHandler.HandleDeleteProject)

		admin.POST("/activities", activityHandler.HandleCreateActivity)
		admin.PUT("/activities/:id", activityHandler.HandleUpdateActivity)
		admin.DELETE("/activities/:id", activityHandler.HandleDeleteActivity)

		admin.GET("/donations", donationHandler.HandleListDonations)
		admin.GET("/space-requests", spaceRequestHandler.HandleListRequests)
		admin.PUT("/space-requests/:id", spaceRequestHandler.HandleResolveRequest)
		admin.GET("/contacts", contactHandler.HandleListContacts)

		admin.POST("/gallery", galleryHandler.HandleAddItem)
		admin.DELETE("/gallery/:id", galleryHandler.HandleDeleteItem)

		admin.GET("/settings", settingHandler.HandleListSettings)
		admin.PUT("/settings/:key", settingHandler.HandleUpsertSetting)

		admin.GET("/admin/users", userHandler.HandleListUsers)
		admin.GET("/admin/users/:id", userHandler.HandleGetUser)
		admin.PUT("/admin/users/:id", userHandler.HandleUpdateUser)
		admin.POST("/admin/users/:id/promote", userHandler.HandlePromoteUser)
		admin.DELETE("/admin/users/:id", userHandler.HandleDeleteUser)
	}

	// Uploaded images are served straight from disk.
	s.Router.Static("/uploads", s.Config.API.UploadDir)

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Association API"
	docs.SwaggerInfo.Description = "REST API for a nonprofit association website."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
