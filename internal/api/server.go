package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/streamheroes/stream-heroes-api/docs"
	v1 "github.com/streamheroes/stream-heroes-api/internal/api/handler/v1"
	"github.com/streamheroes/stream-heroes-api/internal/api/middleware"
	"github.com/streamheroes/stream-heroes-api/internal/config"
	"github.com/streamheroes/stream-heroes-api/internal/repository"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
	"github.com/streamheroes/stream-heroes-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	categoryHandler := s.initCategoryHandler(db, userSvc)
	donatorHandler := s.initDonatorHandler(db, userSvc)
	currentGameHandler := s.initCurrentGameHandler(db, userSvc)
	gameSessionHandler := s.initGameSessionHandler(db, userSvc)
	historyHandler := s.initDonationHistoryHandler(db, userSvc)
	analyticsHandler := s.initAnalyticsHandler(db, userSvc)

	s.MountHandlers(authHandler, userHandler, categoryHandler, donatorHandler,
		currentGameHandler, gameSessionHandler, historyHandler, analyticsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initCategoryHandler(db *gorm.DB, userSvc *service.UserService) *v1.CategoryHandler {
	repo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewCategoryService(repo)

	return v1.NewCategoryHandler(svc, userSvc)
}

func (s *Server) initDonatorHandler(db *gorm.DB, userSvc *service.UserService) *v1.DonatorHandler {
	repo := repository.NewDonatorRepository(dao.NewDonatorDAO(db))
	categories := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewDonatorService(repo, categories)

	return v1.NewDonatorHandler(svc, userSvc)
}

func (s *Server) initCurrentGameHandler(db *gorm.DB, userSvc *service.UserService) *v1.CurrentGameHandler {
	repo := repository.NewCurrentGameRepository(dao.NewCurrentGameDAO(db))
	donators := repository.NewDonatorRepository(dao.NewDonatorDAO(db))
	svc := service.NewCurrentGameService(repo, donators)

	return v1.NewCurrentGameHandler(svc, userSvc)
}

func (s *Server) initGameSessionHandler(db *gorm.DB, userSvc *service.UserService) *v1.GameSessionHandler {
	repo := repository.NewGameSessionRepository(dao.NewGameSessionDAO(db))
	svc := service.NewGameSessionService(repo)

	return v1.NewGameSessionHandler(svc, userSvc)
}

func (s *Server) initDonationHistoryHandler(db *gorm.DB, userSvc *service.UserService) *v1.DonationHistoryHandler {
	repo := repository.NewDonationHistoryRepository(dao.NewDonationHistoryDAO(db))
	svc := service.NewDonationHistoryService(repo)

	return v1.NewDonationHistoryHandler(svc, userSvc)
}

func (s *Server) initAnalyticsHandler(db *gorm.DB, userSvc *service.UserService) *v1.AnalyticsHandler {
	history := repository.NewDonationHistoryRepository(dao.NewDonationHistoryDAO(db))
	donators := repository.NewDonatorRepository(dao.NewDonatorDAO(db))
	svc := service.NewAnalyticsService(history, donators)

	return v1.NewAnalyticsHandler(svc, userSvc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	categoryHandler *v1.CategoryHandler,
	donatorHandler *v1.DonatorHandler,
	currentGameHandler *v1.CurrentGameHandler,
	gameSessionHandler *v1.GameSessionHandler,
	historyHandler *v1.DonationHistoryHandler,
	analyticsHandler *v1.AnalyticsHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/users/:userID", userHandler.HandleGetUser)

		authenticated.GET("/categories", categoryHandler.HandleListCategories)
		authenticated.POST("/categories", categoryHandler.HandleCreateCategory)
		authenticated.GET("/categories/:categoryID", categoryHandler.HandleGetCategory)
		authenticated.PUT("/categories/:categoryID", categoryHandler.HandleUpdateCategory)
		authenticated.DELETE("/categories/:categoryID", categoryHandler.HandleDeleteCategory)

		authenticated.GET("/donators", donatorHandler.HandleListDonators)
		authenticated.POST("/donators", donatorHandler.HandleCreateDonator)
		authenticated.GET("/donators/range", donatorHandler.HandleGetDonationsByDateRange)
		authenticated.GET("/donators/:donatorID", donatorHandler.HandleGetDonator)
		authenticated.PUT("/donators/:donatorID", donatorHandler.HandleUpdateDonator)
		authenticated.DELETE("/donators/:donatorID", donatorHandler.HandleDeleteDonator)
		authenticated.POST("/donators/:donatorID/games", donatorHandler.HandleAddGames)

		authenticated.GET("/current-game", currentGameHandler.HandleListSlots)
		authenticated.POST("/current-game", currentGameHandler.HandleAssignSlot)
		authenticated.DELETE("/current-game", currentGameHandler.HandleClearSlots)
		authenticated.DELETE("/current-game/:slotID", currentGameHandler.HandleUnassignSlot)

		authenticated.POST("/game-sessions", gameSessionHandler.HandleRecordSession)
		authenticated.GET("/game-sessions/recent", gameSessionHandler.HandleGetRecentSessions)

		authenticated.GET("/donations-history", historyHandler.HandleGetDonationHistory)

		authenticated.GET("/analytics/daily", analyticsHandler.HandleGetDailyTotals)
		authenticated.GET("/analytics/categories", analyticsHandler.HandleGetCategoryBreakdown)
		authenticated.GET("/analytics/leaderboard", analyticsHandler.HandleGetLeaderboard)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stream Heroes API"
	docs.SwaggerInfo.Description = "Donation-tracking dashboard API for livestreamers."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
