package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "quickdesk/internal/application/admin/usecases"
	categoryusecases "quickdesk/internal/application/category/usecases"
	rolerequestusecases "quickdesk/internal/application/rolerequest/usecases"
	ticketusecases "quickdesk/internal/application/ticket/usecases"
	userusecases "quickdesk/internal/application/user/usecases"
	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/cache"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/email"
	"quickdesk/internal/infrastructure/ratelimit"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/interfaces/http/routes"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/services/content"
	"quickdesk/internal/shared/utils"
)

// Router wires the HTTP surface: middleware, handlers and routes.
type Router struct {
	engine             *gin.Engine
	cfg                *config.Config
	logger             logger.Interface
	authHandler        *handlers.AuthHandler
	ticketHandler      *handlers.TicketHandler
	categoryHandler    *handlers.CategoryHandler
	roleRequestHandler *handlers.RoleRequestHandler
	adminHandler       *handlers.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	permissions        *middleware.PermissionMiddleware
	apiLimiter         *middleware.RateLimiter
	authLimiter        *middleware.RateLimiter
	responseCache      *middleware.ResponseCacheMiddleware
}

// jwtServiceAdapter narrows the infrastructure JWT service to the token
// interface the user use cases depend on.
type jwtServiceAdapter struct {
	svc *auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.svc.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*userusecases.TokenPair, error) {
	pair, err := a.svc.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return convertTokenPair(pair), nil
}

func convertTokenPair(pair *auth.TokenPair) *userusecases.TokenPair {
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// NewRouter builds the engine and all HTTP dependencies. The redis client may
// be nil, in which case rate limiting and response caching are skipped.
func NewRouter(
	database *gorm.DB,
	redisClient *redis.Client,
	enforcer middleware.PermissionChecker,
	publisher events.EventPublisher,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	roleRequestRepo := repository.NewRoleRequestRepository(database)

	txManager := db.NewTransactionManager(database)
	contentSvc := content.NewService()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{svc: jwtSvc}

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, jwtService, publisher, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	refreshUC := userusecases.NewRefreshTokenUseCase(jwtService, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, categoryRepo, publisher, contentSvc, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, categoryRepo, publisher, contentSvc, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, txManager, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, publisher, log)
	voteTicketUC := ticketusecases.NewVoteTicketUseCase(ticketRepo, txManager, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, publisher, contentSvc, log)
	updateCommentUC := ticketusecases.NewUpdateCommentUseCase(commentRepo, contentSvc, log)
	deleteCommentUC := ticketusecases.NewDeleteCommentUseCase(commentRepo, log)
	voteCommentUC := ticketusecases.NewVoteCommentUseCase(ticketRepo, commentRepo, txManager, log)

	listCategoriesUC := categoryusecases.NewListCategoriesUseCase(categoryRepo, log)
	getCategoryUC := categoryusecases.NewGetCategoryUseCase(categoryRepo, log)
	createCategoryUC := categoryusecases.NewCreateCategoryUseCase(categoryRepo, contentSvc, log)
	updateCategoryUC := categoryusecases.NewUpdateCategoryUseCase(categoryRepo, contentSvc, log)
	deleteCategoryUC := categoryusecases.NewDeleteCategoryUseCase(categoryRepo, ticketRepo, userRepo, log)
	getUserInterestUC := categoryusecases.NewGetUserInterestUseCase(userRepo, categoryRepo, log)
	updateUserInterestUC := categoryusecases.NewUpdateUserInterestUseCase(userRepo, categoryRepo, log)

	createRoleRequestUC := rolerequestusecases.NewCreateRoleRequestUseCase(roleRequestRepo, userRepo, log)
	reviewRoleRequestUC := rolerequestusecases.NewReviewRoleRequestUseCase(roleRequestRepo, userRepo, txManager, publisher, log)
	listRoleRequestsUC := rolerequestusecases.NewListRoleRequestsUseCase(roleRequestRepo, log)
	listMyRoleRequestsUC := rolerequestusecases.NewListMyRoleRequestsUseCase(roleRequestRepo, log)
	deleteRoleRequestUC := rolerequestusecases.NewDeleteRoleRequestUseCase(roleRequestRepo, log)

	dashboardUC := adminusecases.NewGetDashboardUseCase(userRepo, ticketRepo, roleRequestRepo, log)
	listUsersUC := adminusecases.NewListUsersUseCase(userRepo, log)
	deleteUserUC := adminusecases.NewDeleteUserUseCase(userRepo, log)

	r := &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, refreshUC,
			getProfileUC, updateProfileUC, changePasswordUC, log,
		),
		ticketHandler: handlers.NewTicketHandler(
			createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC,
			assignTicketUC, voteTicketUC,
			addCommentUC, updateCommentUC, deleteCommentUC, voteCommentUC,
			contentSvc, log,
		),
		categoryHandler: handlers.NewCategoryHandler(
			listCategoriesUC, getCategoryUC, createCategoryUC, updateCategoryUC, deleteCategoryUC,
			getUserInterestUC, updateUserInterestUC, log,
		),
		roleRequestHandler: handlers.NewRoleRequestHandler(
			createRoleRequestUC, reviewRoleRequestUC, listRoleRequestsUC, listMyRoleRequestsUC, deleteRoleRequestUC, log,
		),
		adminHandler:   handlers.NewAdminHandler(dashboardUC, listUsersUC, deleteUserUC, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		permissions:    middleware.NewPermissionMiddleware(enforcer, log),
	}

	if redisClient != nil {
		if cfg.RateLimit.Enabled {
			limiter := ratelimit.NewRedisRateLimiter(redisClient)
			r.apiLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.APIPerMinute, "api", log)
			r.authLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.AuthPerMinute, "auth", log)
		}
		if cfg.Cache.Enabled {
			responseCache := cache.NewResponseCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
			r.responseCache = middleware.NewResponseCacheMiddleware(responseCache, log)
		}
	}

	return r
}

// NewSMTPServiceFromConfig builds the outbound email service, falling back to
// a no-op sender when email is disabled.
func NewSMTPServiceFromConfig(cfg *config.Config) email.Service {
	if !cfg.Email.Enabled {
		return email.NewNoopEmailService()
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.RequestLogger(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", gin.H{"status": "healthy"})
	})

	api := r.engine.Group("/api")
	if r.apiLimiter != nil {
		api.Use(r.apiLimiter.Limit())
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.authLimiter,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		Permissions:    r.permissions,
		Cache:          r.responseCache,
	})
	routes.SetupCategoryRoutes(api, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
		Permissions:     r.permissions,
		Cache:           r.responseCache,
	})
	routes.SetupRoleRequestRoutes(api, &routes.RoleRequestRouteConfig{
		RoleRequestHandler: r.roleRequestHandler,
		AuthMiddleware:     r.authMiddleware,
		Permissions:        r.permissions,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:       r.adminHandler,
		TicketHandler:      r.ticketHandler,
		RoleRequestHandler: r.roleRequestHandler,
		AuthMiddleware:     r.authMiddleware,
		Permissions:        r.permissions,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
