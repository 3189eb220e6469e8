package routes

import (
	"club-coordination-backend/internal/api/handlers"
	"club-coordination-backend/internal/api/middleware"
	"club-coordination-backend/internal/auth"
	"club-coordination-backend/internal/config"
	"club-coordination-backend/internal/repository"
	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the already-built components the router serves
type Dependencies struct {
	Config   *config.Config
	Services *service.Services
	Auth     *auth.AuthService
	// Store and Notifier back the health checks. Notifier may be nil.
	Store    repository.Pinger
	Notifier repository.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.Config))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Notifier)
	clubHandler := handlers.NewClubHandler(deps.Services.Clubs)
	eventHandler := handlers.NewEventHandler(deps.Services.Events)
	teamHandler := handlers.NewTeamHandler(deps.Services.Teams)
	userHandler := handlers.NewUserHandler(deps.Services.Users, deps.Services.Teams)
	authMiddleware := auth.NewAuthMiddleware(deps.Auth, deps.Services.Users)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token issuing is for local testing only; production tokens come from the campus identity provider
	if deps.Config.IsDevelopment() {
		authHandler := auth.NewAuthHandler(deps.Auth)
		router.POST("/api/auth/dev-token", authHandler.DevToken)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Caller routes
		users := v1.Group("/users/me")
		{
			users.GET("", userHandler.GetMe)
			users.GET("/join-requests", userHandler.ListMyJoinRequests)
		}

		// Club and membership routes
		clubs := v1.Group("/clubs")
		{
			clubs.POST("", clubHandler.CreateClub)
			clubs.GET("", clubHandler.ListClubs)
			clubs.GET("/:id", clubHandler.GetClub)
			clubs.POST("/:id/join", clubHandler.RequestJoin)
			clubs.DELETE("/:id/join", clubHandler.WithdrawJoin)
			clubs.GET("/:id/memberships", clubHandler.ListMemberships)
			clubs.GET("/:id/memberships/me", clubHandler.GetMyMembership)
			clubs.POST("/:id/memberships/:membershipId/approve", clubHandler.Approve)
			clubs.POST("/:id/memberships/:membershipId/reject", clubHandler.Reject)
			clubs.POST("/:id/leave", clubHandler.Leave)
			clubs.DELETE("/:id/members/:userId", clubHandler.Expel)
			clubs.PUT("/:id/members/:userId/role", clubHandler.UpdateRole)
			clubs.GET("/:id/events", eventHandler.ListClubEvents)
		}

		// Event routes
		events := v1.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/:id/teams", teamHandler.CreateTeam)
			events.GET("/:id/teams", teamHandler.ListEventTeams)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", teamHandler.Disband)
			teams.POST("/:id/leave", teamHandler.Leave)
			teams.POST("/:id/join-requests", teamHandler.RequestJoin)
			teams.GET("/:id/join-requests", teamHandler.ListJoinRequests)
			teams.POST("/:id/join-requests/:requestId/accept", teamHandler.AcceptJoinRequest)
			teams.POST("/:id/join-requests/:requestId/reject", teamHandler.RejectJoinRequest)
			teams.POST("/:id/messages", teamHandler.PostMessage)
			teams.GET("/:id/messages", teamHandler.ListMessages)
		}

		v1.DELETE("/join-requests/:requestId", teamHandler.WithdrawJoinRequest)
	}

	return router
}
