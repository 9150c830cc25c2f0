package routes

import (
	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/handlers"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/config"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/realtime"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/repository"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The redis
// client may be nil when running against an in-memory relay (tests).
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, relay realtime.Relay, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Timeout(cfg.RequestTimeout()))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewGroupMemberRepository(db)
	messageRepo := repository.NewGroupMessageRepository(db)
	readRepo := repository.NewGroupReadRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	slotRepo := repository.NewTeamSlotRepository(db)

	// Initialize services
	groupService := service.NewGroupService(groupRepo, memberRepo, validator)
	messageService := service.NewMessageService(messageRepo, groupRepo, memberRepo, relay, validator)
	unreadService := service.NewUnreadService(readRepo, memberRepo)
	teamService := service.NewTeamService(teamRepo, slotRepo, groupRepo, memberRepo, relay, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	groupHandler := handlers.NewGroupHandler(groupService)
	messageHandler := handlers.NewMessageHandler(messageService)
	unreadHandler := handlers.NewUnreadHandler(unreadService)
	teamHandler := handlers.NewTeamHandler(teamService)
	streamHandler := handlers.NewStreamHandler(relay, groupService, messageService, unreadService, teamService, cfg)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Realtime stream; authenticates via token query parameter because
	// browsers cannot set headers on websocket upgrades
	router.GET("/ws", streamHandler.Stream)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg))
	{
		// Group and membership routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.ListMyGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id/members", groupHandler.GetMembers)
			groups.POST("/:id/members", groupHandler.AddMembers)
			groups.DELETE("/:id/members/:userId", groupHandler.RemoveMember)

			// Conversation routes
			groups.GET("/:id/messages", messageHandler.ListMessages)
			groups.POST("/:id/messages", messageHandler.SendMessage)
			groups.POST("/:id/read", unreadHandler.MarkRead)

			// Team routes scoped to a group
			groups.GET("/:id/team", teamHandler.GetTeam)
			groups.POST("/:id/team", teamHandler.CreateTeam)
		}

		// Unread counters across all of the user's groups
		v1.GET("/unread", unreadHandler.UnreadCounts)

		// Team and slot routes
		teams := v1.Group("/teams")
		{
			teams.PUT("/:id/formation", teamHandler.SetFormation)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}
		v1.PUT("/slots/:id", teamHandler.AssignSlot)

		// Formation catalog
		v1.GET("/formations/:count", teamHandler.ListFormations)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
