package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/config"
	"github.com/mentorlink/mentorship-api/internal/constants"
	"github.com/mentorlink/mentorship-api/internal/database"
	"github.com/mentorlink/mentorship-api/internal/handlers"
	"github.com/mentorlink/mentorship-api/internal/middleware"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"github.com/mentorlink/mentorship-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed skill and job-title catalogs
	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed catalogs: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	mentorshipRepo := repository.NewMentorshipRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, catalogRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	mentorshipService := services.NewMentorshipService(mentorshipRepo, userRepo)
	recommendationService := services.NewRecommendationService(userRepo, aiService)
	groupService := services.NewGroupService(groupRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipService, recommendationService)
	groupHandler := handlers.NewGroupHandler(groupService)

	// Periodically complete mentorships whose end date has passed
	go func() {
		ticker := time.NewTicker(constants.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			completed, err := mentorshipService.CheckAndUpdateMentorshipStatus()
			if err != nil {
				log.Printf("Failed to complete expired mentorships: %v", err)
				continue
			}
			if completed > 0 {
				log.Printf("Completed %d expired mentorships", completed)
			}
		}
	}()

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Mentorship API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(cfg.JWTSecret), authHandler.GetCurrentUser)
		}

		// Catalog routes (public)
		catalog := api.Group("/catalog")
		{
			catalog.GET("/tech-skills", catalogHandler.GetTechSkills)
			catalog.GET("/job-titles", catalogHandler.GetJobTitles)
		}

		// Mentorship routes
		mentorship := api.Group("/mentorship")
		{
			mentorship.GET("/mentors", mentorshipHandler.GetAllMentors)

			authed := mentorship.Group("")
			authed.Use(middleware.RequireAuth(cfg.JWTSecret))
			{
				authed.GET("/recommendations", middleware.RequireRole(models.RoleStudent), mentorshipHandler.GetRecommendations)
				authed.POST("/request", middleware.RequireRole(models.RoleStudent), mentorshipHandler.RequestMentorship)
				authed.GET("/current", mentorshipHandler.GetCurrentMentorships)
				// /pending and /requests are the same role-aware view:
				// incoming requests for mentors, outgoing for students
				authed.GET("/pending", mentorshipHandler.GetPendingRequests)
				authed.GET("/requests", mentorshipHandler.GetPendingRequests)
				authed.POST("/:id/respond", middleware.RequireRole(models.RoleMentor), mentorshipHandler.RespondToRequest)
				authed.POST("/:id/cancel", mentorshipHandler.Cancel)
				authed.POST("/:id/complete", mentorshipHandler.Complete)
			}
		}

		// Group routes (protected)
		groups := api.Group("/groups")
		groups.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/my", groupHandler.GetMyGroups)
			groups.GET("/:id", middleware.RequireGroupAccess(), groupHandler.GetGroup)
			groups.POST("/:id/join", middleware.RequireGroupAccess(), groupHandler.JoinGroup)
			groups.POST("/:id/leave", middleware.RequireGroupAccess(), groupHandler.LeaveGroup)
			groups.PUT("/:id/members/:user_id", middleware.RequireGroupAccess(), middleware.RequireGroupCreator(), groupHandler.RespondToJoinRequest)
			groups.DELETE("/:id", middleware.RequireGroupAccess(), middleware.RequireGroupCreator(), groupHandler.DeleteGroup)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
