package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"learnhub/be/internal/auth"
	"learnhub/be/internal/cache"
	"learnhub/be/internal/config"
	"learnhub/be/internal/course"
	LDb "learnhub/be/internal/db"
	"learnhub/be/internal/provider"
	"learnhub/be/internal/resource"
	"learnhub/be/internal/user"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml", "config/.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize router
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Initialize database
	db, err := LDb.NewLDb("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Search aggregation
	searchCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Cache.TTL)
	thumbs := provider.NewSerpApiResolver(cfg.SerpApi.APIKey)

	youtubeProvider, err := provider.NewYouTubeProvider(context.Background(), cfg.YouTube.APIKey)
	if err != nil {
		log.Fatalf("Failed to init YouTube provider: %v", err)
	}

	providers := []resource.Provider{
		provider.NewCourseraProvider(thumbs),
		provider.NewDevtoProvider(),
		youtubeProvider,
		provider.JobProvider{},
		provider.InternshipProvider{},
	}

	resourceService := resource.NewServiceImpl(providers, searchCache, cfg.Cache.ProviderTimeout)
	resourceController := resource.NewControllerImpl(resourceService)
	resourceController.RegisterRoutes(router)

	// Saved courses
	courseRepository := course.NewRepositoryImpl(db)
	courseService := course.NewServiceImpl(courseRepository)
	courseController := course.NewControllerImpl(courseService)
	courseController.RegisterRoutes(router)

	// User management
	userRepository := user.NewRepositoryImpl(db)
	userService := user.NewServiceImpl(userRepository)
	userController := user.NewControllerImpl(userService)
	userController.RegisterRoutes(router)

	// Auth management
	authService := auth.NewServiceImpl(userService, cfg.JWT)
	authController := auth.NewControllerImpl(authService)
	authController.RegisterRoutes(router)

	// Start server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
