package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"newshub-api/checkout"
	"newshub-api/config"
	"newshub-api/handlers"
	"newshub-api/middleware"
	"newshub-api/repositories"
	"newshub-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize checkout provider client
	provider := checkout.NewClient(cfg.Checkout.BaseURL, cfg.Checkout.APIKey)

	// Initialize services
	authService := services.NewAuthService()
	subscriptionService := services.NewSubscriptionService(userRepo)
	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo, userRepo, subscriptionService)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo)
	publisherService := services.NewPublisherService(publisherRepo)
	paymentService := services.NewPaymentService(
		planRepo, paymentRepo, userRepo, provider,
		cfg.Checkout.SuccessURL, cfg.Checkout.CancelURL,
		logger.With(slog.String("component", "payments")),
	)
	tagService := services.NewTagService(tagRepo)
	statsService := services.NewStatsService(statsRepo, userRepo, publisherRepo, paymentRepo, articleRepo, commentRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, subscriptionService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)
	tagHandler := handlers.NewTagHandler(tagService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	statsHandler := handlers.NewStatsHandler(statsService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	router.POST("/auth/login", authHandler.Login)
	router.POST("/users", userHandler.Register)
	router.GET("/articles", articleHandler.GetArticles)
	router.GET("/articles/trending", articleHandler.GetTrending)
	router.GET("/articles/user/:email", articleHandler.GetAuthorArticles)
	router.POST("/articles/:id/view", articleHandler.RecordView)
	router.GET("/articles/:id/comments", commentHandler.GetComments)
	router.GET("/publishers", publisherHandler.GetPublishers)
	router.GET("/tags", tagHandler.GetTags)
	router.GET("/plans", paymentHandler.GetPlans)
	router.GET("/stats", statsHandler.PublicStats)
	router.POST("/contact", contactHandler.CreateMessage)

	// Authenticated routes
	authed := router.Group("/")
	authed.Use(middleware.Auth())
	{
		authed.PATCH("/users/profile", userHandler.UpdateProfile)
		authed.GET("/users/admin/:email", userHandler.IsAdmin)
		authed.GET("/users/subscription/:email", userHandler.SubscriptionStatus)

		authed.POST("/articles", articleHandler.CreateArticle)
		authed.GET("/articles/:id", articleHandler.GetArticle)
		authed.PATCH("/articles/:id", articleHandler.UpdateArticle)
		authed.DELETE("/articles/:id", articleHandler.DeleteArticle)
		authed.GET("/articles/my-articles/:email", articleHandler.GetMyArticles)
		authed.POST("/articles/:id/comments", commentHandler.AddComment)

		authed.POST("/create-payment-intent", paymentHandler.CreateIntent)
		authed.GET("/payment/success", paymentHandler.PaymentSuccess)
		authed.GET("/user-stats", statsHandler.UserStats)

		// Premium content requires a valid subscription
		premium := authed.Group("/")
		premium.Use(middleware.RequireSubscription(subscriptionService))
		{
			premium.GET("/articles/premium", articleHandler.GetPremiumArticles)
		}

		// Admin-only routes
		admin := authed.Group("/")
		admin.Use(middleware.RequireAdmin(userRepo))
		{
			admin.GET("/users", userHandler.GetUsers)
			admin.PATCH("/users/make-admin/:id", userHandler.MakeAdmin)
			admin.PATCH("/articles/:id/premium", articleHandler.SetPremium)
			admin.PATCH("/admin/articles/:id", articleHandler.UpdateStatus)
			admin.POST("/publishers", publisherHandler.CreatePublisher)
			admin.GET("/admin/stats", statsHandler.AdminStats)
			admin.GET("/messages", contactHandler.GetMessages)
			admin.PATCH("/messages/:id", contactHandler.UpdateStatus)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
