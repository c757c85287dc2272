package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"anoa.com/scholarshipapi/internal/config"
	"anoa.com/scholarshipapi/internal/entity"
	"anoa.com/scholarshipapi/internal/identity"
	"anoa.com/scholarshipapi/internal/middleware"
	"anoa.com/scholarshipapi/pkg/firebase"

	authHttp "anoa.com/scholarshipapi/internal/modules/auth/delivery/http"
	authRepo "anoa.com/scholarshipapi/internal/modules/auth/repository"
	authService "anoa.com/scholarshipapi/internal/modules/auth/service"

	studentHttp "anoa.com/scholarshipapi/internal/modules/student/delivery/http"
	studentRepo "anoa.com/scholarshipapi/internal/modules/student/repository"
	studentService "anoa.com/scholarshipapi/internal/modules/student/service"

	universityHttp "anoa.com/scholarshipapi/internal/modules/university/delivery/http"
	universityRepo "anoa.com/scholarshipapi/internal/modules/university/repository"
	universityService "anoa.com/scholarshipapi/internal/modules/university/service"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(cfg *config.Config, fb *firebase.App, redisClient *redis.Client) *Server {
	gateway := identity.NewFirebaseGateway(fb.Auth)

	userRepository := authRepo.NewUserRepository(fb.Firestore)
	authSvc := authService.NewAuthService(gateway, userRepository)
	authHandler := authHttp.NewAuthHandler(authSvc)

	profileRepository := studentRepo.NewProfileRepository(fb.Firestore)
	studentSvc := studentService.NewStudentService(profileRepository, userRepository)
	studentHandler := studentHttp.NewStudentHandler(studentSvc)

	universityRepository := universityRepo.NewUniversityRepository(fb.Firestore)
	universitySvc := universityService.NewUniversityService(universityRepository)
	universityHandler := universityHttp.NewUniversityHandler(universitySvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(gateway, userRepository)

	api := router.Group("/api")

	api.GET("/health", healthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register",
			middleware.RateLimit(redisClient, "register", cfg.RateLimitAuth),
			authHandler.Register)
		auth.POST("/login",
			middleware.RateLimit(redisClient, "login", cfg.RateLimitAuth),
			authHandler.Login)
		auth.POST("/resend-verification",
			middleware.RateLimit(redisClient, "resend-verification", cfg.RateLimitAuth),
			authHandler.ResendVerification)

		auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		auth.GET("/verify-status", authMiddleware.RequireAuth(), authHandler.VerifyStatus)
		auth.DELETE("/delete", authMiddleware.RequireAuth(), authHandler.DeleteAccount)
	}

	student := api.Group("/student")
	student.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(entity.RoleStudent))
	{
		student.PUT("/profile", studentHandler.SaveProfile)
		student.GET("/profile", studentHandler.GetProfile)
	}

	universities := api.Group("/universities")
	{
		universities.GET("", universityHandler.List)
		universities.GET("/:id", universityHandler.GetByID)
		universities.POST("", universityHandler.Create)
		universities.POST("/seed", universityHandler.Seed)
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
