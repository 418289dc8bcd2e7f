package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/quizroom-api/internal/config"
	"github.com/yourusername/quizroom-api/internal/handler"
	"github.com/yourusername/quizroom-api/internal/middleware"
	pgRepo "github.com/yourusername/quizroom-api/internal/repository/postgres"
	"github.com/yourusername/quizroom-api/internal/service"
	"github.com/yourusername/quizroom-api/pkg/auth"
	"github.com/yourusername/quizroom-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	submissionRepo := pgRepo.NewSubmissionRepo(db)

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	quizService := service.NewQuizService(quizRepo)
	submissionService := service.NewSubmissionService(submissionRepo, quizRepo)
	statsService := service.NewStatsService(userRepo, quizRepo, submissionRepo)

	// Создаем администратора по умолчанию, если его еще нет.
	// Конкурентный запуск нескольких инстансов разруливается уникальным
	// индексом на роль admin в базе
	if err := authService.EnsureDefaultAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Printf("Failed to ensure default admin: %v", err)
		os.Exit(1)
	}

	// Регистрируем дополнительные правила валидации для binding-а
	if err := handler.RegisterCustomValidations(); err != nil {
		log.Printf("Failed to register custom validations: %v", err)
		os.Exit(1)
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Rate limiter для auth-эндпоинтов включается только при настроенном Redis.
	// Без Redis сервис работает, но без защиты от brute-force
	var authRateLimit gin.HandlerFunc
	if cfg.RedisConfigured() {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		rateLimiter := middleware.NewRateLimiter(redisClient)
		authRateLimit = rateLimiter.Limit(middleware.StrictAuthRateLimitConfig())
	} else {
		log.Println("Redis не настроен, rate limiting для auth-эндпоинтов отключен")
		authRateLimit = func(c *gin.Context) { c.Next() }
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам (защита от IP spoofing)
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Статус сервиса (для любого аутентифицированного пользователя)
		api.GET("/status", authMiddleware.RequireAuth(), statsHandler.SystemStatus)

		// Аутентификация
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authRateLimit, authHandler.Register)
			authGroup.POST("/login", authRateLimit, authHandler.Login)
		}

		// Викторины
		quizzes := api.Group("/quizzes")
		quizzes.Use(authMiddleware.RequireAuth())
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.POST("", authMiddleware.AdminOnly(), quizHandler.CreateQuiz)

			// Группа маршрутов, требующих quizID.
			// Формат идентификатора проверяется до какого-либо обращения к хранилищу
			quizWithID := quizzes.Group("/:id")
			quizWithID.Use(middleware.ExtractObjectIDParam("id", "quizID"))
			{
				quizWithID.GET("", quizHandler.GetQuiz)
				quizWithID.POST("/submit", submissionHandler.SubmitQuiz)

				// Маршруты для администраторов
				adminQuizzes := quizWithID.Group("")
				adminQuizzes.Use(authMiddleware.AdminOnly())
				{
					adminQuizzes.PUT("", quizHandler.UpdateQuiz)
					adminQuizzes.DELETE("", quizHandler.DeleteQuiz)
				}
			}
		}

		// Попытки текущего пользователя
		api.GET("/my-submissions", authMiddleware.RequireAuth(), submissionHandler.ListMySubmissions)

		// Отчёты (только для администраторов)
		adminReports := api.Group("")
		adminReports.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			adminReports.GET("/submissions", submissionHandler.ListSubmissions)
			adminReports.GET("/submissions/export", submissionHandler.ExportSubmissions)
			adminReports.GET("/admin/stats", statsHandler.AdminStats)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
