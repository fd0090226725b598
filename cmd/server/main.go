package main

import (
	"log"

	"github.com/KyleAMathews/group-question-game/internal/config"
	"github.com/KyleAMathews/group-question-game/internal/database"
	"github.com/KyleAMathews/group-question-game/internal/handlers"
	"github.com/KyleAMathews/group-question-game/internal/images"
	"github.com/KyleAMathews/group-question-game/internal/middleware"
	"github.com/KyleAMathews/group-question-game/internal/services"
	"github.com/KyleAMathews/group-question-game/internal/ws"

	_ "github.com/KyleAMathews/group-question-game/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Group Question Game API
// @version         1.0
// @description     API for hosting live multiple-choice trivia sessions with a shared screen and player devices
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	bankService := services.NewBankService(db, images.NewNormalizer())
	sessionService := services.NewSessionService(db)
	playerService := services.NewPlayerService(db)
	answerService := services.NewAnswerService(db)

	if err := authService.SeedAdmins(cfg.AdminUsers); err != nil {
		log.Fatalf("failed to seed admins: %v", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	bankHandler := handlers.NewBankHandler(bankService)
	questionHandler := handlers.NewQuestionHandler(bankService)
	sessionHandler := handlers.NewSessionHandler(sessionService, hub, cfg)
	playHandler := handlers.NewPlayHandler(sessionService, playerService, answerService, hub)
	wsHandler := handlers.NewWSHandler(hub, sessionService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/session/:id", wsHandler.HandleWebSocket)

	adminOnly := middleware.AdminAuth(authService)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		banks := api.Group("/banks")
		banks.Use(adminOnly)
		{
			banks.GET("", bankHandler.ListBanks)
			banks.POST("", bankHandler.CreateBank)
			banks.GET("/:id", bankHandler.GetBank)
			banks.PUT("/:id", bankHandler.UpdateBank)
			banks.DELETE("/:id", bankHandler.DeleteBank)
			banks.GET("/:id/export", bankHandler.ExportBank)
			banks.POST("/:id/import", bankHandler.ImportBank)
			banks.POST("/:id/questions", questionHandler.CreateQuestion)
		}

		questions := api.Group("/questions")
		{
			questions.PUT("/:id", adminOnly, questionHandler.UpdateQuestion)
			questions.DELETE("/:id", adminOnly, questionHandler.DeleteQuestion)

			// Served without auth so player devices can load it.
			questions.GET("/:id/image", questionHandler.GetQuestionImage)
		}

		sessions := api.Group("/sessions")
		sessions.Use(adminOnly)
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.POST("/:id/start", sessionHandler.StartGame)
			sessions.POST("/:id/next", sessionHandler.NextQuestion)
			sessions.POST("/:id/reveal", sessionHandler.ForceReveal)
			sessions.POST("/:id/end", sessionHandler.EndGame)
			sessions.GET("/:id/qr", sessionHandler.SessionQR)
		}

		play := api.Group("/play")
		{
			play.GET("/state", playHandler.GetState)
			play.POST("/join", playHandler.Join)
			play.POST("/rejoin", playHandler.Rejoin)
			play.POST("/answer", playHandler.Answer)
			play.GET("/question", playHandler.CurrentQuestion)
			play.GET("/stats", playHandler.RoundStats)
			play.GET("/my-response", playHandler.MyResponse)
			play.POST("/heartbeat", playHandler.Heartbeat)
			play.POST("/disconnect", playHandler.Disconnect)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
