package main

import (
	"log"

	"github.com/Kumarankit101/Forms/internal/config"
	"github.com/Kumarankit101/Forms/internal/database"
	"github.com/Kumarankit101/Forms/internal/handlers"
	"github.com/Kumarankit101/Forms/internal/middleware"
	"github.com/Kumarankit101/Forms/internal/services"
	"github.com/Kumarankit101/Forms/internal/ws"

	_ "github.com/Kumarankit101/Forms/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Forms API
// @version         1.0
// @description     API for authoring forms and collecting anonymous responses
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	formService := services.NewFormService(db)
	responseService := services.NewResponseService(db)

	authHandler := handlers.NewAuthHandler(authService)
	formHandler := handlers.NewFormHandler(formService)
	responseHandler := handlers.NewResponseHandler(responseService, hub)
	wsHandler := handlers.NewWSHandler(formService, hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/forms/:id", middleware.JWTAuthWS(authService), wsHandler.HandleFormFeed)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/user", middleware.JWTAuth(authService), authHandler.Me)
		}

		forms := api.Group("/forms")
		{
			forms.GET("", middleware.JWTAuth(authService), formHandler.ListForms)
			forms.POST("", middleware.JWTAuth(authService), formHandler.CreateForm)
			forms.GET("/:id", formHandler.GetForm)
			forms.PUT("/:id", middleware.JWTAuth(authService), formHandler.UpdateForm)
			forms.DELETE("/:id", middleware.JWTAuth(authService), formHandler.DeleteForm)

			forms.POST("/:id/responses", responseHandler.SubmitResponse)
			forms.GET("/:id/responses", middleware.JWTAuth(authService), responseHandler.ListResponses)
		}

		api.GET("/share/:slug", formHandler.GetFormBySlug)

		responses := api.Group("/responses")
		responses.Use(middleware.JWTAuth(authService))
		{
			responses.DELETE("/:id", responseHandler.DeleteResponse)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
