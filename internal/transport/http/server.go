package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "tripplanner/internal/app"
	"tripplanner/internal/bootstrap"
	"tripplanner/internal/cache"
	"tripplanner/internal/platform/rabbitmq"
	"tripplanner/internal/repository"
	"tripplanner/internal/transport/http/handler"
	"tripplanner/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	tripRepo := repository.NewTripRepository(app.MySQL)
	tripCache := cache.NewTripListCache(
		app.Redis,
		time.Duration(app.Config.Redis.TripListTTLSeconds)*time.Second,
	)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
		app.Config.Auth.PasswordMinLength,
	)
	tripService := appsvc.NewTripService(tripRepo, tripCache, activityPublisher)

	RegisterAPIRoutes(
		router,
		app.Config.Auth.JWTSecret,
		handler.NewAuthHandler(authService),
		handler.NewTripHandler(tripService),
		handler.NewDestinationHandler(),
	)
	return router
}

// RegisterAPIRoutes mounts the public API. Split out of NewRouter so tests
// can assemble an engine around in-memory stores.
func RegisterAPIRoutes(
	router *gin.Engine,
	jwtSecret string,
	authHandler *handler.AuthHandler,
	tripHandler *handler.TripHandler,
	destinationHandler *handler.DestinationHandler,
) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthBearer(jwtSecret), authHandler.Me)
	authGroup.POST("/logout", authHandler.Logout)

	api.GET("/destinations", destinationHandler.List)
	api.GET("/destinations/:id", destinationHandler.Show)

	tripGroup := api.Group("/trips")
	tripGroup.Use(middleware.AuthBearer(jwtSecret))
	tripGroup.GET("", tripHandler.List)
	tripGroup.POST("", tripHandler.Create)
	tripGroup.GET("/:id", tripHandler.Get)
	tripGroup.PUT("/:id", tripHandler.Update)
	tripGroup.DELETE("/:id", tripHandler.Delete)
}
