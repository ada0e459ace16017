package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Titan327/4CITE-backend/internal/api/handler"
	"github.com/Titan327/4CITE-backend/internal/api/middleware"
	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/service"
	"github.com/Titan327/4CITE-backend/internal/infrastructure/db/postgres"
	"github.com/Titan327/4CITE-backend/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *pgxpool.Pool, jwtKey string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking_api"))

	// --- Dependencies ---
	tokens := token.NewManager(jwtKey)

	userRepo := postgres.NewUserRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	hotelService := service.NewHotelService(hotelRepo, log)
	roomService := service.NewRoomService(roomRepo, log)
	bookingService := service.NewBookingService(bookingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	userOrAdmin := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth routes (public) ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- User routes ---
	user := api.Group("/user", authenticated)
	user.GET("/me", userHandler.Me, userOrAdmin)
	user.PUT("/me", userHandler.UpdateMe, userOrAdmin)
	user.DELETE("/me", userHandler.DeleteMe, userOrAdmin)
	user.GET("/search", userHandler.Search, adminOnly)
	user.PUT("/:id", userHandler.Update, adminOnly)
	user.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Hotel routes (search is public) ---
	hotel := api.Group("/hotel")
	hotel.GET("/search", hotelHandler.Search)
	hotel.POST("", hotelHandler.Create, authenticated, adminOnly)
	hotel.PUT("/:id", hotelHandler.Update, authenticated, adminOnly)
	hotel.DELETE("/:id", hotelHandler.Delete, authenticated, adminOnly)

	// --- Room routes (search is public) ---
	room := api.Group("/room")
	room.GET("/search", roomHandler.Search)
	room.POST("", roomHandler.Create, authenticated, adminOnly)
	room.PUT("/:id", roomHandler.Update, authenticated, adminOnly)
	room.DELETE("/:id", roomHandler.Delete, authenticated, adminOnly)

	// --- Booking routes ---
	booking := api.Group("/booking", authenticated, userOrAdmin)
	booking.GET("/search", bookingHandler.Search)
	booking.POST("", bookingHandler.Create)
	booking.PUT("/:id", bookingHandler.Update)
	booking.DELETE("/:id", bookingHandler.Delete)

	// --- API documentation ---
	api.GET("/api-docs/*", echoSwagger.WrapHandler)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
