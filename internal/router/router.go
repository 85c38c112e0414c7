package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hotelpride/docs"
	"hotelpride/internal/domain"
	"hotelpride/internal/handler"
	"hotelpride/internal/middleware"
	"hotelpride/internal/service"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Room     *handler.RoomHandler
	Customer *handler.CustomerHandler
	Booking  *handler.BookingHandler
	Invoice  *handler.InvoiceHandler
	Settings *handler.SettingsHandler
	File     *handler.FileHandler
	Report   *handler.ReportHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Room management; creation and removal are manager decisions
	rooms := protected.Group("/rooms")
	rooms.POST("", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Room.Create)
	rooms.GET("", h.Room.List)
	rooms.GET("/:id", h.Room.Get)
	rooms.PATCH("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Room.Update)
	rooms.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Room.Delete)

	// Guest records and their ID documents
	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.Search)
	customers.GET("/:id", h.Customer.Get)
	customers.PATCH("/:id", h.Customer.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Customer.Delete)
	customers.POST("/:id/id-proofs", h.File.Upload)
	customers.GET("/:id/id-proofs", h.File.ListByCustomer)

	idProofs := protected.Group("/id-proofs")
	idProofs.GET("/:id/download", h.File.GetDownloadURL)
	idProofs.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.File.Delete)

	// Booking lifecycle
	bookings := protected.Group("/bookings")
	bookings.POST("", h.Booking.Create)
	bookings.GET("", h.Booking.List)
	bookings.GET("/:id", h.Booking.Get)
	bookings.PATCH("/:id", h.Booking.Update)
	bookings.POST("/:id/check-in", h.Booking.CheckIn)
	bookings.POST("/:id/check-out", h.Booking.CheckOut)
	bookings.POST("/:id/cancel", h.Booking.Cancel)
	bookings.POST("/:id/no-show", h.Booking.MarkNoShow)

	// Invoices
	invoices := protected.Group("/invoices")
	invoices.POST("/preview", h.Invoice.Preview)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.POST("/:id/issue", h.Invoice.Issue)
	invoices.POST("/:id/pay", h.Invoice.MarkPaid)
	invoices.POST("/:id/cancel", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Invoice.Cancel)
	invoices.POST("/:id/email", h.Invoice.Email)

	// Property configuration
	settings := protected.Group("/settings")
	settings.GET("", h.Settings.Get)
	settings.PATCH("", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Settings.Update)

	// Staff accounts
	users := protected.Group("/users")
	users.GET("/me", h.User.Me)
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.Get)
	users.PATCH("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Exports
	reports := protected.Group("/reports")
	reports.GET("/invoice-register", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Report.InvoiceRegister)

	return r
}
