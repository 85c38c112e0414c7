package main

import (
	"fmt"
	"log"

	"hotelpride/internal/config"
	"hotelpride/internal/email/noop"
	"hotelpride/internal/email/ses"
	"hotelpride/internal/handler"
	"hotelpride/internal/port"
	"hotelpride/internal/repository/postgres"
	"hotelpride/internal/router"
	"hotelpride/internal/service"
	s3storage "hotelpride/internal/storage/s3"
)

// @title Hotel Pride Front Desk API
// @version 1.0
// @description Front-desk management API: rooms, guests, bookings, GST invoicing and exports.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	roomRepo := postgres.NewRoomRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	fileRepo := postgres.NewIDProofFileRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	roomSvc := service.NewRoomService(roomRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, settingsRepo, emailSender)
	settingsSvc := service.NewSettingsService(settingsRepo)
	fileSvc := service.NewFileService(fileRepo, customerRepo, s3Client, &cfg.S3)
	reportSvc := service.NewReportService(invoiceRepo, customerRepo)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		User:     handler.NewUserHandler(userSvc),
		Room:     handler.NewRoomHandler(roomSvc),
		Customer: handler.NewCustomerHandler(customerSvc),
		Booking:  handler.NewBookingHandler(bookingSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
		File:     handler.NewFileHandler(fileSvc),
		Report:   handler.NewReportHandler(reportSvc),
		Health:   handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
