package main

import (
	"fmt"
	"log"
	"net/http"

	"corrispettivi/internal/config"
	"corrispettivi/internal/email/noop"
	"corrispettivi/internal/email/ses"
	"corrispettivi/internal/handler"
	"corrispettivi/internal/nonce"
	"corrispettivi/internal/port"
	"corrispettivi/internal/register"
	"corrispettivi/internal/repository/mysql"
	"corrispettivi/internal/router"
	"corrispettivi/internal/service"
	s3storage "corrispettivi/internal/storage/s3"
)

// @title Registro Corrispettivi API
// @version 1.0
// @description Daily payments register computed from WooCommerce orders.
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

	db, err := mysql.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	orderRepo := mysql.NewOrderRepo(db, cfg.DB.TablePrefix)
	taxRepo := mysql.NewTaxRepo(db, cfg.DB.TablePrefix)
	settingsRepo := mysql.NewSettingsRepo(db, cfg.DB.TablePrefix)
	invoiceSource := mysql.NewInvoiceSource(db, cfg.DB.TablePrefix)

	// Initialize collaborators
	var storage port.ObjectStorage
	if cfg.Register.ArchiveEnabled && cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

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

	nonceSvc := nonce.New(cfg.Nonce.Secret, cfg.Nonce.SiteHost, cfg.Nonce.Lifetime)
	labels := register.Labels{
		WithholdingFee: cfg.Register.WithholdingFeeLabel,
		StampDutyFee:   cfg.Register.StampDutyFeeLabel,
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.Admin, cfg.JWT)
	registerSvc := service.NewRegisterService(
		orderRepo, taxRepo, settingsRepo, invoiceSource, labels, cfg.Register.MonthCacheTTL)
	exportSvc := service.NewExportService(
		registerSvc, storage, emailSender, cfg.S3, cfg.Register.ArchiveEnabled)
	settingsSvc := service.NewSettingsService(settingsRepo, nonceSvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	registerH := handler.NewRegisterHandler(registerSvc)
	exportH := handler.NewExportHandler(exportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, registerH, exportH, settingsH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
