package main

import (
	"fmt"
	"log"

	"taxtally/internal/config"
	"taxtally/internal/handler"
	"taxtally/internal/repository/postgres"
	"taxtally/internal/router"
	"taxtally/internal/service"
)

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
	bizRepo := postgres.NewBusinessRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	ledgerRepo := postgres.NewLedgerRepo(db)
	numberingRepo := postgres.NewNumberingRepo(db)

	// Initialize services
	documentSvc := service.NewDocumentService(docRepo, bizRepo, customerRepo, numberingRepo)
	numberingSvc := service.NewNumberingService(numberingRepo)
	reportSvc := service.NewReportService(docRepo, bizRepo)
	outstandingSvc := service.NewOutstandingService(docRepo, ledgerRepo)

	// Initialize handlers
	healthH := handler.NewHealthHandler(db)
	periodH := handler.NewPeriodHandler(&cfg.Report)
	documentH := handler.NewDocumentHandler(documentSvc)
	numberingH := handler.NewNumberingHandler(numberingSvc)
	reportH := handler.NewReportHandler(reportSvc)
	outstandingH := handler.NewOutstandingHandler(outstandingSvc)

	// Setup router
	r := router.Setup(cfg, healthH, periodH, documentH, numberingH, reportH, outstandingH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
