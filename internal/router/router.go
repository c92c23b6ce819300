package router

import (
	"github.com/gin-gonic/gin"

	"taxtally/internal/config"
	"taxtally/internal/handler"
	"taxtally/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	healthH *handler.HealthHandler,
	periodH *handler.PeriodHandler,
	documentH *handler.DocumentHandler,
	numberingH *handler.NumberingHandler,
	reportH *handler.ReportHandler,
	outstandingH *handler.OutstandingHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// All business data is scoped by the token's business claim.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(&cfg.JWT))

	// Reporting periods and filing deadlines
	periods := protected.Group("/periods")
	periods.GET("/options", periodH.Options)
	periods.GET("/deadlines", periodH.Deadlines)

	// Taxable documents
	documents := protected.Group("/documents")
	documents.POST("", documentH.Create)
	documents.GET("", documentH.List)
	documents.GET("/:id", documentH.Get)
	documents.PUT("/:id", documentH.Update)
	documents.DELETE("/:id", documentH.Delete)
	documents.PATCH("/:id/status", documentH.SetStatus)

	// Invoice numbering
	numbering := protected.Group("/numbering")
	numbering.GET("", numberingH.Get)
	numbering.PUT("", numberingH.Save)
	numbering.GET("/evaluate", numberingH.Evaluate)
	numbering.POST("/reset", numberingH.CommitReset)

	// Statutory reports
	reports := protected.Group("/reports")
	reports.GET("/summary", reportH.Summary)
	reports.GET("/gstr1", reportH.GSTR1)
	reports.GET("/gstr1/export", reportH.GSTR1JSON)
	reports.GET("/gstr3b", reportH.GSTR3B)
	reports.GET("/hsn", reportH.HSNSummary)
	reports.GET("/sales-register", reportH.SalesRegister)
	reports.GET("/sales-register/export", reportH.SalesRegisterCSV)
	reports.GET("/export", reportH.Workbook)

	// Receivables
	protected.GET("/outstanding", outstandingH.Summary)

	return r
}
