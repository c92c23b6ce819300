package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxtally/internal/csvexport"
	"taxtally/internal/domain"
	"taxtally/internal/service"
	"taxtally/internal/xlsxexport"
)

// ReportHandler handles statutory report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	agg, err := h.reportService.Aggregate(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, agg)
}

// GSTR1 handles GET /api/v1/reports/gstr1
func (h *ReportHandler) GSTR1(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.GSTR1(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// GSTR1JSON handles GET /api/v1/reports/gstr1/export
// Streams the government portal upload file as a JSON attachment.
func (h *ReportHandler) GSTR1JSON(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.GSTR1JSON(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("GSTR1", period.Label, "json")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, rep)
}

// GSTR3B handles GET /api/v1/reports/gstr3b
func (h *ReportHandler) GSTR3B(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.GSTR3B(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// HSNSummary handles GET /api/v1/reports/hsn
func (h *ReportHandler) HSNSummary(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.HSNSummary(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// SalesRegister handles GET /api/v1/reports/sales-register
func (h *ReportHandler) SalesRegister(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.SalesRegister(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// SalesRegisterCSV handles GET /api/v1/reports/sales-register/export
// Streams the register as a CSV attachment with a UTF-8 BOM for Excel.
func (h *ReportHandler) SalesRegisterCSV(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reportService.SalesRegister(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("Sales Register", period.Label, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRegister(rep); err != nil {
		return
	}
	w.Flush()
}

// Workbook handles GET /api/v1/reports/export
// Streams all available reports for the period as one Excel workbook.
// GSTR-1 and GSTR-3B sheets are present only for monthly periods.
func (h *ReportHandler) Workbook(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}
	ctx := c.Request.Context()

	reps := xlsxexport.Reports{}
	reps.SalesRegister, err = h.reportService.SalesRegister(ctx, businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	reps.HSN, err = h.reportService.HSNSummary(ctx, businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	if period.Kind == domain.PeriodKindMonth {
		reps.GSTR1, err = h.reportService.GSTR1(ctx, businessID, period)
		if err != nil && !errors.Is(err, domain.ErrPeriodMismatch) {
			HandleError(c, err)
			return
		}
		reps.GSTR3B, err = h.reportService.GSTR3B(ctx, businessID, period)
		if err != nil {
			HandleError(c, err)
			return
		}
	}

	f, err := xlsxexport.BuildWorkbook(reps)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	filename := csvexport.BuildFilename("GST Reports", period.Label, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	_, _ = f.WriteTo(c.Writer)
}
