package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxtally/internal/service"
)

// OutstandingHandler handles receivables endpoints.
type OutstandingHandler struct {
	outstandingService service.OutstandingService
}

// NewOutstandingHandler creates a new OutstandingHandler.
func NewOutstandingHandler(outstandingService service.OutstandingService) *OutstandingHandler {
	return &OutstandingHandler{outstandingService: outstandingService}
}

// Summary handles GET /api/v1/outstanding
// Returns period sales, collections, the outstanding balance, and the
// list of overdue invoices as of today.
func (h *OutstandingHandler) Summary(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	summary, err := h.outstandingService.Compute(c.Request.Context(), businessID, period, time.Now().UTC())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}
