package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxtally/internal/domain"
	"taxtally/internal/service"
)

// NumberingHandler handles invoice numbering endpoints.
type NumberingHandler struct {
	numberingService service.NumberingService
}

// NewNumberingHandler creates a new NumberingHandler.
func NewNumberingHandler(numberingService service.NumberingService) *NumberingHandler {
	return &NumberingHandler{numberingService: numberingService}
}

// Get handles GET /api/v1/numbering
func (h *NumberingHandler) Get(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}

	state, err := h.numberingService.Get(c.Request.Context(), businessID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}

type numberingRequest struct {
	Prefix        string `json:"prefix"`
	AutoNumbering *bool  `json:"auto_numbering" binding:"required"`
	NextSequence  int    `json:"next_sequence"`
}

// Save handles PUT /api/v1/numbering
func (h *NumberingHandler) Save(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}

	var req numberingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "auto_numbering is required")
		return
	}
	if req.NextSequence < 1 {
		req.NextSequence = 1
	}

	state := &domain.NumberingState{
		BusinessID:    businessID,
		Prefix:        req.Prefix,
		AutoNumbering: *req.AutoNumbering,
		NextSequence:  req.NextSequence,
	}
	if err := h.numberingService.Save(c.Request.Context(), state); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}

// Evaluate handles GET /api/v1/numbering/evaluate
// Reports whether switching to the selected period crosses a financial
// year boundary relative to the stored prefix, without changing anything.
func (h *NumberingHandler) Evaluate(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	eval, err := h.numberingService.Evaluate(c.Request.Context(), businessID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, eval)
}

type commitResetRequest struct {
	Prefix string `json:"prefix" binding:"required"`
}

// CommitReset handles POST /api/v1/numbering/reset
// Applies a new prefix and restarts the sequence at 1. State is persisted
// before the response reflects it.
func (h *NumberingHandler) CommitReset(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}

	var req commitResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "prefix is required")
		return
	}

	state, err := h.numberingService.CommitReset(c.Request.Context(), businessID, req.Prefix)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}
