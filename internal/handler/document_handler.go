package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxtally/internal/domain"
	"taxtally/internal/service"
)

// DocumentHandler handles taxable document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

type documentRequest struct {
	Type           domain.DocumentType `json:"type" binding:"required"`
	DocumentNumber string              `json:"document_number"`
	Date           string              `json:"date" binding:"required"`
	CustomerID     uuid.UUID           `json:"customer_id" binding:"required"`
	LineItems      []domain.LineItem   `json:"line_items" binding:"required"`
}

func (r *documentRequest) toInput() (service.FinalizeInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return service.FinalizeInput{}, domain.ErrInvalidDate
	}
	return service.FinalizeInput{
		Type:           r.Type,
		DocumentNumber: r.DocumentNumber,
		Date:           date,
		CustomerID:     r.CustomerID,
		LineItems:      r.LineItems,
	}, nil
}

// Create handles POST /api/v1/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "type, date, customer_id, and line_items are required")
		return
	}
	in, err := req.toInput()
	if err != nil {
		HandleError(c, err)
		return
	}

	doc, err := h.documentService.Finalize(c.Request.Context(), businessID, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doc)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}

	if typeStr := c.Query("type"); typeStr != "" {
		docType := domain.DocumentType(typeStr)
		switch docType {
		case domain.DocumentTypeInvoice, domain.DocumentTypeCreditNote, domain.DocumentTypeDebitNote:
		default:
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'type': must be one of invoice, credit_note, debit_note")
			return
		}
		docs, err := h.documentService.List(c.Request.Context(), businessID, docType)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, docs)
		return
	}

	docs, err := h.documentService.ListAll(c.Request.Context(), businessID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, docs)
}

// Get handles GET /api/v1/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), businessID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Update handles PUT /api/v1/documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "type, date, customer_id, and line_items are required")
		return
	}
	in, err := req.toInput()
	if err != nil {
		HandleError(c, err)
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), businessID, docID, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), businessID, docID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": docID})
}

type statusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required"`
}

// SetStatus handles PATCH /api/v1/documents/:id/status
func (h *DocumentHandler) SetStatus(c *gin.Context) {
	businessID, ok := extractBusinessID(c)
	if !ok {
		return
	}
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid document id")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}
	switch req.Status {
	case domain.InvoiceStatusUnpaid, domain.InvoiceStatusPartial, domain.InvoiceStatusPaid:
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'status': must be one of unpaid, partial, paid")
		return
	}

	doc, err := h.documentService.SetStatus(c.Request.Context(), businessID, docID, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}
