package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	sourcingapp "github.com/storefront/backend/internal/application/sourcing"
)

// QuotationHandler handles quotation lifecycle endpoints. Submission is
// public; everything else is for administrators.
type QuotationHandler struct {
	BaseHandler
	quotationService *sourcingapp.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotationService *sourcingapp.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Submit accepts a public quotation submission
func (h *QuotationHandler) Submit(c *gin.Context) {
	var req sourcingapp.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.quotationService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns quotations. Rejected ones are hidden unless the
// include_rejected query parameter is set.
func (h *QuotationHandler) List(c *gin.Context) {
	includeRejected := c.Query("include_rejected") == "true"

	resp, err := h.quotationService.List(c.Request.Context(), includeRejected)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	resp, err := h.quotationService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Approve transitions a pending quotation to approved
func (h *QuotationHandler) Approve(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	reviewerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req sourcingapp.ReviewQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindingError(c, err)
		return
	}

	resp, err := h.quotationService.Approve(c.Request.Context(), id, reviewerID, req.AdminNotes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reject transitions a pending quotation to rejected
func (h *QuotationHandler) Reject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req sourcingapp.ReviewQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindingError(c, err)
		return
	}

	resp, err := h.quotationService.Reject(c.Request.Context(), id, req.AdminNotes)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req sourcingapp.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.quotationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
