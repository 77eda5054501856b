package handler

import (
	"github.com/gin-gonic/gin"
	sourcingapp "github.com/storefront/backend/internal/application/sourcing"
)

// SupplierHandler handles supplier provisioning endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *sourcingapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *sourcingapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// ListApprovedQuotations returns approved quotations available for
// supplier provisioning
func (h *SupplierHandler) ListApprovedQuotations(c *gin.Context) {
	resp, err := h.supplierService.ListApprovedQuotations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create provisions a supplier from an approved quotation
func (h *SupplierHandler) Create(c *gin.Context) {
	createdBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req sourcingapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.Create(c.Request.Context(), req, createdBy)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	resp, err := h.supplierService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns a single supplier with quotation details
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	resp, err := h.supplierService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req sourcingapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
