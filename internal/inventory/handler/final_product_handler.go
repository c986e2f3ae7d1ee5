package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// FinalProductHandler 成品处理器
type FinalProductHandler struct {
	svc *service.FinalProductService
}

func NewFinalProductHandler(svc *service.FinalProductService) *FinalProductHandler {
	return &FinalProductHandler{svc: svc}
}

// Create POST /api/final-products
// 主行与全部组件在一个事务内落库
func (h *FinalProductHandler) Create(c *gin.Context) {
	var input service.FinalProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Final product name and code are required")
		return
	}

	fp, err := h.svc.Create(c.Request.Context(), GetUserID(c), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, fp)
}

// List GET /api/final-products
func (h *FinalProductHandler) List(c *gin.Context) {
	finalProducts, err := h.svc.List(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, finalProducts)
}

// Get GET /api/final-products/:id
func (h *FinalProductHandler) Get(c *gin.Context) {
	fp, err := h.svc.Get(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, fp)
}

// Update PUT /api/final-products/:id
func (h *FinalProductHandler) Update(c *gin.Context) {
	var input service.FinalProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Final product name and code are required")
		return
	}

	fp, err := h.svc.Update(c.Request.Context(), GetUserID(c), c.Param("id"), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, fp)
}

// Done PUT /api/final-products/:id/done
func (h *FinalProductHandler) Done(c *gin.Context) {
	fp, err := h.svc.MarkDone(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, fp)
}

// Reset PUT /api/final-products/:id/reset
func (h *FinalProductHandler) Reset(c *gin.Context) {
	fp, err := h.svc.Reset(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, fp)
}

// Delete DELETE /api/final-products/:id
func (h *FinalProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetUserID(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Final product deleted successfully"})
}
