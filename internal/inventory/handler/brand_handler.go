package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// BrandHandler 品牌处理器
type BrandHandler struct {
	svc *service.BrandService
}

func NewBrandHandler(svc *service.BrandService) *BrandHandler {
	return &BrandHandler{svc: svc}
}

// Create POST /api/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var input service.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Brand name is required")
		return
	}

	brand, err := h.svc.Create(c.Request.Context(), GetUserID(c), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, brand)
}

// List GET /api/brands
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.svc.List(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, brands)
}

// Get GET /api/brands/:id
func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.svc.Get(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, brand)
}

// Update PUT /api/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	var input service.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Brand name is required")
		return
	}

	brand, err := h.svc.Update(c.Request.Context(), GetUserID(c), c.Param("id"), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, brand)
}

// Delete DELETE /api/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetUserID(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Brand deleted successfully"})
}
