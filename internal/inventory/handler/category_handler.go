package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Category name is required")
		return
	}

	category, err := h.svc.Create(c.Request.Context(), GetUserID(c), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, category)
}

// List GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, categories)
}

// Get GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.svc.Get(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, category)
}

// Update PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Category name is required")
		return
	}

	category, err := h.svc.Update(c.Request.Context(), GetUserID(c), c.Param("id"), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, category)
}

// Delete DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetUserID(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Category deleted successfully"})
}
