package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// CurrencyHandler 币种处理器
type CurrencyHandler struct {
	svc *service.CurrencyService
}

func NewCurrencyHandler(svc *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// Create POST /api/currencies
func (h *CurrencyHandler) Create(c *gin.Context) {
	var input service.CurrencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Currency code and name are required")
		return
	}

	currency, err := h.svc.Create(c.Request.Context(), GetUserID(c), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, currency)
}

// List GET /api/currencies
func (h *CurrencyHandler) List(c *gin.Context) {
	currencies, err := h.svc.List(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, currencies)
}

// Get GET /api/currencies/:id
func (h *CurrencyHandler) Get(c *gin.Context) {
	currency, err := h.svc.Get(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, currency)
}

// Update PUT /api/currencies/:id
func (h *CurrencyHandler) Update(c *gin.Context) {
	var input service.CurrencyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Currency code and name are required")
		return
	}

	currency, err := h.svc.Update(c.Request.Context(), GetUserID(c), c.Param("id"), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, currency)
}

// Delete DELETE /api/currencies/:id
func (h *CurrencyHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetUserID(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Currency deleted successfully"})
}
