package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// ClientHandler 客户处理器
type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Client full name is required")
		return
	}

	client, err := h.svc.Create(c.Request.Context(), GetUserID(c), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, client)
}

// List GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, clients)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.svc.Get(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Client full name is required")
		return
	}

	client, err := h.svc.Update(c.Request.Context(), GetUserID(c), c.Param("id"), &input)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), GetUserID(c), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Client deleted successfully"})
}
