package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/config"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
)

// Handlers 处理器集合
type Handlers struct {
	Category     *CategoryHandler
	Brand        *BrandHandler
	Currency     *CurrencyHandler
	Client       *ClientHandler
	Product      *ProductHandler
	FinalProduct *FinalProductHandler
	Upload       *UploadHandler
	Report       *ReportHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Category:     NewCategoryHandler(svc.Category),
		Brand:        NewBrandHandler(svc.Brand),
		Currency:     NewCurrencyHandler(svc.Currency),
		Client:       NewClientHandler(svc.Client),
		Product:      NewProductHandler(svc.Product),
		FinalProduct: NewFinalProductHandler(svc.FinalProduct),
		Upload:       NewUploadHandler(cfg),
		Report:       NewReportHandler(svc.Report),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// RespondError 按业务错误类型映射HTTP状态
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, service.ErrBusinessRule):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// GetUserID 从上下文获取租户ID
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}
