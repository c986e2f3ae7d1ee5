package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger 日志中间件
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("request_id")),
		}

		if userID, exists := c.Get("user_id"); exists {
			fields = append(fields, zap.String("user_id", userID.(string)))
		}

		if status >= 500 {
			logger.Error("Server error", fields...)
		} else if status >= 400 {
			logger.Warn("Client error", fields...)
		} else {
			logger.Info("Request", fields...)
		}
	}
}

// CORS 跨域中间件
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-User-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID 请求ID中间件
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// TenantResolver 从请求中解析租户（用户）ID
// 所有数据按该ID分区，解析失败的请求不会到达任何 handler
type TenantResolver interface {
	ResolveTenant(r *http.Request) (string, error)
}

// HeaderResolver 直接信任 X-User-Id 请求头
// 不做任何签名校验，只适合由可信前端网关转发的部署
type HeaderResolver struct{}

func (HeaderResolver) ResolveTenant(r *http.Request) (string, error) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		return "", fmt.Errorf("missing X-User-Id header")
	}
	return userID, nil
}

// JWTClaims JWT claims
type JWTClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTResolver 校验 Bearer token 后从 uid claim 取租户ID
type JWTResolver struct {
	Secret string
}

func (j JWTResolver) ResolveTenant(r *http.Request) (string, error) {
	var tokenString string
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.Secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.UserID, nil
}

// TenantAuth 租户认证中间件
// 解析出的ID原样写入 user_id，后续所有查询按它做等值过滤
func TenantAuth(resolver TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.ResolveTenant(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    40100,
				"message": "Unauthorized: User ID is required",
			})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
