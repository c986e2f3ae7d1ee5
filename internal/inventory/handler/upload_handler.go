package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/config"
)

// UploadHandler 图片上传处理器
type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Upload POST /api/upload
// 单文件字段 image，限制 5MB，仅接受图片扩展名
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		BadRequest(c, "No file uploaded")
		return
	}

	maxSize := int64(h.cfg.Upload.MaxSizeMB) * 1024 * 1024
	if fileHeader.Size > maxSize {
		BadRequest(c, fmt.Sprintf("File too large. Maximum size is %dMB.", h.cfg.Upload.MaxSizeMB))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		BadRequest(c, "Only image files are allowed (jpeg, jpg, png, gif, webp)")
		return
	}

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0755); err != nil {
		InternalError(c, "Failed to create upload directory: "+err.Error())
		return
	}

	savedName := fmt.Sprintf("image-%s%s", uuid.New().String()[:32], ext)
	savePath := filepath.Join(h.cfg.Upload.Dir, savedName)

	src, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "Failed to read uploaded file: "+err.Error())
		return
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		InternalError(c, "Failed to save file: "+err.Error())
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		InternalError(c, "Failed to write file: "+err.Error())
		return
	}

	Created(c, gin.H{
		"message":   "File uploaded successfully",
		"imagePath": h.cfg.Upload.URLPrefix + "/" + savedName,
		"filename":  savedName,
	})
}
