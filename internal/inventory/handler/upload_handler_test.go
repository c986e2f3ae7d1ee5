package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/config"
)

func setupUploadTest(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:       t.TempDir(),
			MaxSizeMB: 5,
			URLPrefix: "/uploads",
		},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/upload/component-image", NewUploadHandler(cfg).Upload)
	return router
}

func uploadFile(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req, _ := http.NewRequest("POST", "/api/upload/component-image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	router := setupUploadTest(t)

	w := uploadFile(t, router, "photo.png", []byte("fake png bytes"))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	data := resp["data"].(map[string]interface{})

	imagePath, _ := data["imagePath"].(string)
	if !strings.HasPrefix(imagePath, "/uploads/") || !strings.HasSuffix(imagePath, ".png") {
		t.Errorf("Expected /uploads/...png path, got %v", imagePath)
	}
	if data["filename"] == nil || data["filename"] == "" {
		t.Error("Expected non-empty filename")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	router := setupUploadTest(t)

	// 6MB exceeds the 5MB limit
	w := uploadFile(t, router, "big.jpg", make([]byte, 6*1024*1024))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "File too large. Maximum size is 5MB." {
		t.Errorf("Expected size limit message, got %v", resp["message"])
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	router := setupUploadTest(t)

	w := uploadFile(t, router, "notes.txt", []byte("plain text"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadRequiresFile(t *testing.T) {
	router := setupUploadTest(t)

	req, _ := http.NewRequest("POST", "/api/upload/component-image", bytes.NewBuffer(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
