package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
	"github.com/inerttila/inventory-hub/internal/inventory/testutil"
)

func setupCategoryTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	categoryHandler := NewCategoryHandler(services.Category)

	router := testutil.SetupRouter()
	api := testutil.TenantGroup(router, "/api")

	categories := api.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	return router
}

func createCategory(t *testing.T, router *gin.Engine, userID, name string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/categories", map[string]string{"name": name}, userID)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func TestCategoryNameUniquePerTenant(t *testing.T) {
	router := setupCategoryTest(t)

	createCategory(t, router, "user-a", "Tables")

	w := testutil.DoRequest(router, "POST", "/api/categories", map[string]string{"name": "Tables"}, "user-a")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Category name already exists" {
		t.Errorf("Expected 'Category name already exists', got %v", resp["message"])
	}

	// Same name for another tenant is fine
	createCategory(t, router, "user-b", "Tables")
}

func TestCategoryListOrderedByName(t *testing.T) {
	router := setupCategoryTest(t)

	createCategory(t, router, "user-a", "Windows")
	createCategory(t, router, "user-a", "Doors")
	createCategory(t, router, "user-a", "Panels")

	w := testutil.DoRequest(router, "GET", "/api/categories", nil, "user-a")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(data))
	}
	names := make([]string, len(data))
	for i, item := range data {
		names[i] = item.(map[string]interface{})["name"].(string)
	}
	want := []string{"Doors", "Panels", "Windows"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Expected alphabetical order %v, got %v", want, names)
		}
	}
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	router := setupCategoryTest(t)

	category := createCategory(t, router, "user-a", "Tables")
	categoryID := category["id"].(string)

	w := testutil.DoRequest(router, "PUT", "/api/categories/"+categoryID,
		map[string]string{"name": "Dining Tables"}, "user-a")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["data"].(map[string]interface{})["name"] != "Dining Tables" {
		t.Errorf("Expected updated name, got %v", resp["data"])
	}

	w = testutil.DoRequest(router, "DELETE", "/api/categories/"+categoryID, nil, "user-a")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/categories/"+categoryID, nil, "user-a")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestCategoryRequiresTenant(t *testing.T) {
	router := setupCategoryTest(t)

	w := testutil.DoRequest(router, "GET", "/api/categories", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without tenant header, got %d: %s", w.Code, w.Body.String())
	}
}
