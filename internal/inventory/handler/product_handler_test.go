package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
	"github.com/inerttila/inventory-hub/internal/inventory/testutil"
	"gorm.io/gorm"
)

func setupProductTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)

	productHandler := NewProductHandler(services.Product)
	finalProductHandler := NewFinalProductHandler(services.FinalProduct)

	router := testutil.SetupRouter()
	api := testutil.TenantGroup(router, "/api")

	products := api.Group("/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	finalProducts := api.Group("/final-products")
	finalProducts.POST("", finalProductHandler.Create)

	return router, db
}

func createProduct(t *testing.T, router *gin.Engine, userID, name, barcode, price, squareMeters string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/products", map[string]interface{}{
		"name":                   name,
		"barcode":                barcode,
		"price_per_square_meter": price,
		"square_meters":          squareMeters,
	}, userID)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestProductCreate(t *testing.T) {
	router, _ := setupProductTest(t)

	product := createProduct(t, router, "user-a", "Oak Panel", "OAK-001", "10.50", "100")

	if product["id"] == nil || product["id"] == "" {
		t.Error("Expected non-empty id")
	}
	if product["name"] != "Oak Panel" {
		t.Errorf("Expected name 'Oak Panel', got %v", product["name"])
	}
	if product["barcode"] != "OAK-001" {
		t.Errorf("Expected barcode 'OAK-001', got %v", product["barcode"])
	}
}

func TestProductBarcodeUniquePerTenant(t *testing.T) {
	router, _ := setupProductTest(t)

	createProduct(t, router, "user-a", "Oak Panel", "OAK-001", "10", "100")

	// Same barcode, same tenant: rejected
	w := testutil.DoRequest(router, "POST", "/api/products", map[string]interface{}{
		"name":                   "Oak Panel Copy",
		"barcode":                "OAK-001",
		"price_per_square_meter": "12",
		"square_meters":          "50",
	}, "user-a")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Barcode already exists" {
		t.Errorf("Expected 'Barcode already exists', got %v", resp["message"])
	}

	// Same barcode, different tenant: allowed
	createProduct(t, router, "user-b", "Oak Panel", "OAK-001", "10", "100")
}

func TestProductTenantIsolation(t *testing.T) {
	router, _ := setupProductTest(t)

	product := createProduct(t, router, "user-a", "Oak Panel", "OAK-001", "10", "100")
	productID := product["id"].(string)

	// Other tenant cannot see it
	w := testutil.DoRequest(router, "GET", "/api/products/"+productID, nil, "user-b")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for other tenant, got %d: %s", w.Code, w.Body.String())
	}

	// Other tenant's list is empty
	w = testutil.DoRequest(router, "GET", "/api/products", nil, "user-b")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if data, ok := resp["data"].([]interface{}); ok && len(data) != 0 {
		t.Errorf("Expected empty list for other tenant, got %d items", len(data))
	}

	// Owner still sees it
	w = testutil.DoRequest(router, "GET", "/api/products/"+productID, nil, "user-a")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for owner, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductDeleteGuard(t *testing.T) {
	router, _ := setupProductTest(t)

	product := createProduct(t, router, "user-a", "Oak Panel", "OAK-001", "10", "100")
	productID := product["id"].(string)

	// Reference the product from a final product
	w := testutil.DoRequest(router, "POST", "/api/final-products", map[string]interface{}{
		"name": "Kitchen Table",
		"code": "KT-001",
		"components": []map[string]interface{}{
			{"product_id": productID, "length": "2", "width": "1", "quantity": "1"},
		},
	}, "user-a")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Delete is refused while referenced
	w = testutil.DoRequest(router, "DELETE", "/api/products/"+productID, nil, "user-a")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	message, _ := resp["message"].(string)
	if !strings.Contains(message, "Kitchen Table") {
		t.Errorf("Expected message naming the final product, got %v", message)
	}
}

func TestProductDeleteUnreferenced(t *testing.T) {
	router, _ := setupProductTest(t)

	product := createProduct(t, router, "user-a", "Oak Panel", "OAK-001", "10", "100")
	productID := product["id"].(string)

	w := testutil.DoRequest(router, "DELETE", "/api/products/"+productID, nil, "user-a")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/products/"+productID, nil, "user-a")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}
