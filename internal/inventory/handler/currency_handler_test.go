package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
	"github.com/inerttila/inventory-hub/internal/inventory/testutil"
)

func setupCurrencyTest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db)
	currencyHandler := NewCurrencyHandler(services.Currency)

	router := testutil.SetupRouter()
	api := testutil.TenantGroup(router, "/api")

	currencies := api.Group("/currencies")
	currencies.POST("", currencyHandler.Create)
	currencies.GET("", currencyHandler.List)

	return router
}

func TestCurrencyCodeNormalized(t *testing.T) {
	router := setupCurrencyTest(t)

	w := testutil.DoRequest(router, "POST", "/api/currencies", map[string]string{
		"code":   " eur ",
		"name":   "Euro",
		"symbol": "€",
	}, "user-a")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["code"] != "EUR" {
		t.Errorf("Expected code normalized to 'EUR', got %v", data["code"])
	}
}

func TestCurrencyCodeLengthValidation(t *testing.T) {
	router := setupCurrencyTest(t)

	w := testutil.DoRequest(router, "POST", "/api/currencies", map[string]string{
		"code":   "EURO",
		"name":   "Euro",
		"symbol": "€",
	}, "user-a")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Currency code must be exactly 3 letters" {
		t.Errorf("Expected length validation message, got %v", resp["message"])
	}
}

func TestCurrencyCodeUniquePerTenant(t *testing.T) {
	router := setupCurrencyTest(t)

	body := map[string]string{"code": "EUR", "name": "Euro", "symbol": "€"}

	w := testutil.DoRequest(router, "POST", "/api/currencies", body, "user-a")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "POST", "/api/currencies", body, "user-a")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Currency code already exists" {
		t.Errorf("Expected 'Currency code already exists', got %v", resp["message"])
	}

	// Other tenant can register the same code
	w = testutil.DoRequest(router, "POST", "/api/currencies", body, "user-b")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 for other tenant, got %d: %s", w.Code, w.Body.String())
	}
}
