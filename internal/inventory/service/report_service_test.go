package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/inerttila/inventory-hub/internal/inventory/testutil"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedFinalProduct(t *testing.T, db *gorm.DB, userID, name, code string, applyTVSH bool, date time.Time, componentPrices ...string) *entity.FinalProduct {
	t.Helper()
	fp := &entity.FinalProduct{
		ID:        uuid.New().String()[:32],
		Name:      name,
		Code:      code,
		Status:    entity.StatusPending,
		Date:      &date,
		ApplyTVSH: applyTVSH,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(fp).Error; err != nil {
		t.Fatalf("Failed to seed final product: %v", err)
	}
	for _, price := range componentPrices {
		c := &entity.Component{
			ID:             uuid.New().String()[:32],
			FinalProductID: fp.ID,
			ProductID:      "p-" + uuid.New().String()[:8],
			Length:         decimal.NewFromInt(1),
			Width:          decimal.NewFromInt(1),
			Quantity:       decimal.NewFromInt(1),
			SquareMeters:   decimal.NewFromInt(1),
			TotalMeters:    decimal.NewFromInt(1),
			TotalPrice:     decimal.RequireFromString(price),
			UserID:         userID,
		}
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("Failed to seed component: %v", err)
		}
	}
	return fp
}

func TestGeneralReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewReportService(repos.FinalProduct, repos.Product)

	inRange := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	seedFinalProduct(t, db, "user-a", "Kitchen Table", "KT-001", true, inRange, "40", "10")
	seedFinalProduct(t, db, "user-a", "Old Order", "OLD-001", false, outOfRange, "100")
	seedFinalProduct(t, db, "user-b", "Other Tenant", "OT-001", true, inRange, "999")

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	f, filename, err := svc.GeneralReport(context.Background(), "user-a", from, to)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()

	if !strings.HasPrefix(filename, "general_report_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("Unexpected filename %q", filename)
	}

	sheet := "General Report"
	name, _ := f.GetCellValue(sheet, "A4")
	if name != "Kitchen Table" {
		t.Errorf("Expected 'Kitchen Table' in A4, got %q", name)
	}

	// (40 + 10) × 1.2 = 60
	total, _ := f.GetCellValue(sheet, "D4")
	if !strings.Contains(total, "60.00") {
		t.Errorf("Expected TVSH total 60.00, got %q", total)
	}

	// Only one row for this tenant inside the range, then blank row and TOTAL
	extra, _ := f.GetCellValue(sheet, "A5")
	if extra != "" {
		t.Errorf("Expected single data row, found extra value %q", extra)
	}
	label, _ := f.GetCellValue(sheet, "A6")
	if label != "TOTAL" {
		t.Errorf("Expected TOTAL row in A6, got %q", label)
	}
	grand, _ := f.GetCellValue(sheet, "D6")
	if !strings.Contains(grand, "60.00") {
		t.Errorf("Expected grand total 60.00, got %q", grand)
	}
}

func TestGeneralReportEmptyRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewReportService(repos.FinalProduct, repos.Product)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.GeneralReport(context.Background(), "user-a", from, to)
	if err == nil {
		t.Fatal("Expected error for empty range")
	}
	if !errors.Is(err, ErrBusinessRule) {
		t.Errorf("Expected business rule error, got %v", err)
	}
}

func TestInventoryReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewReportService(repos.FinalProduct, repos.Product)

	testutil.SeedProduct(t, db, "user-a", "Oak Panel", "OAK-001", "10.50", "100")

	f, filename, err := svc.InventoryReport(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()

	if !strings.HasPrefix(filename, "products_inventory_report_") {
		t.Errorf("Unexpected filename %q", filename)
	}

	sheet := "Products Inventory"
	name, _ := f.GetCellValue(sheet, "A4")
	if name != "Oak Panel" {
		t.Errorf("Expected 'Oak Panel' in A4, got %q", name)
	}
	barcode, _ := f.GetCellValue(sheet, "B4")
	if barcode != "OAK-001" {
		t.Errorf("Expected 'OAK-001' in B4, got %q", barcode)
	}
	price, _ := f.GetCellValue(sheet, "C4")
	if !strings.Contains(price, "10.50") {
		t.Errorf("Expected price 10.50, got %q", price)
	}
	// 10.50 × 100 m²
	stockValue, _ := f.GetCellValue(sheet, "F4")
	if !strings.Contains(stockValue, "1050.00") {
		t.Errorf("Expected stock value 1050.00, got %q", stockValue)
	}
}
