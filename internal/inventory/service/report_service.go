package service

import (
	"context"
	"fmt"
	"time"

	"github.com/inerttila/inventory-hub/internal/inventory/entity"
	"github.com/inerttila/inventory-hub/internal/inventory/repository"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	finalProductRepo *repository.FinalProductRepository
	productRepo      *repository.ProductRepository
}

func NewReportService(finalProductRepo *repository.FinalProductRepository, productRepo *repository.ProductRepository) *ReportService {
	return &ReportService{
		finalProductRepo: finalProductRepo,
		productRepo:      productRepo,
	}
}

var generalReportHeaders = []string{"Final Product", "Date", "State", "Total"}

var inventoryReportHeaders = []string{"Name", "Barcode", "Price per m²", "Square Meters (m²)", "Brand", "Stock Value"}

// reportDate 报表用生效日期：优先录入的业务日期，缺省回退创建时间
func reportDate(fp *entity.FinalProduct) time.Time {
	if fp.Date != nil {
		return *fp.Date
	}
	return fp.CreatedAt
}

func currencySymbol(c *entity.Currency) string {
	if c != nil && c.Symbol != "" {
		return c.Symbol
	}
	return "$"
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#0066CC"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	return style
}

func titleStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "0000FF"},
	})
	return style
}

// GeneralReport 生成指定日期区间的成品汇总报表
// 每行一个成品：名称/日期/状态/含TVSH合计，尾部追加总计行
func (s *ReportService) GeneralReport(ctx context.Context, userID string, from, to time.Time) (*excelize.File, string, error) {
	finalProducts, err := s.finalProductRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("list final products: %w", err)
	}

	var filtered []entity.FinalProduct
	for i := range finalProducts {
		d := reportDate(&finalProducts[i])
		if d.Before(from) || d.After(to) {
			continue
		}
		filtered = append(filtered, finalProducts[i])
	}
	if len(filtered) == 0 {
		return nil, "", RuleError("No final products found in the selected date range")
	}

	f := excelize.NewFile()
	sheet := "General Report"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "General report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle(f))

	headStyle := headerStyle(f)
	for i, h := range generalReportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "3"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headStyle)
	}

	grandTotal := decimal.Zero
	for rowIdx := range filtered {
		fp := &filtered[rowIdx]
		row := rowIdx + 4

		total := Total(fp)
		grandTotal = grandTotal.Add(total)

		state := "Pending"
		if fp.Status == entity.StatusDone {
			state = "Done"
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fp.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), reportDate(fp).Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), state)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%s%s", currencySymbol(fp.Currency), total.StringFixed(2)))
	}

	// 空行之后总计行
	totalRow := len(filtered) + 5
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), fmt.Sprintf("$%s", grandTotal.StringFixed(2)))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow), headStyle)

	colWidths := []float64{30, 15, 12, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("general_report_%s_to_%s_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"), time.Now().Format("2006-01-02"))
	return f, filename, nil
}

// InventoryReport 生成产品库存报表
func (s *ReportService) InventoryReport(ctx context.Context, userID string) (*excelize.File, string, error) {
	products, err := s.productRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return nil, "", RuleError("No products found in inventory")
	}

	f := excelize.NewFile()
	sheet := "Products Inventory"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Products Inventory Report")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle(f))

	headStyle := headerStyle(f)
	for i, h := range inventoryReportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "3"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headStyle)
	}

	for rowIdx := range products {
		p := &products[rowIdx]
		row := rowIdx + 4

		barcode := p.Barcode
		if barcode == "" {
			barcode = "N/A"
		}
		brandName := "N/A"
		if p.Brand != nil {
			brandName = p.Brand.Name
		}

		// 库存价值 = 单价 × 可用面积
		stockValue := p.PricePerSquareMeter.Mul(p.SquareMeters)

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), barcode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%s%s", currencySymbol(p.Currency), p.PricePerSquareMeter.StringFixed(2)))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.SquareMeters.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), brandName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("%s%s", currencySymbol(p.Currency), stockValue.StringFixed(2)))
	}

	colWidths := []float64{30, 20, 18, 20, 20, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("products_inventory_report_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}
