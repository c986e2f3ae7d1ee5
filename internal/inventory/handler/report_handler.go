package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inerttila/inventory-hub/internal/inventory/service"
	"github.com/xuri/excelize/v2"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// General GET /api/reports/general?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *ReportHandler) General(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		BadRequest(c, "Query parameter 'start_date' must be in YYYY-MM-DD format")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		BadRequest(c, "Query parameter 'end_date' must be in YYYY-MM-DD format")
		return
	}
	// 区间含当天
	to = to.Add(24*time.Hour - time.Nanosecond)

	f, filename, err := h.svc.GeneralReport(c.Request.Context(), GetUserID(c), from, to)
	if err != nil {
		RespondError(c, err)
		return
	}
	writeExcel(c, f, filename)
}

// Inventory GET /api/reports/products
func (h *ReportHandler) Inventory(c *gin.Context) {
	f, filename, err := h.svc.InventoryReport(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	writeExcel(c, f, filename)
}

func writeExcel(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
