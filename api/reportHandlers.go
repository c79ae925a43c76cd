package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hotel_analytics/config"
	"github.com/mmdatafocus/hotel_analytics/models/reports"
	"github.com/mmdatafocus/hotel_analytics/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func init() {
	// KPI values go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ReportService is implemented by *reports.Engine.
type ReportService interface {
	RevenueByProperty(ctx context.Context, params reports.RevenueByPropertyParams) ([]*reports.RevenueByPropertyRow, error)
	PerformanceByRegion(ctx context.Context, params reports.PerformanceByRegionParams) ([]*reports.RegionPerformanceRow, error)
	ExpensesByDepartment(ctx context.Context, params reports.ExpensesByDepartmentParams) ([]*reports.DepartmentExpenseRow, error)
	QuarterlyPerformance(ctx context.Context, params reports.QuarterlyPerformanceParams) ([]*reports.QuarterlyPerformanceRow, error)
	BrandPerformance(ctx context.Context, params reports.BrandPerformanceParams) ([]*reports.BrandPerformanceRow, error)
	OccupancyByProperty(ctx context.Context, params reports.OccupancyByPropertyParams) ([]*reports.OccupancyIndexRow, error)
	MarketTrends(ctx context.Context, params reports.MarketTrendsParams) ([]*reports.MarketTrendRow, error)
	MarketComparison(ctx context.Context, params reports.MarketComparisonParams) ([]*reports.MarketComparisonRow, error)
	BudgetVsActual(ctx context.Context, params reports.BudgetVsActualParams) ([]*reports.BudgetVsActualRow, error)
}

// RegisterReportRoutes mounts one GET endpoint per report on rg.
func RegisterReportRoutes(rg *gin.RouterGroup, svc ReportService, logger *logrus.Logger) {
	if logger == nil {
		logger = config.GetLogger()
	}
	rg.GET("/revenue-by-property", reportHandler("revenue-by-property", logger, svc.RevenueByProperty))
	rg.GET("/performance-by-region", reportHandler("performance-by-region", logger, svc.PerformanceByRegion))
	rg.GET("/expenses-by-department", reportHandler("expenses-by-department", logger, svc.ExpensesByDepartment))
	rg.GET("/quarterly-performance", reportHandler("quarterly-performance", logger, svc.QuarterlyPerformance))
	rg.GET("/brand-performance", reportHandler("brand-performance", logger, svc.BrandPerformance))
	rg.GET("/occupancy-by-property", reportHandler("occupancy-by-property", logger, svc.OccupancyByProperty))
	rg.GET("/market-trends", reportHandler("market-trends", logger, svc.MarketTrends))
	rg.GET("/market-comparison", reportHandler("market-comparison", logger, svc.MarketComparison))
	rg.GET("/budget-vs-actual", reportHandler("budget-vs-actual", logger, svc.BudgetVsActual))
}

// reportHandler binds the query string to P, runs the report and renders the
// rows as JSON, or as a workbook when format=xlsx.
func reportHandler[P any, R reports.ExcelExporter](
	name string,
	logger *logrus.Logger,
	run func(context.Context, P) ([]R, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params P
		if err := c.ShouldBindQuery(&params); err != nil {
			writeError(c, logger, name, params, utils.InvalidParameter("%s", err.Error()))
			return
		}

		rows, err := run(c.Request.Context(), params)
		if err != nil {
			writeError(c, logger, name, params, err)
			return
		}
		if rows == nil {
			rows = []R{}
		}

		if strings.EqualFold(c.Query("format"), "xlsx") {
			var buf bytes.Buffer
			if err := reports.WriteExcel(&buf, name, rows); err != nil {
				writeError(c, logger, name, params, fmt.Errorf("%s: write excel: %w", name, err))
				return
			}
			c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
			c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"report": name,
			"rows":   rows,
		})
	}
}

func writeError(c *gin.Context, logger *logrus.Logger, name string, params any, err error) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  utils.ErrInvalidParameter.Error(),
			"fields": ve.Fields,
		})
	case errors.Is(err, utils.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		config.LogError(logger, "reportHandlers.go", "reportHandler", name, params, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
