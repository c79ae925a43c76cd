package reports

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExcelExporter is implemented by every report row type.
type ExcelExporter interface {
	ExcelHeadings() []string
	GetCellValues() []interface{}
}

func cellDecimal(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// WriteExcel renders rows as a single-sheet workbook. An empty result still
// carries the heading row.
func WriteExcel[R ExcelExporter](w io.Writer, sheetName string, rows []R) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	var zero R
	for i, h := range zero.ExcelHeadings() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, value := range row.GetCellValues() {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func (*RevenueByPropertyRow) ExcelHeadings() []string {
	return []string{"Property", "Year", "Month", "Revenue", "RevPAR", "ADR", "Occupancy"}
}

func (r *RevenueByPropertyRow) GetCellValues() []interface{} {
	return []interface{}{r.PropertyName, r.Year, r.MonthName, cellDecimal(r.Revenue), cellDecimal(r.Revpar), cellDecimal(r.Adr), cellDecimal(r.Occupancy)}
}

func (*RegionPerformanceRow) ExcelHeadings() []string {
	return []string{"Region", "TotalRevenue", "AvgRevPAR", "AvgOccupancy", "GrowthRate"}
}

func (r *RegionPerformanceRow) GetCellValues() []interface{} {
	return []interface{}{r.RegionName, cellDecimal(r.TotalRevenue), cellDecimal(r.AvgRevpar), cellDecimal(r.AvgOccupancy), cellDecimal(r.GrowthRate)}
}

func (*DepartmentExpenseRow) ExcelHeadings() []string {
	return []string{"Department", "TotalExpenses", "PercentageOfTotal", "YearOverYearChange"}
}

func (r *DepartmentExpenseRow) GetCellValues() []interface{} {
	return []interface{}{r.DepartmentName, cellDecimal(r.TotalExpenses), cellDecimal(r.PercentageOfTotal), cellDecimal(r.YearOverYearChange)}
}

func (*QuarterlyPerformanceRow) ExcelHeadings() []string {
	return []string{"Property", "Year", "Quarter", "Revenue", "Expenses", "Profit", "AvgOccupancy", "AvgADR", "AvgRevPAR"}
}

func (r *QuarterlyPerformanceRow) GetCellValues() []interface{} {
	return []interface{}{r.PropertyName, r.Year, r.Quarter, cellDecimal(r.Revenue), cellDecimal(r.Expenses), cellDecimal(r.Profit), cellDecimal(r.AvgOccupancy), cellDecimal(r.AvgAdr), cellDecimal(r.AvgRevpar)}
}

func (*BrandPerformanceRow) ExcelHeadings() []string {
	return []string{"Brand", "TotalRevenue", "AvgRevPAR", "AvgOccupancy", "PropertyCount"}
}

func (r *BrandPerformanceRow) GetCellValues() []interface{} {
	return []interface{}{r.BrandName, cellDecimal(r.TotalRevenue), cellDecimal(r.AvgRevpar), cellDecimal(r.AvgOccupancy), r.PropertyCount}
}

func (*OccupancyIndexRow) ExcelHeadings() []string {
	return []string{"Property", "Market", "Year", "Month", "PropertyOccupancy", "MarketOccupancy", "OccupancyIndex"}
}

func (r *OccupancyIndexRow) GetCellValues() []interface{} {
	return []interface{}{r.PropertyName, r.MarketName, r.Year, r.MonthName, cellDecimal(r.PropertyOccupancy), cellDecimal(r.MarketOccupancy), cellDecimal(r.OccupancyIndex)}
}

func (*MarketTrendRow) ExcelHeadings() []string {
	return []string{"Year", "AvgRevPAR", "AvgADR", "AvgOccupancy", "AvgSupplyGrowth", "AvgDemandGrowth"}
}

func (r *MarketTrendRow) GetCellValues() []interface{} {
	return []interface{}{r.Year, cellDecimal(r.AvgRevpar), cellDecimal(r.AvgAdr), cellDecimal(r.AvgOccupancy), cellDecimal(r.AvgSupplyGrowth), cellDecimal(r.AvgDemandGrowth)}
}

func (*MarketComparisonRow) ExcelHeadings() []string {
	return []string{"Rank", "Market", "AvgRevPAR", "AvgADR", "AvgOccupancy", "RevPARGrowth"}
}

func (r *MarketComparisonRow) GetCellValues() []interface{} {
	return []interface{}{r.Rank, r.MarketName, cellDecimal(r.AvgRevpar), cellDecimal(r.AvgAdr), cellDecimal(r.AvgOccupancy), cellDecimal(r.RevparGrowth)}
}

func (*BudgetVsActualRow) ExcelHeadings() []string {
	return []string{"Year", "Month", "ActualRevenue", "BudgetRevenue", "RevenueVariance", "RevenueVariance%", "ActualExpense", "BudgetExpense", "ExpenseVariance", "ExpenseVariance%"}
}

func (r *BudgetVsActualRow) GetCellValues() []interface{} {
	return []interface{}{r.Year, r.MonthName,
		cellDecimal(r.ActualRevenue), cellDecimal(r.BudgetRevenue), cellDecimal(r.RevenueVariance), cellDecimal(r.RevenueVariancePercentage),
		cellDecimal(r.ActualExpense), cellDecimal(r.BudgetExpense), cellDecimal(r.ExpenseVariance), cellDecimal(r.ExpenseVariancePercentage)}
}
