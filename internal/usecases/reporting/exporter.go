package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// exportColumns is the fixed column order of the sales report.
var exportColumns = []string{
	"Date", "Type", "Talent", "Account", "Product/Context",
	"Value", "Commission", "Qty", "Views", "Clicks",
}

func (s *Service) ExportSalesCSV(ctx context.Context, filters *domain.ReportFilters) ([]byte, string, error) {
	sales, err := s.fetchSales(filters)
	if err != nil {
		return nil, "", err
	}

	return []byte(RenderCSV(sales)), exportFilename(filters, "csv"), nil
}

func (s *Service) ExportSalesXLSX(ctx context.Context, filters *domain.ReportFilters) ([]byte, string, error) {
	sales, err := s.fetchSales(filters)
	if err != nil {
		return nil, "", err
	}

	payload, err := renderXLSX(sales)
	if err != nil {
		return nil, "", err
	}

	return payload, exportFilename(filters, "xlsx"), nil
}

// RenderCSV renders sales as CSV text. Missing text fields render as "-",
// missing numeric fields as 0, and the value column follows the
// kind-dependent GMV/revenue selection.
//
// Field values are written as-is, without delimiter escaping, to stay
// byte-compatible with the exports consumers already ingest.
func RenderCSV(sales []*domain.Sale) string {
	var b strings.Builder

	b.WriteString(strings.Join(exportColumns, ","))
	b.WriteByte('\n')

	for _, sale := range sales {
		b.WriteString(strings.Join(saleRow(sale), ","))
		b.WriteByte('\n')
	}

	return b.String()
}

func renderXLSX(sales []*domain.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, name := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for i, sale := range sales {
		for col, value := range saleRow(sale) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func saleRow(sale *domain.Sale) []string {
	return []string{
		orDash(sale.Date),
		orDash(sale.Kind),
		orDash(sale.TalentName),
		orDash(sale.AccountName),
		orDash(sale.ProductName),
		strconv.FormatInt(sale.Value(), 10),
		strconv.FormatInt(sale.Commission, 10),
		strconv.FormatInt(sale.Quantity, 10),
		strconv.FormatInt(sale.ProductViews, 10),
		strconv.FormatInt(sale.ProductClicks, 10),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
