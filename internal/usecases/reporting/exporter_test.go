package reporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestRenderCSV_Header(t *testing.T) {
	out := RenderCSV(nil)

	assert.Equal(t, "Date,Type,Talent,Account,Product/Context,Value,Commission,Qty,Views,Clicks\n", out)
}

func TestRenderCSV_GeneralSaleRow(t *testing.T) {
	sales := []*domain.Sale{
		{
			Date:       "2024-01-05",
			Kind:       domain.SaleKindGeneral,
			TalentName: "Ana",
			GMV:        100000,
			Commission: 10000,
			Quantity:   2,
		},
	}

	out := RenderCSV(sales)

	assert.Equal(t,
		"Date,Type,Talent,Account,Product/Context,Value,Commission,Qty,Views,Clicks\n"+
			"2024-01-05,general,Ana,-,-,100000,10000,2,0,0\n",
		out)
}

func TestRenderCSV_ContentSaleUsesRevenue(t *testing.T) {
	sales := []*domain.Sale{
		{
			Date:          "2024-02-10",
			Kind:          domain.SaleKindContent,
			TalentName:    "Bia",
			AccountName:   "bia.shop",
			ProductName:   "Serum",
			Revenue:       75000,
			GMV:           999999, // must be ignored for content sales
			Commission:    7500,
			Quantity:      1,
			ProductViews:  1200,
			ProductClicks: 80,
		},
	}

	out := RenderCSV(sales)

	assert.Equal(t,
		"Date,Type,Talent,Account,Product/Context,Value,Commission,Qty,Views,Clicks\n"+
			"2024-02-10,content,Bia,bia.shop,Serum,75000,7500,1,1200,80\n",
		out)
}

func TestRenderCSV_ValuesAreNotEscaped(t *testing.T) {
	// Field values go out as-is. A comma inside a name shifts columns, which
	// matches the files consumers already ingest.
	sales := []*domain.Sale{
		{
			Date:        "2024-01-05",
			Kind:        domain.SaleKindGeneral,
			TalentName:  "Ana, Jr",
			AccountName: "ana.store",
			GMV:         100,
		},
	}

	out := RenderCSV(sales)

	assert.Contains(t, out, "2024-01-05,general,Ana, Jr,ana.store,-,100,0,0,0,0\n")
}

func TestExportFilename(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	ranged := &domain.ReportFilters{StartDate: &start, EndDate: &end}
	assert.Equal(t, "sales_report_2024-01-01_to_2024-01-31.csv", exportFilename(ranged, "csv"))

	allTime := &domain.ReportFilters{}
	assert.Equal(t, "sales_report_all_time.xlsx", exportFilename(allTime, "xlsx"))
}

func TestRenderXLSX(t *testing.T) {
	sales := []*domain.Sale{
		{
			Date:       "2024-01-05",
			Kind:       domain.SaleKindGeneral,
			TalentName: "Ana",
			GMV:        100000,
			Commission: 10000,
			Quantity:   2,
		},
	}

	payload, err := renderXLSX(sales)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, []string{
		"2024-01-05", "general", "Ana", "-", "-", "100000", "10000", "2", "0", "0",
	}, rows[1])
}
