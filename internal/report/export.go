package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/sales/export?format=csv|xlsx&from=...&to=...
// Tabular layout: header row, one row per sale, a blank line, then the summary
// block. The purchase-price column (and total cost line) exist only while the
// reveal setting is on.
func ExportSalesReportHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, summary, err := svc.BuildReport(c.Query("from"), c.Query("to"))
		if err != nil {
			return httperr.From(err)
		}
		reveal, err := svc.RevealPurchasePrice()
		if err != nil {
			return httperr.From(err)
		}

		switch c.Query("format", "csv") {
		case "csv":
			data, err := exportCSV(rows, summary, reveal)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build CSV export")
			}
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.csv"`)
			return c.Send(data)
		case "xlsx":
			data, err := exportXLSX(rows, summary, reveal)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build XLSX export")
			}
			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.xlsx"`)
			return c.Send(data)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "format must be 'csv' or 'xlsx'")
		}
	}
}

func exportCSV(rows []ledger.ReportRow, summary ledger.ReportSummary, reveal bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Model", "Selling Price"}
	if reveal {
		header = append(header, "Purchase Price")
	}
	header = append(header, "Sale Date", "Profit")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{row.ModelName, row.SellingPrice.StringFixed(2)}
		if reveal {
			record = append(record, row.PurchasePrice.StringFixed(2))
		}
		record = append(record, row.SaleDate, row.Profit.StringFixed(2))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	// blank line between the table and the summary block
	buf.WriteString("\n")

	w = csv.NewWriter(&buf)
	summaryRecords := [][]string{
		{"Count", fmt.Sprint(summary.Count)},
		{"Total Revenue", summary.TotalRevenue.StringFixed(2)},
	}
	if reveal {
		summaryRecords = append(summaryRecords, []string{"Total Cost", summary.TotalCost.StringFixed(2)})
	}
	summaryRecords = append(summaryRecords, []string{"Total Profit", summary.TotalProfit.StringFixed(2)})
	if err := w.WriteAll(summaryRecords); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func exportXLSX(rows []ledger.ReportRow, summary ledger.ReportSummary, reveal bool) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	header := []interface{}{"Model", "Selling Price"}
	if reveal {
		header = append(header, "Purchase Price")
	}
	header = append(header, "Sale Date", "Profit")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowNo := 2
	for _, row := range rows {
		cells := []interface{}{row.ModelName, row.SellingPrice.InexactFloat64()}
		if reveal {
			cells = append(cells, row.PurchasePrice.InexactFloat64())
		}
		cells = append(cells, row.SaleDate, row.Profit.InexactFloat64())
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNo), &cells); err != nil {
			return nil, err
		}
		rowNo++
	}

	// blank row, then the summary block
	rowNo++
	summaryCells := [][]interface{}{
		{"Count", summary.Count},
		{"Total Revenue", summary.TotalRevenue.InexactFloat64()},
	}
	if reveal {
		summaryCells = append(summaryCells, []interface{}{"Total Cost", summary.TotalCost.InexactFloat64()})
	}
	summaryCells = append(summaryCells, []interface{}{"Total Profit", summary.TotalProfit.InexactFloat64()})
	for _, cells := range summaryCells {
		row := cells
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNo), &row); err != nil {
			return nil, err
		}
		rowNo++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
