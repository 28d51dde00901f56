package report

import (
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ReportRowResponse struct {
	SaleID        string           `json:"sale_id"`
	VehicleID     string           `json:"vehicle_id"`
	ModelName     string           `json:"model_name"`
	SaleDate      string           `json:"sale_date"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Profit        decimal.Decimal  `json:"profit"`
}

type ReportSummaryResponse struct {
	Count        int              `json:"count"`
	TotalRevenue decimal.Decimal  `json:"total_revenue"`
	TotalCost    *decimal.Decimal `json:"total_cost,omitempty"`
	TotalProfit  decimal.Decimal  `json:"total_profit"`
}

type SalesReportResponse struct {
	Rows    []ReportRowResponse   `json:"rows"`
	Summary ReportSummaryResponse `json:"summary"`
}

// GET /api/reports/sales?from=2024-01-01&to=2024-12-31
// Purchase price and total cost appear only while the reveal setting is on.
func SalesReportHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, summary, err := svc.BuildReport(c.Query("from"), c.Query("to"))
		if err != nil {
			return httperr.From(err)
		}
		reveal, err := svc.RevealPurchasePrice()
		if err != nil {
			return httperr.From(err)
		}

		res := SalesReportResponse{
			Rows: make([]ReportRowResponse, 0, len(rows)),
			Summary: ReportSummaryResponse{
				Count:        summary.Count,
				TotalRevenue: summary.TotalRevenue,
				TotalProfit:  summary.TotalProfit,
			},
		}
		if reveal {
			cost := summary.TotalCost
			res.Summary.TotalCost = &cost
		}

		for _, row := range rows {
			out := ReportRowResponse{
				SaleID:       row.SaleID,
				VehicleID:    row.VehicleID,
				ModelName:    row.ModelName,
				SaleDate:     row.SaleDate,
				SellingPrice: row.SellingPrice,
				Profit:       row.Profit,
			}
			if reveal {
				purchase := row.PurchasePrice
				out.PurchasePrice = &purchase
			}
			res.Rows = append(res.Rows, out)
		}

		return c.JSON(res)
	}
}
