package ledger

import (
	"trishaw-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ReportRow - one sale joined with its vehicle. Ephemeral: recomputed on every
// render, never persisted.
type ReportRow struct {
	SaleID        string          `json:"sale_id"`
	VehicleID     string          `json:"vehicle_id"`
	ModelName     string          `json:"model_name"`
	SaleDate      string          `json:"sale_date"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Profit        decimal.Decimal `json:"profit"`
}

type ReportSummary struct {
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// BuildReport joins the sale collection to vehicles over an optional inclusive
// date range. Dates are ISO calendar-date strings, so plain lexicographic
// comparison is calendar comparison. A sale whose vehicle is gone reports
// model "Unknown" and purchase price 0 rather than failing. Rows keep the sale
// collection's own order; callers that want a different order sort the result
// themselves. Pure: reads live state, mutates nothing.
func (s *Service) BuildReport(fromDate, toDate string) ([]ReportRow, ReportSummary, error) {
	sales, err := s.store.LoadSales()
	if err != nil {
		return nil, ReportSummary{}, err
	}
	vehicles, err := s.store.LoadVehicles()
	if err != nil {
		return nil, ReportSummary{}, err
	}

	byID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	rows := make([]ReportRow, 0, len(sales))
	summary := ReportSummary{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
	}

	for _, sale := range sales {
		if fromDate != "" && sale.SaleDate < fromDate {
			continue
		}
		if toDate != "" && sale.SaleDate > toDate {
			continue
		}

		modelName := "Unknown"
		purchase := decimal.Zero
		if v, ok := byID[sale.VehicleID]; ok {
			modelName = v.ModelName
			purchase = v.PurchasePrice
		}

		profit := sale.SellingPrice.Sub(purchase)
		rows = append(rows, ReportRow{
			SaleID:        sale.ID,
			VehicleID:     sale.VehicleID,
			ModelName:     modelName,
			SaleDate:      sale.SaleDate,
			SellingPrice:  sale.SellingPrice,
			PurchasePrice: purchase,
			Profit:        profit,
		})

		summary.Count++
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.SellingPrice)
		summary.TotalCost = summary.TotalCost.Add(purchase)
		summary.TotalProfit = summary.TotalProfit.Add(profit)
	}

	return rows, summary, nil
}
