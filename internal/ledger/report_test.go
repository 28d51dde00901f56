package ledger

import (
	"testing"

	"trishaw-backend/internal/models"

	"github.com/shopspring/decimal"
)

func addVehicleWith(t *testing.T, svc *Service, registration string, price int64) models.Vehicle {
	t.Helper()
	f := vehicleFields()
	f.Registration = registration
	f.PurchasePrice = decimal.NewFromInt(price)
	v, err := svc.AddVehicle(f)
	if err != nil {
		t.Fatalf("AddVehicle error: %v", err)
	}
	return v
}

func recordSaleOn(t *testing.T, svc *Service, vehicleID, date string, price int64) models.Sale {
	t.Helper()
	f := saleFields(vehicleID)
	f.SaleDate = date
	f.SellingPrice = decimal.NewFromInt(price)
	s, err := svc.RecordSale(f)
	if err != nil {
		t.Fatalf("RecordSale error: %v", err)
	}
	return s
}

func TestBuildReport_Empty(t *testing.T) {
	svc, _ := testService()

	rows, summary, err := svc.BuildReport("", "")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if summary.Count != 0 || !summary.TotalRevenue.IsZero() || !summary.TotalCost.IsZero() || !summary.TotalProfit.IsZero() {
		t.Fatalf("empty report must have zero summary, got %+v", summary)
	}
}

func TestBuildReport_TotalsIdentity(t *testing.T) {
	svc, _ := testService()

	v1 := addVehicleWith(t, svc, "A-1", 85000)
	v2 := addVehicleWith(t, svc, "A-2", 92000)
	v3 := addVehicleWith(t, svc, "A-3", 50000)
	recordSaleOn(t, svc, v1.ID, "2024-01-05", 95000)
	recordSaleOn(t, svc, v2.ID, "2024-02-10", 90000) // sold at a loss
	recordSaleOn(t, svc, v3.ID, "2024-03-20", 61500)

	rows, summary, err := svc.BuildReport("", "")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != summary.Count || summary.Count != 3 {
		t.Fatalf("count = %d, rows = %d, want 3", summary.Count, len(rows))
	}
	if !summary.TotalProfit.Equal(summary.TotalRevenue.Sub(summary.TotalCost)) {
		t.Fatalf("totalProfit (%s) != totalRevenue (%s) - totalCost (%s)",
			summary.TotalProfit, summary.TotalRevenue, summary.TotalCost)
	}
}

func TestBuildReport_DateRangeInclusive(t *testing.T) {
	svc, _ := testService()

	v1 := addVehicleWith(t, svc, "A-1", 80000)
	v2 := addVehicleWith(t, svc, "A-2", 80000)
	v3 := addVehicleWith(t, svc, "A-3", 80000)
	v4 := addVehicleWith(t, svc, "A-4", 80000)
	recordSaleOn(t, svc, v1.ID, "2024-01-31", 90000)
	recordSaleOn(t, svc, v2.ID, "2024-02-01", 90000)
	recordSaleOn(t, svc, v3.ID, "2024-02-29", 90000)
	recordSaleOn(t, svc, v4.ID, "2024-03-01", 90000)

	rows, summary, err := svc.BuildReport("2024-02-01", "2024-02-29")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows in February, got %d", len(rows))
	}
	if rows[0].SaleDate != "2024-02-01" || rows[1].SaleDate != "2024-02-29" {
		t.Fatalf("bounds must be inclusive, got %s and %s", rows[0].SaleDate, rows[1].SaleDate)
	}
	if summary.Count != 2 {
		t.Fatalf("summary count = %d, want 2", summary.Count)
	}

	// one-sided bounds
	rows, _, err = svc.BuildReport("2024-02-29", "")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows from 2024-02-29 on, got %d", len(rows))
	}
	rows, _, err = svc.BuildReport("", "2024-01-31")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row up to 2024-01-31, got %d", len(rows))
	}
}

func TestBuildReport_MissingVehicleIsUnknown(t *testing.T) {
	svc, store := testService()

	// a sale pointing at a vehicle that no longer exists can only arrive via a
	// corrupted import; reporting tolerates it
	store.sales = []models.Sale{{
		ID:           "orphan-sale",
		Position:     1,
		VehicleID:    "gone-vehicle",
		SaleDate:     "2024-02-01",
		SellingPrice: decimal.NewFromInt(95000),
		Method:       models.PaymentCash,
		BuyerName:    "K. Perera",
	}}

	rows, summary, err := svc.BuildReport("", "")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ModelName != "Unknown" {
		t.Fatalf("model = %q, want Unknown", rows[0].ModelName)
	}
	if !rows[0].PurchasePrice.IsZero() {
		t.Fatalf("purchase price = %s, want 0", rows[0].PurchasePrice)
	}
	if !rows[0].Profit.Equal(decimal.NewFromInt(95000)) {
		t.Fatalf("profit = %s, want 95000", rows[0].Profit)
	}
	if !summary.TotalCost.IsZero() {
		t.Fatalf("total cost = %s, want 0", summary.TotalCost)
	}
}

func TestBuildReport_PreservesCollectionOrder(t *testing.T) {
	svc, _ := testService()

	v1 := addVehicleWith(t, svc, "A-1", 80000)
	v2 := addVehicleWith(t, svc, "A-2", 80000)
	// recorded out of calendar order on purpose
	s1 := recordSaleOn(t, svc, v1.ID, "2024-03-01", 90000)
	s2 := recordSaleOn(t, svc, v2.ID, "2024-01-01", 90000)

	rows, _, err := svc.BuildReport("", "")
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if rows[0].SaleID != s1.ID || rows[1].SaleID != s2.ID {
		t.Fatal("report must keep the sale collection's insertion order, not sort by date")
	}
}
