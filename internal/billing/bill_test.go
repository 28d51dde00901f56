package billing

import (
	"strings"
	"testing"

	"trishaw-backend/internal/models"

	"github.com/shopspring/decimal"
)

func TestFormatBill(t *testing.T) {
	sale := models.Sale{
		ID:           "sale-1",
		VehicleID:    "veh-1",
		SaleDate:     "2024-02-01",
		SellingPrice: decimal.NewFromInt(95000),
		Method:       models.PaymentCash,
		BuyerName:    "K. Perera",
		BuyerAddress: "42/3 Temple Road, Kandy",
		BuyerNIC:     "871342276V",
		BuyerPhone:   "0771234567",
		Notes:        "Full payment on delivery",
	}
	vehicle := models.Vehicle{
		ID:           "veh-1",
		ModelName:    "Bajaj RE 4S",
		Year:         2021,
		Registration: "ABC-4521",
		Color:        "Red",
		ChassisNo:    "CH123",
		EngineNo:     "EN456",
	}

	bill, err := FormatBill(sale, vehicle)
	if err != nil {
		t.Fatalf("FormatBill error: %v", err)
	}

	for _, want := range []string{
		"sale-1", "2024-02-01", "Bajaj RE 4S", "2021", "ABC-4521",
		"K. Perera", "871342276V", "cash", "95000.00", "Full payment on delivery",
	} {
		if !strings.Contains(bill, want) {
			t.Errorf("bill is missing %q\n%s", want, bill)
		}
	}
}

func TestFormatBill_UnknownVehicle(t *testing.T) {
	sale := models.Sale{
		ID:           "sale-2",
		VehicleID:    "gone",
		SaleDate:     "2024-02-01",
		SellingPrice: decimal.NewFromInt(95000),
		Method:       models.PaymentCheque,
		BuyerName:    "B",
		BuyerAddress: "A",
		BuyerNIC:     "N",
		BuyerPhone:   "P",
	}
	vehicle := models.Vehicle{ID: "gone", ModelName: "Unknown"}

	bill, err := FormatBill(sale, vehicle)
	if err != nil {
		t.Fatalf("FormatBill error: %v", err)
	}
	if !strings.Contains(bill, "Unknown") {
		t.Fatal("bill must carry the Unknown placeholder model")
	}
	// empty identifying fields render as dashes, not blanks
	if !strings.Contains(bill, "Registration : -") {
		t.Fatalf("empty registration must render as a dash\n%s", bill)
	}
}
