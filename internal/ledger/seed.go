package ledger

import (
	"trishaw-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedData builds the fixed demonstration dataset: three vehicles, one of them
// already sold.
func SeedData() ([]models.Vehicle, []models.Sale) {
	soldID := uuid.NewString()

	vehicles := []models.Vehicle{
		{
			ID:            soldID,
			ModelName:     "Bajaj RE 4S",
			Year:          2021,
			Registration:  "ABC-4521",
			Color:         "Red",
			ChassisNo:     "MD2A15AZ5MWE10341",
			EngineNo:      "AZMWME07712",
			Notes:         "Single owner, serviced at 20,000 km",
			PurchasePrice: decimal.NewFromInt(785000),
			AddedDate:     "2024-01-10",
		},
		{
			ID:            uuid.NewString(),
			ModelName:     "Piaggio Ape City",
			Year:          2019,
			Registration:  "QT-8830",
			Color:         "Blue",
			ChassisNo:     "MBX000APC1942277",
			EngineNo:      "G435M1277544",
			Notes:         "",
			PurchasePrice: decimal.NewFromInt(615000),
			AddedDate:     "2024-01-18",
		},
		{
			ID:            uuid.NewString(),
			ModelName:     "TVS King Deluxe",
			Year:          2022,
			Registration:  "ABD-1074",
			Color:         "Green",
			ChassisNo:     "MD6215BC8N1K00852",
			EngineNo:      "KD8N1852230",
			Notes:         "New tyres fitted",
			PurchasePrice: decimal.NewFromInt(842000),
			AddedDate:     "2024-02-02",
		},
	}

	sales := []models.Sale{
		{
			ID:           uuid.NewString(),
			VehicleID:    soldID,
			SaleDate:     "2024-02-15",
			SellingPrice: decimal.NewFromInt(865000),
			Method:       models.PaymentCash,
			BuyerName:    "K. Perera",
			BuyerAddress: "42/3 Temple Road, Kandy",
			BuyerNIC:     "871342276V",
			BuyerPhone:   "0771234567",
			Notes:        "Full payment on delivery",
		},
	}

	return vehicles, sales
}
