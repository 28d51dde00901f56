package sales

import (
	"fmt"
	"sort"

	"trishaw-backend/internal/audit"
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"
	"trishaw-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SaleResponse struct {
	ID           string          `json:"id"`
	VehicleID    string          `json:"vehicle_id"`
	ModelName    string          `json:"model_name"`
	SaleDate     string          `json:"sale_date"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Method       string          `json:"payment_method"`
	BuyerName    string          `json:"buyer_name"`
	BuyerAddress string          `json:"buyer_address"`
	BuyerNIC     string          `json:"buyer_nic"`
	BuyerPhone   string          `json:"buyer_phone"`
	Notes        string          `json:"notes"`
}

func toSaleResponse(s models.Sale, modelName string) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		VehicleID:    s.VehicleID,
		ModelName:    modelName,
		SaleDate:     s.SaleDate,
		SellingPrice: s.SellingPrice,
		Method:       string(s.Method),
		BuyerName:    s.BuyerName,
		BuyerAddress: s.BuyerAddress,
		BuyerNIC:     s.BuyerNIC,
		BuyerPhone:   s.BuyerPhone,
		Notes:        s.Notes,
	}
}

// POST /api/sales
func CreateSaleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ledger.SaleFields
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sale, err := svc.RecordSale(body)
		if err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Sale recorded for vehicle %s: %s to %s", sale.VehicleID, sale.SellingPrice.StringFixed(2), sale.BuyerName),
			After:       sale,
		}); logErr != nil {
			logger.LogError("sales", "CreateSaleHandler", logErr)
		}

		vehicle, err := svc.GetVehicle(sale.VehicleID)
		if err != nil {
			// the sale is committed either way
			return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale, "Unknown"))
		}
		return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale, vehicle.ModelName))
	}
}

// GET /api/sales
// Listing convention is newest-first. The underlying collection stays in
// insertion order; only this view sorts.
func ListSalesHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		salesList, err := svc.Sales()
		if err != nil {
			return httperr.From(err)
		}
		vehicles, err := svc.Vehicles()
		if err != nil {
			return httperr.From(err)
		}

		modelByID := make(map[string]string, len(vehicles))
		for _, v := range vehicles {
			modelByID[v.ID] = v.ModelName
		}

		sort.SliceStable(salesList, func(i, j int) bool {
			if salesList[i].SaleDate != salesList[j].SaleDate {
				return salesList[i].SaleDate > salesList[j].SaleDate
			}
			return salesList[i].Position > salesList[j].Position
		})

		res := make([]SaleResponse, 0, len(salesList))
		for _, s := range salesList {
			modelName, ok := modelByID[s.VehicleID]
			if !ok {
				modelName = "Unknown"
			}
			res = append(res, toSaleResponse(s, modelName))
		}
		return c.JSON(res)
	}
}

// GET /api/sales/:id
func GetSaleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, vehicle, err := svc.ResolveSale(c.Params("id"))
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(toSaleResponse(sale, vehicle.ModelName))
	}
}
