package inventory

import (
	"errors"
	"fmt"

	"trishaw-backend/internal/audit"
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"
	"trishaw-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type VehicleResponse struct {
	ID            string          `json:"id"`
	ModelName     string          `json:"model_name"`
	Year          int             `json:"year"`
	Registration  string          `json:"registration"`
	Color         string          `json:"color"`
	ChassisNo     string          `json:"chassis_no"`
	EngineNo      string          `json:"engine_no"`
	Notes         string          `json:"notes"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	AddedDate     string          `json:"added_date"`
	IsSold        bool            `json:"is_sold"`
}

func toVehicleResponse(v models.Vehicle, sold bool) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		ModelName:     v.ModelName,
		Year:          v.Year,
		Registration:  v.Registration,
		Color:         v.Color,
		ChassisNo:     v.ChassisNo,
		EngineNo:      v.EngineNo,
		Notes:         v.Notes,
		PurchasePrice: v.PurchasePrice,
		AddedDate:     v.AddedDate,
		IsSold:        sold,
	}
}

// GET /api/vehicles?available=true
// Insertion order; ?available=true narrows to unsold vehicles only.
func ListVehiclesHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			vehicles []models.Vehicle
			err      error
		)
		if c.Query("available") == "true" {
			vehicles, err = svc.AvailableVehicles()
		} else {
			vehicles, err = svc.Vehicles()
		}
		if err != nil {
			return httperr.From(err)
		}

		sold, err := svc.SoldVehicleIDs()
		if err != nil {
			return httperr.From(err)
		}

		res := make([]VehicleResponse, 0, len(vehicles))
		for _, v := range vehicles {
			res = append(res, toVehicleResponse(v, sold[v.ID]))
		}
		return c.JSON(res)
	}
}

// GET /api/vehicles/:id
func GetVehicleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.GetVehicle(c.Params("id"))
		if err != nil {
			return httperr.From(err)
		}
		sold, err := svc.IsSold(v.ID)
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(toVehicleResponse(v, sold))
	}
}

// POST /api/vehicles
func CreateVehicleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ledger.VehicleFields
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		v, err := svc.AddVehicle(body)
		if err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "vehicle",
			EntityID:    v.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Vehicle added: %s (%s)", v.ModelName, v.Registration),
			After:       v,
		}); logErr != nil {
			logger.LogError("inventory", "CreateVehicleHandler", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toVehicleResponse(v, false))
	}
}

// PUT /api/vehicles/:id
func UpdateVehicleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		before, err := svc.GetVehicle(id)
		if err != nil {
			return httperr.From(err)
		}

		var body ledger.VehicleFields
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		v, err := svc.UpdateVehicle(id, body)
		if err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "vehicle",
			EntityID:    v.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Vehicle updated: %s (%s)", v.ModelName, v.Registration),
			Before:      before,
			After:       v,
		}); logErr != nil {
			logger.LogError("inventory", "UpdateVehicleHandler", logErr)
		}

		sold, err := svc.IsSold(v.ID)
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(toVehicleResponse(v, sold))
	}
}

// DELETE /api/vehicles/:id?cascade=true
// Deleting a sold vehicle requires explicit cascade acknowledgment; without it
// the response carries requires_confirmation and nothing changes.
func DeleteVehicleHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		cascade := c.Query("cascade") == "true"

		before, err := svc.GetVehicle(id)
		if err != nil {
			return httperr.From(err)
		}

		if err := svc.DeleteVehicle(id, cascade); err != nil {
			if errors.Is(err, ledger.ErrRequiresConfirmation) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":                 err.Error(),
					"requires_confirmation": true,
				})
			}
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "vehicle",
			EntityID:    id,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Vehicle deleted: %s (%s)", before.ModelName, before.Registration),
			Before:      before,
		}); logErr != nil {
			logger.LogError("inventory", "DeleteVehicleHandler", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
