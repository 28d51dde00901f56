package billing

import (
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
)

// GET /api/sales/:id/bill
// Renders the receipt and makes this sale the current bill handoff.
func SaleBillHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, vehicle, err := svc.ResolveSale(c.Params("id"))
		if err != nil {
			return httperr.From(err)
		}

		if err := svc.SetCurrentSale(sale.ID); err != nil {
			// presentation continues; the handoff slot is convenience state
			logger.LogError("billing", "SaleBillHandler", err)
		}

		bill, err := FormatBill(sale, vehicle)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render the bill")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(bill)
	}
}

// GET /api/bill/current
// Renders the receipt for whatever sale currently sits in the handoff slot
// (the most recently created sale or the last explicitly billed one).
func CurrentBillHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, vehicle, err := svc.CurrentSale()
		if err != nil {
			return httperr.From(err)
		}
		bill, err := FormatBill(sale, vehicle)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render the bill")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(bill)
	}
}
