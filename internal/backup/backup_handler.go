package backup

import (
	"fmt"

	"trishaw-backend/internal/audit"
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"
	"trishaw-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/backup/export
func ExportHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := svc.ExportAll()
		if err != nil {
			return httperr.From(err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="trishaw-backup.json"`)
		return c.JSON(payload)
	}
}

// POST /api/backup/import
// Body is the full-state backup shape. A malformed or absent collection is
// skipped without touching the stored one; the response says what happened.
func ImportHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.ImportAll(c.Body())
		if err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "backup",
			EntityID:    "",
			Action:      models.AuditActionImport,
			Description: fmt.Sprintf("Backup imported: %d vehicles, %d sales", result.VehiclesImported, result.SalesImported),
			After:       result,
		}); logErr != nil {
			logger.LogError("backup", "ImportHandler", logErr)
		}

		return c.JSON(result)
	}
}

// POST /api/backup/reset
// Clears both collections and reloads the demonstration dataset.
func ResetHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.ResetToSeedData(); err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "backup",
			EntityID:    "",
			Action:      models.AuditActionReset,
			Description: "Collections reset to seed data",
		}); logErr != nil {
			logger.LogError("backup", "ResetHandler", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
