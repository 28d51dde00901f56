package settings

import (
	"trishaw-backend/internal/audit"
	"trishaw-backend/internal/auth"
	"trishaw-backend/internal/config"
	"trishaw-backend/internal/httperr"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"
	"trishaw-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UnlockRequest struct {
	Passcode string `json:"passcode"`
}

type RevealRequest struct {
	Reveal bool `json:"reveal"`
}

// EnsurePasscodeHash stores the bcrypt hash of the configured unlock passcode
// on first run. The plaintext never touches the database.
func EnsurePasscodeHash(svc *ledger.Service, cfg *config.Config) error {
	existing, err := svc.GetSetting(models.SettingUnlockPasscodeHash)
	if err != nil {
		return err
	}
	if existing != "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.UnlockPasscode), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.SetSetting(models.SettingUnlockPasscodeHash, string(hash))
}

// POST /api/settings/unlock
// Trades the operator passcode for a short-lived token that authorizes
// toggling the reveal-purchase-price setting.
func UnlockHandler(svc *ledger.Service, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UnlockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		hash, err := svc.GetSetting(models.SettingUnlockPasscodeHash)
		if err != nil {
			return httperr.From(err)
		}
		if hash == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Unlock passcode is not configured")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Passcode)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong passcode")
		}

		token, err := auth.GenerateUnlockToken(cfg.JWTSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue unlock token")
		}

		return c.JSON(fiber.Map{"token": token})
	}
}

// GET /api/settings/reveal-purchase-price
func GetRevealHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reveal, err := svc.RevealPurchasePrice()
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(fiber.Map{"reveal": reveal})
	}
}

// PUT /api/settings/reveal-purchase-price (unlock token required)
// Presentation-only flag; the underlying records never change.
func UpdateRevealHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RevealRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before, err := svc.RevealPurchasePrice()
		if err != nil {
			return httperr.From(err)
		}

		if err := svc.SetRevealPurchasePrice(body.Reveal); err != nil {
			return httperr.From(err)
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			EntityType:  "setting",
			EntityID:    models.SettingRevealPurchasePrice,
			Action:      models.AuditActionUpdate,
			Description: "Reveal-purchase-price setting changed",
			Before:      fiber.Map{"reveal": before},
			After:       fiber.Map{"reveal": body.Reveal},
		}); logErr != nil {
			logger.LogError("settings", "UpdateRevealHandler", logErr)
		}

		return c.JSON(fiber.Map{"reveal": body.Reveal})
	}
}
