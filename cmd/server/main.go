package main

import (
	"strings"

	"trishaw-backend/internal/audit"
	"trishaw-backend/internal/auth"
	"trishaw-backend/internal/backup"
	"trishaw-backend/internal/billing"
	"trishaw-backend/internal/config"
	"trishaw-backend/internal/database"
	"trishaw-backend/internal/inventory"
	"trishaw-backend/internal/ledger"
	"trishaw-backend/internal/logger"
	"trishaw-backend/internal/report"
	"trishaw-backend/internal/sales"
	"trishaw-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	log := logger.Get()
	database.Init(cfg)

	store := ledger.NewGormStore(database.DB)
	svc := ledger.NewService(store, log)

	// First run: demonstration data + unlock passcode hash
	if err := svc.SeedIfEmpty(); err != nil {
		log.Fatalf("Could not seed demonstration data: %v", err)
	}
	if err := settings.EnsurePasscodeHash(svc, cfg); err != nil {
		log.Fatalf("Could not store the unlock passcode hash: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("Unexpected error: " + err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Vehicle inventory
	api.Get("/vehicles", inventory.ListVehiclesHandler(svc))
	api.Post("/vehicles", inventory.CreateVehicleHandler(svc))
	api.Get("/vehicles/:id", inventory.GetVehicleHandler(svc))
	api.Put("/vehicles/:id", inventory.UpdateVehicleHandler(svc))
	api.Delete("/vehicles/:id", inventory.DeleteVehicleHandler(svc))

	// Sales ledger
	api.Get("/sales", sales.ListSalesHandler(svc))
	api.Post("/sales", sales.CreateSaleHandler(svc))
	api.Get("/sales/:id", sales.GetSaleHandler(svc))

	// Printable bill
	api.Get("/sales/:id/bill", billing.SaleBillHandler(svc))
	api.Get("/bill/current", billing.CurrentBillHandler(svc))

	// Profit report + export
	api.Get("/reports/sales", report.SalesReportHandler(svc))
	api.Get("/reports/sales/export", report.ExportSalesReportHandler(svc))

	// Settings (the toggle itself needs the unlock token)
	api.Post("/settings/unlock", settings.UnlockHandler(svc, cfg))
	api.Get("/settings/reveal-purchase-price", settings.GetRevealHandler(svc))
	api.Put("/settings/reveal-purchase-price", auth.UnlockMiddleware(cfg), settings.UpdateRevealHandler(svc))

	// Backup / restore
	api.Get("/backup/export", backup.ExportHandler(svc))
	api.Post("/backup/import", backup.ImportHandler(svc))
	api.Post("/backup/reset", backup.ResetHandler(svc))

	// Audit logs
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Info("Server listening on port " + cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
