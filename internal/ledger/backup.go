package ledger

import (
	"encoding/json"
	"time"

	"trishaw-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ExportPayload - the full-state backup shape: {vehicles, sales, exportDate}.
type ExportPayload struct {
	Vehicles   []models.Vehicle `json:"vehicles"`
	Sales      []models.Sale    `json:"sales"`
	ExportDate string           `json:"exportDate"`
}

type ImportResult struct {
	VehiclesImported int  `json:"vehicles_imported"`
	SalesImported    int  `json:"sales_imported"`
	VehiclesSkipped  bool `json:"vehicles_skipped"`
	SalesSkipped     bool `json:"sales_skipped"`
}

func (s *Service) ExportAll() (ExportPayload, error) {
	vehicles, err := s.store.LoadVehicles()
	if err != nil {
		return ExportPayload{}, err
	}
	sales, err := s.store.LoadSales()
	if err != nil {
		return ExportPayload{}, err
	}
	return ExportPayload{
		Vehicles:   vehicles,
		Sales:      sales,
		ExportDate: time.Now().Format(time.RFC3339),
	}, nil
}

type importPayload struct {
	Vehicles json.RawMessage `json:"vehicles"`
	Sales    json.RawMessage `json:"sales"`
}

// ImportAll restores a full-state backup. Each collection is replaced wholesale
// only when its input is a well-formed list; an absent or malformed collection
// is skipped silently and the stored one stays untouched. A single bad record
// poisons its whole list - nothing is partially ingested. Only an unparseable
// outer payload is an error.
func (s *Service) ImportAll(raw []byte) (ImportResult, error) {
	var payload importPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ImportResult{}, &ImportFormatError{Reason: "payload is not a JSON object"}
	}

	result := ImportResult{VehiclesSkipped: true, SalesSkipped: true}

	if vehicles, ok := decodeVehicleList(payload.Vehicles); ok {
		if err := s.store.ReplaceVehicles(vehicles); err != nil {
			return ImportResult{}, err
		}
		result.VehiclesImported = len(vehicles)
		result.VehiclesSkipped = false
		s.log.WithField("count", len(vehicles)).Info("vehicle collection imported")
	}

	if sales, ok := decodeSaleList(payload.Sales); ok {
		if err := s.store.ReplaceSales(sales); err != nil {
			return ImportResult{}, err
		}
		result.SalesImported = len(sales)
		result.SalesSkipped = false
		s.log.WithField("count", len(sales)).Info("sale collection imported")
	}

	return result, nil
}

func decodeVehicleList(raw json.RawMessage) ([]models.Vehicle, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var vehicles []models.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, false
	}
	seen := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		if !validVehicleRecord(v) {
			return nil, false
		}
		if seen[v.ID] {
			return nil, false
		}
		seen[v.ID] = true
	}
	return vehicles, true
}

// validVehicleRecord mirrors the required set of the input validator: a record
// that could never have been created through AddVehicle poisons its list.
func validVehicleRecord(v models.Vehicle) bool {
	if v.ID == "" || v.ModelName == "" || v.AddedDate == "" {
		return false
	}
	if v.Registration == "" || v.Color == "" || v.ChassisNo == "" || v.EngineNo == "" {
		return false
	}
	if v.Year < 1900 || v.Year > 2100 {
		return false
	}
	return v.PurchasePrice.GreaterThan(decimal.Zero)
}

func decodeSaleList(raw json.RawMessage) ([]models.Sale, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var sales []models.Sale
	if err := json.Unmarshal(raw, &sales); err != nil {
		return nil, false
	}
	seenID := make(map[string]bool, len(sales))
	seenVehicle := make(map[string]bool, len(sales))
	for _, sale := range sales {
		if !validSaleRecord(sale) {
			return nil, false
		}
		if seenID[sale.ID] {
			return nil, false
		}
		// One sale per vehicle holds inside a backup too.
		if seenVehicle[sale.VehicleID] {
			return nil, false
		}
		seenID[sale.ID] = true
		seenVehicle[sale.VehicleID] = true
	}
	return sales, true
}

// validSaleRecord mirrors the required set of the input validator. A sale with
// a zero price or an unknown payment label would corrupt report totals and
// bills, so it poisons its whole list.
func validSaleRecord(s models.Sale) bool {
	if s.ID == "" || s.VehicleID == "" || s.SaleDate == "" {
		return false
	}
	if !s.SellingPrice.GreaterThan(decimal.Zero) {
		return false
	}
	switch s.Method {
	case models.PaymentCash, models.PaymentBankTransfer, models.PaymentCheque, models.PaymentLeasing:
	default:
		return false
	}
	return s.BuyerName != "" && s.BuyerAddress != "" && s.BuyerNIC != "" && s.BuyerPhone != ""
}

// ResetToSeedData clears both collections and loads the fixed demonstration
// dataset. Used for first run and explicit reset.
func (s *Service) ResetToSeedData() error {
	vehicles, sales := SeedData()
	if err := s.store.ReplaceVehicles(vehicles); err != nil {
		return err
	}
	if err := s.store.ReplaceSales(sales); err != nil {
		return err
	}
	if err := s.store.SetSetting(models.SettingCurrentSaleID, ""); err != nil {
		return err
	}
	s.log.Info("collections reset to seed data")
	return nil
}

// SeedIfEmpty loads the demonstration dataset on a fresh install only.
func (s *Service) SeedIfEmpty() error {
	vehicles, err := s.store.LoadVehicles()
	if err != nil {
		return err
	}
	sales, err := s.store.LoadSales()
	if err != nil {
		return err
	}
	if len(vehicles) > 0 || len(sales) > 0 {
		return nil
	}
	return s.ResetToSeedData()
}
