package ledger

import (
	"errors"
	"time"

	"trishaw-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service orchestrates every mutation of the vehicle and sale collections and
// owns the cross-record invariants: one sale per vehicle, cascade delete, and
// no partial writes on failure. All reads go straight to the store; nothing is
// cached across a mutation boundary.
type Service struct {
	store Store
	log   *logrus.Logger
}

func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// -------------------------
// Vehicle queries
// -------------------------

func (s *Service) Vehicles() ([]models.Vehicle, error) {
	return s.store.LoadVehicles()
}

func (s *Service) GetVehicle(id string) (models.Vehicle, error) {
	vehicles, err := s.store.LoadVehicles()
	if err != nil {
		return models.Vehicle{}, err
	}
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, &NotFoundError{ID: id}
}

// IsSold reports whether some persisted sale references the vehicle.
// Derived from a fresh read every time; never cached.
func (s *Service) IsSold(vehicleID string) (bool, error) {
	sold, err := s.soldSet()
	if err != nil {
		return false, err
	}
	return sold[vehicleID], nil
}

// AvailableVehicles returns the unsold vehicles in insertion order.
func (s *Service) AvailableVehicles() ([]models.Vehicle, error) {
	vehicles, err := s.store.LoadVehicles()
	if err != nil {
		return nil, err
	}
	sold, err := s.soldSet()
	if err != nil {
		return nil, err
	}
	available := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !sold[v.ID] {
			available = append(available, v)
		}
	}
	return available, nil
}

// SoldVehicleIDs returns the set of vehicle ids with a recorded sale.
func (s *Service) SoldVehicleIDs() (map[string]bool, error) {
	return s.soldSet()
}

func (s *Service) soldSet() (map[string]bool, error) {
	sales, err := s.store.LoadSales()
	if err != nil {
		return nil, err
	}
	sold := make(map[string]bool, len(sales))
	for _, sale := range sales {
		sold[sale.VehicleID] = true
	}
	return sold, nil
}

// -------------------------
// Vehicle lifecycle
// -------------------------

func (s *Service) AddVehicle(f VehicleFields) (models.Vehicle, error) {
	f = f.normalized()
	if err := ValidateVehicle(f); err != nil {
		return models.Vehicle{}, err
	}

	v := models.Vehicle{
		ID:            uuid.NewString(),
		ModelName:     f.ModelName,
		Year:          f.Year,
		Registration:  f.Registration,
		Color:         f.Color,
		ChassisNo:     f.ChassisNo,
		EngineNo:      f.EngineNo,
		Notes:         f.Notes,
		PurchasePrice: f.PurchasePrice,
		AddedDate:     time.Now().Format("2006-01-02"),
	}

	if err := s.store.AppendVehicle(&v); err != nil {
		return models.Vehicle{}, err
	}
	s.log.WithFields(logrus.Fields{"vehicle_id": v.ID, "model": v.ModelName}).Info("vehicle added")
	return v, nil
}

// UpdateVehicle re-validates every field and replaces the record in place.
// ID, AddedDate and insertion position survive untouched. Sold-state is not
// checked here: the sale references the vehicle by id, which field edits
// cannot disturb.
func (s *Service) UpdateVehicle(id string, f VehicleFields) (models.Vehicle, error) {
	current, err := s.GetVehicle(id)
	if err != nil {
		return models.Vehicle{}, err
	}

	f = f.normalized()
	if err := ValidateVehicle(f); err != nil {
		return models.Vehicle{}, err
	}

	current.ModelName = f.ModelName
	current.Year = f.Year
	current.Registration = f.Registration
	current.Color = f.Color
	current.ChassisNo = f.ChassisNo
	current.EngineNo = f.EngineNo
	current.Notes = f.Notes
	current.PurchasePrice = f.PurchasePrice

	if err := s.store.SaveVehicle(&current); err != nil {
		return models.Vehicle{}, err
	}
	s.log.WithFields(logrus.Fields{"vehicle_id": current.ID}).Info("vehicle updated")
	return current, nil
}

// DeleteVehicle removes a vehicle. When a sale references the vehicle the
// caller must pass cascade=true; otherwise ErrRequiresConfirmation is returned
// and both collections stay exactly as they were.
func (s *Service) DeleteVehicle(id string, cascade bool) error {
	if _, err := s.GetVehicle(id); err != nil {
		return err
	}
	sold, err := s.IsSold(id)
	if err != nil {
		return err
	}
	if sold {
		if !cascade {
			return ErrRequiresConfirmation
		}
		if err := s.store.DeleteVehicleCascade(id); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"vehicle_id": id}).Info("vehicle and its sale deleted")
		return nil
	}
	if err := s.store.DeleteVehicle(id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"vehicle_id": id}).Info("vehicle deleted")
	return nil
}

// -------------------------
// Sale lifecycle
// -------------------------

// RecordSale creates the single allowed sale for a vehicle. The sold check runs
// at the instant of commit, not at form-render time, so a stale "available"
// list can never produce a double sale. The created sale becomes the current
// bill handoff.
func (s *Service) RecordSale(f SaleFields) (models.Sale, error) {
	f = f.normalized()
	if err := ValidateSale(f); err != nil {
		return models.Sale{}, err
	}

	if _, err := s.GetVehicle(f.VehicleID); err != nil {
		return models.Sale{}, err
	}

	sold, err := s.IsSold(f.VehicleID)
	if err != nil {
		return models.Sale{}, err
	}
	if sold {
		return models.Sale{}, &AlreadySoldError{VehicleID: f.VehicleID}
	}

	sale := models.Sale{
		ID:           uuid.NewString(),
		VehicleID:    f.VehicleID,
		SaleDate:     f.SaleDate,
		SellingPrice: f.SellingPrice,
		Method:       models.PaymentMethod(f.Method),
		BuyerName:    f.BuyerName,
		BuyerAddress: f.BuyerAddress,
		BuyerNIC:     f.BuyerNIC,
		BuyerPhone:   f.BuyerPhone,
		Notes:        f.Notes,
	}

	if err := s.store.AppendSale(&sale); err != nil {
		return models.Sale{}, err
	}

	// Hand the new sale to the bill formatter. Losing the handoff is not worth
	// failing an already committed sale over, so only log it.
	if err := s.store.SetSetting(models.SettingCurrentSaleID, sale.ID); err != nil {
		s.log.WithFields(logrus.Fields{"sale_id": sale.ID}).Warn("could not store bill handoff: " + err.Error())
	}

	s.log.WithFields(logrus.Fields{"sale_id": sale.ID, "vehicle_id": sale.VehicleID}).Info("sale recorded")
	return sale, nil
}

func (s *Service) Sales() ([]models.Sale, error) {
	return s.store.LoadSales()
}

func (s *Service) GetSale(id string) (models.Sale, error) {
	sales, err := s.store.LoadSales()
	if err != nil {
		return models.Sale{}, err
	}
	for _, sale := range sales {
		if sale.ID == id {
			return sale, nil
		}
	}
	return models.Sale{}, &NotFoundError{ID: id}
}

// ResolveSale joins a sale with its vehicle. A missing vehicle (possible only
// after a corrupted import) resolves to the "Unknown" placeholder instead of
// an error.
func (s *Service) ResolveSale(id string) (models.Sale, models.Vehicle, error) {
	sale, err := s.GetSale(id)
	if err != nil {
		return models.Sale{}, models.Vehicle{}, err
	}
	vehicle, err := s.GetVehicle(sale.VehicleID)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return sale, unknownVehicle(sale.VehicleID), nil
		}
		return models.Sale{}, models.Vehicle{}, err
	}
	return sale, vehicle, nil
}

// SetCurrentSale overwrites the bill handoff slot.
func (s *Service) SetCurrentSale(id string) error {
	if _, err := s.GetSale(id); err != nil {
		return err
	}
	return s.store.SetSetting(models.SettingCurrentSaleID, id)
}

// CurrentSale resolves the sale in the bill handoff slot.
func (s *Service) CurrentSale() (models.Sale, models.Vehicle, error) {
	id, err := s.store.GetSetting(models.SettingCurrentSaleID)
	if err != nil {
		return models.Sale{}, models.Vehicle{}, err
	}
	if id == "" {
		return models.Sale{}, models.Vehicle{}, &NotFoundError{ID: "current_sale"}
	}
	return s.ResolveSale(id)
}

// -------------------------
// Settings
// -------------------------

func (s *Service) GetSetting(key string) (string, error) {
	return s.store.GetSetting(key)
}

func (s *Service) SetSetting(key, value string) error {
	return s.store.SetSetting(key, value)
}

func (s *Service) RevealPurchasePrice() (bool, error) {
	v, err := s.store.GetSetting(models.SettingRevealPurchasePrice)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *Service) SetRevealPurchasePrice(reveal bool) error {
	v := "false"
	if reveal {
		v = "true"
	}
	return s.store.SetSetting(models.SettingRevealPurchasePrice, v)
}

func unknownVehicle(id string) models.Vehicle {
	return models.Vehicle{ID: id, ModelName: "Unknown"}
}
