package ledger

import (
	"errors"

	"trishaw-backend/internal/models"

	"gorm.io/gorm"
)

// Store is the persistence gateway: whole-collection reads in insertion order,
// whole-collection replace for import/restore, and row-level writes for the
// lifecycle operations. The service owns all business rules; the store only
// moves records.
type Store interface {
	LoadVehicles() ([]models.Vehicle, error)
	AppendVehicle(v *models.Vehicle) error
	SaveVehicle(v *models.Vehicle) error
	DeleteVehicle(id string) error
	// DeleteVehicleCascade removes the vehicle's sale (if any) and then the
	// vehicle, in a single transaction.
	DeleteVehicleCascade(id string) error
	ReplaceVehicles(vehicles []models.Vehicle) error

	LoadSales() ([]models.Sale, error)
	AppendSale(s *models.Sale) error
	ReplaceSales(sales []models.Sale) error

	GetSetting(key string) (string, error) // "" when the key is absent
	SetSetting(key, value string) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) LoadVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Order("position asc").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *gormStore) AppendVehicle(v *models.Vehicle) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.Vehicle{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
			return err
		}
		v.Position = maxPos + 1
		return tx.Create(v).Error
	})
}

func (s *gormStore) SaveVehicle(v *models.Vehicle) error {
	return s.db.Save(v).Error
}

func (s *gormStore) DeleteVehicle(id string) error {
	return s.db.Delete(&models.Vehicle{}, "id = ?", id).Error
}

func (s *gormStore) DeleteVehicleCascade(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Sale{}, "vehicle_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, "id = ?", id).Error
	})
}

func (s *gormStore) ReplaceVehicles(vehicles []models.Vehicle) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		for i := range vehicles {
			vehicles[i].Position = i + 1
			if err := tx.Create(&vehicles[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormStore) LoadSales() ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Order("position asc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *gormStore) AppendSale(sale *models.Sale) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&models.Sale{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
			return err
		}
		sale.Position = maxPos + 1
		return tx.Create(sale).Error
	})
}

func (s *gormStore) ReplaceSales(sales []models.Sale) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		for i := range sales {
			sales[i].Position = i + 1
			if err := tx.Create(&sales[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormStore) GetSetting(key string) (string, error) {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (s *gormStore) SetSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.db.Save(&setting).Error
}
