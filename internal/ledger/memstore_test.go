package ledger

import (
	"errors"
	"io"

	"trishaw-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// memStore is an in-memory Store for tests. failWrites simulates a dead
// persistence layer so no-partial-write guarantees can be checked.
type memStore struct {
	vehicles   []models.Vehicle
	sales      []models.Sale
	settings   map[string]string
	failWrites bool
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{settings: map[string]string{}}
}

func (m *memStore) LoadVehicles() ([]models.Vehicle, error) {
	return append([]models.Vehicle(nil), m.vehicles...), nil
}

func (m *memStore) AppendVehicle(v *models.Vehicle) error {
	if m.failWrites {
		return errStoreDown
	}
	v.Position = len(m.vehicles) + 1
	m.vehicles = append(m.vehicles, *v)
	return nil
}

func (m *memStore) SaveVehicle(v *models.Vehicle) error {
	if m.failWrites {
		return errStoreDown
	}
	for i := range m.vehicles {
		if m.vehicles[i].ID == v.ID {
			m.vehicles[i] = *v
			return nil
		}
	}
	return errors.New("save on missing vehicle")
}

func (m *memStore) DeleteVehicle(id string) error {
	if m.failWrites {
		return errStoreDown
	}
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			m.vehicles = append(m.vehicles[:i], m.vehicles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStore) DeleteVehicleCascade(id string) error {
	if m.failWrites {
		return errStoreDown
	}
	kept := m.sales[:0]
	for _, s := range m.sales {
		if s.VehicleID != id {
			kept = append(kept, s)
		}
	}
	m.sales = kept
	return m.DeleteVehicle(id)
}

func (m *memStore) ReplaceVehicles(vehicles []models.Vehicle) error {
	if m.failWrites {
		return errStoreDown
	}
	m.vehicles = nil
	for i, v := range vehicles {
		v.Position = i + 1
		m.vehicles = append(m.vehicles, v)
	}
	return nil
}

func (m *memStore) LoadSales() ([]models.Sale, error) {
	return append([]models.Sale(nil), m.sales...), nil
}

func (m *memStore) AppendSale(s *models.Sale) error {
	if m.failWrites {
		return errStoreDown
	}
	s.Position = len(m.sales) + 1
	m.sales = append(m.sales, *s)
	return nil
}

func (m *memStore) ReplaceSales(sales []models.Sale) error {
	if m.failWrites {
		return errStoreDown
	}
	m.sales = nil
	for i, s := range sales {
		s.Position = i + 1
		m.sales = append(m.sales, s)
	}
	return nil
}

func (m *memStore) GetSetting(key string) (string, error) {
	return m.settings[key], nil
}

func (m *memStore) SetSetting(key, value string) error {
	if m.failWrites {
		return errStoreDown
	}
	m.settings[key] = value
	return nil
}

func testService() (*Service, *memStore) {
	store := newMemStore()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(store, log), store
}
