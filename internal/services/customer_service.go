package services

import (
	"time"

	"autocare/internal/models"
	"autocare/internal/repositories"
)

type CustomerService struct {
	Repo repositories.CustomerRepository
}

func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

// CreateWithVehicles registers a customer and their vehicles. The phone
// number is checked for duplicates before anything is inserted, and the
// customer + vehicle rows go in as one transaction.
func (s *CustomerService) CreateWithVehicles(c *models.Customer, vehicles []*models.CustomerVehicle) error {
	if c.Name == "" || c.Phone == "" {
		return ErrMissingFields
	}
	if !isValidPhone(c.Phone) {
		return ErrBadPhone
	}
	if len(vehicles) == 0 {
		return ErrNoVehicles
	}
	if c.BalanceType == "" {
		c.BalanceType = "Cr"
	}
	if c.BalanceType != "Cr" && c.BalanceType != "Dr" {
		return ErrBadBalanceType
	}

	existing, err := s.Repo.GetByPhone(c.Phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicatePhone
	}

	if c.Whatsapp == "" {
		c.Whatsapp = c.Phone
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return s.Repo.CreateWithVehicles(c, vehicles)
}

func (s *CustomerService) GetByID(id int) (*models.Customer, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	vehicles, err := s.Repo.ListVehicles(id)
	if err != nil {
		return nil, err
	}
	c.Vehicles = vehicles
	return c, nil
}

func (s *CustomerService) List(limit, offset int) ([]*models.Customer, error) {
	return s.Repo.List(limit, offset)
}

func (s *CustomerService) Update(id int, c *models.Customer) (*models.Customer, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrCustomerNotFound
	}
	if c.Phone != "" && c.Phone != current.Phone {
		if !isValidPhone(c.Phone) {
			return nil, ErrBadPhone
		}
		other, err := s.Repo.GetByPhone(c.Phone)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrDuplicatePhone
		}
	}
	c.ID = id
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// AddVehicle attaches one more vehicle to an existing customer. Editing the
// customer never touches vehicles; they change only through these calls.
func (s *CustomerService) AddVehicle(customerID int, v *models.CustomerVehicle) error {
	c, err := s.Repo.GetByID(customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCustomerNotFound
	}
	if v.VehicleType == "" || v.VehicleSubtype == "" {
		return ErrMissingFields
	}
	v.CustomerID = customerID
	return s.Repo.AddVehicle(v)
}

func (s *CustomerService) RemoveVehicle(id int) error {
	return s.Repo.DeleteVehicle(id)
}
