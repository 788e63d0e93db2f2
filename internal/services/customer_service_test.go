package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/models"
)

type fakeCustomerRepo struct {
	customers map[int]*models.Customer
	vehicles  map[int][]*models.CustomerVehicle
	nextID    int
	creates   int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: map[int]*models.Customer{},
		vehicles:  map[int][]*models.CustomerVehicle{},
		nextID:    1,
	}
}

func (r *fakeCustomerRepo) CreateWithVehicles(c *models.Customer, vehicles []*models.CustomerVehicle) error {
	r.creates++
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.customers[c.ID] = &cp
	for _, v := range vehicles {
		v.CustomerID = c.ID
		r.vehicles[c.ID] = append(r.vehicles[c.ID], v)
	}
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int) (*models.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*models.Customer, error) {
	var out []*models.Customer
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *models.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) ListVehicles(customerID int) ([]*models.CustomerVehicle, error) {
	return r.vehicles[customerID], nil
}

func (r *fakeCustomerRepo) AddVehicle(v *models.CustomerVehicle) error {
	r.vehicles[v.CustomerID] = append(r.vehicles[v.CustomerID], v)
	return nil
}

func (r *fakeCustomerRepo) DeleteVehicle(id int) error {
	for cid, vs := range r.vehicles {
		for i, v := range vs {
			if v.ID == id {
				r.vehicles[cid] = append(vs[:i], vs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Count() (int, error) {
	return len(r.customers), nil
}

func oneVehicle() []*models.CustomerVehicle {
	return []*models.CustomerVehicle{
		{VehicleType: "SUV", VehicleSubtype: "XUV700"},
	}
}

func TestCustomerCreate(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c := &models.Customer{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.CreateWithVehicles(c, oneVehicle()))

	assert.Equal(t, "Cr", c.BalanceType)
	assert.Equal(t, "9876543210", c.Whatsapp) // defaults to phone
	assert.NotZero(t, c.ID)
}

func TestCustomerCreateValidation(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	err := svc.CreateWithVehicles(&models.Customer{Phone: "9876543210"}, oneVehicle())
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.CreateWithVehicles(&models.Customer{Name: "Ravi", Phone: "98765"}, oneVehicle())
	assert.ErrorIs(t, err, ErrBadPhone)

	err = svc.CreateWithVehicles(&models.Customer{Name: "Ravi", Phone: "9876543210"}, nil)
	assert.ErrorIs(t, err, ErrNoVehicles)

	err = svc.CreateWithVehicles(&models.Customer{Name: "Ravi", Phone: "9876543210", BalanceType: "Db"}, oneVehicle())
	assert.ErrorIs(t, err, ErrBadBalanceType)

	assert.Zero(t, repo.creates)
}

func TestCustomerDuplicatePhoneBlockedBeforeInsert(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	first := &models.Customer{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.CreateWithVehicles(first, oneVehicle()))

	second := &models.Customer{Name: "Asha", Phone: "9876543210"}
	err := svc.CreateWithVehicles(second, oneVehicle())
	assert.ErrorIs(t, err, ErrDuplicatePhone)
	assert.Equal(t, 1, repo.creates)
}

func TestCustomerGetByIDIncludesVehicles(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c := &models.Customer{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.CreateWithVehicles(c, oneVehicle()))

	got, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	require.Len(t, got.Vehicles, 1)
	assert.Equal(t, "XUV700", got.Vehicles[0].VehicleSubtype)

	_, err = svc.GetByID(99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerUpdatePhoneChangeChecked(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	a := &models.Customer{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.CreateWithVehicles(a, oneVehicle()))
	b := &models.Customer{Name: "Asha", Phone: "9123456780"}
	require.NoError(t, svc.CreateWithVehicles(b, oneVehicle()))

	_, err := svc.Update(b.ID, &models.Customer{Name: "Asha", Phone: "9876543210"})
	assert.ErrorIs(t, err, ErrDuplicatePhone)

	updated, err := svc.Update(b.ID, &models.Customer{Name: "Asha", Phone: "9999999999"})
	require.NoError(t, err)
	assert.Equal(t, "9999999999", updated.Phone)
}

func TestCustomerAddVehicle(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c := &models.Customer{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.CreateWithVehicles(c, oneVehicle()))

	err := svc.AddVehicle(c.ID, &models.CustomerVehicle{VehicleType: "Hatchback"})
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.AddVehicle(99, &models.CustomerVehicle{VehicleType: "Hatchback", VehicleSubtype: "i20"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	require.NoError(t, svc.AddVehicle(c.ID, &models.CustomerVehicle{VehicleType: "Hatchback", VehicleSubtype: "i20"}))
	got, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Vehicles, 2)
}
