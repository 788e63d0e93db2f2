package repositories

import (
	"database/sql"
	"fmt"

	"autocare/internal/models"
)

type CustomerRepository interface {
	// CreateWithVehicles inserts the customer and all vehicle rows inside a
	// single transaction, so a failed vehicle insert never leaves a
	// half-created customer behind.
	CreateWithVehicles(c *models.Customer, vehicles []*models.CustomerVehicle) error
	GetByID(id int) (*models.Customer, error)
	GetByPhone(phone string) (*models.Customer, error)
	List(limit, offset int) ([]*models.Customer, error)
	Update(c *models.Customer) error
	ListVehicles(customerID int) ([]*models.CustomerVehicle, error)
	AddVehicle(v *models.CustomerVehicle) error
	DeleteVehicle(id int) error
	Count() (int, error)
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, phone, whatsapp, address_street, address_city, address_state, address_pincode, address_lat, address_lng, opening_balance, balance_type, created_at`

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	c := &models.Customer{}
	if err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Whatsapp,
		&c.AddressStreet, &c.AddressCity, &c.AddressState, &c.AddressPincode,
		&c.AddressLat, &c.AddressLng, &c.OpeningBalance, &c.BalanceType, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) CreateWithVehicles(c *models.Customer, vehicles []*models.CustomerVehicle) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin create customer: %w", err)
	}
	defer tx.Rollback()

	const cq = `
		INSERT INTO customers (name, phone, whatsapp, address_street, address_city, address_state,
		                       address_pincode, address_lat, address_lng, opening_balance, balance_type, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`
	if err := tx.QueryRow(cq,
		c.Name, c.Phone, c.Whatsapp, c.AddressStreet, c.AddressCity, c.AddressState,
		c.AddressPincode, c.AddressLat, c.AddressLng, c.OpeningBalance, c.BalanceType, c.CreatedAt,
	).Scan(&c.ID); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	const vq = `
		INSERT INTO customer_vehicles (customer_id, vehicle_type, vehicle_subtype, vehicle_name,
		                               vehicle_number, odo_reading, last_service_date, basic_issues)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	for _, v := range vehicles {
		v.CustomerID = c.ID
		if err := tx.QueryRow(vq,
			v.CustomerID, v.VehicleType, v.VehicleSubtype, v.VehicleName,
			v.VehicleNumber, v.OdoReading, v.LastServiceDate, v.BasicIssues,
		).Scan(&v.ID); err != nil {
			return fmt.Errorf("create customer vehicle: %w", err)
		}
	}

	return tx.Commit()
}

func (r *customerRepository) GetByID(id int) (*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	c, err := scanCustomer(r.db.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *customerRepository) GetByPhone(phone string) (*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE phone=$1`
	c, err := scanCustomer(r.db.QueryRow(q, phone))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return c, nil
}

func (r *customerRepository) List(limit, offset int) ([]*models.Customer, error) {
	q := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customerRepository) Update(c *models.Customer) error {
	const q = `
		UPDATE customers
		SET name=$1, phone=$2, whatsapp=$3, address_street=$4, address_city=$5, address_state=$6,
		    address_pincode=$7, address_lat=$8, address_lng=$9, opening_balance=$10, balance_type=$11
		WHERE id=$12
	`
	if _, err := r.db.Exec(q,
		c.Name, c.Phone, c.Whatsapp, c.AddressStreet, c.AddressCity, c.AddressState,
		c.AddressPincode, c.AddressLat, c.AddressLng, c.OpeningBalance, c.BalanceType, c.ID,
	); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *customerRepository) ListVehicles(customerID int) ([]*models.CustomerVehicle, error) {
	const q = `
		SELECT id, customer_id, vehicle_type, vehicle_subtype, vehicle_name,
		       vehicle_number, odo_reading, last_service_date, basic_issues
		FROM customer_vehicles
		WHERE customer_id=$1
		ORDER BY id
	`
	rows, err := r.db.Query(q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CustomerVehicle
	for rows.Next() {
		v := &models.CustomerVehicle{}
		var lastService sql.NullString
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.VehicleType, &v.VehicleSubtype, &v.VehicleName,
			&v.VehicleNumber, &v.OdoReading, &lastService, &v.BasicIssues,
		); err != nil {
			return nil, err
		}
		if lastService.Valid {
			s := lastService.String
			v.LastServiceDate = &s
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *customerRepository) AddVehicle(v *models.CustomerVehicle) error {
	const q = `
		INSERT INTO customer_vehicles (customer_id, vehicle_type, vehicle_subtype, vehicle_name,
		                               vehicle_number, odo_reading, last_service_date, basic_issues)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	if err := r.db.QueryRow(q,
		v.CustomerID, v.VehicleType, v.VehicleSubtype, v.VehicleName,
		v.VehicleNumber, v.OdoReading, v.LastServiceDate, v.BasicIssues,
	).Scan(&v.ID); err != nil {
		return fmt.Errorf("add vehicle: %w", err)
	}
	return nil
}

func (r *customerRepository) DeleteVehicle(id int) error {
	_, err := r.db.Exec(`DELETE FROM customer_vehicles WHERE id=$1`, id)
	return err
}

func (r *customerRepository) Count() (int, error) {
	var c int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&c)
	return c, err
}
