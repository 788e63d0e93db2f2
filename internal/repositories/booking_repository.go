package repositories

import (
	"database/sql"
	"fmt"

	"autocare/internal/models"
)

type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id int) (*models.Booking, error)
	List(status string, limit, offset int) ([]*models.Booking, error)
	Update(b *models.Booking) error
	UpdateStatus(id int, status string) error
	CountByStatus() (map[string]int, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, name, phone, vehicle_type, package, express, date, time, price, store_id, status, lead_source, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	if err := row.Scan(
		&b.ID, &b.Name, &b.Phone, &b.VehicleType, &b.Package, &b.Express,
		&b.Date, &b.Time, &b.Price, &b.StoreID, &b.Status, &b.LeadSource, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Create(b *models.Booking) error {
	const q = `
		INSERT INTO carwash (name, phone, vehicle_type, package, express, date, time, price, store_id, status, lead_source, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`
	if err := r.db.QueryRow(q,
		b.Name, b.Phone, b.VehicleType, b.Package, b.Express,
		b.Date, b.Time, b.Price, b.StoreID, b.Status, b.LeadSource, b.CreatedAt,
	).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(id int) (*models.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM carwash WHERE id=$1`
	b, err := scanBooking(r.db.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (r *bookingRepository) List(status string, limit, offset int) ([]*models.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM carwash WHERE 1=1`
	args := []interface{}{}
	i := 1
	if status != "" {
		q += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, status)
		i++
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookingRepository) Update(b *models.Booking) error {
	const q = `
		UPDATE carwash
		SET name=$1, phone=$2, vehicle_type=$3, package=$4, express=$5,
		    date=$6, time=$7, price=$8, store_id=$9, status=$10
		WHERE id=$11
	`
	if _, err := r.db.Exec(q,
		b.Name, b.Phone, b.VehicleType, b.Package, b.Express,
		b.Date, b.Time, b.Price, b.StoreID, b.Status, b.ID,
	); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(id int, status string) error {
	if _, err := r.db.Exec(`UPDATE carwash SET status=$1 WHERE id=$2`, status, id); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	return nil
}

func (r *bookingRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM carwash GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
