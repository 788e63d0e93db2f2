package repositories

import (
	"database/sql"
	"fmt"

	"autocare/internal/models"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id int) (*models.Lead, error)
	List(limit, offset int) ([]*models.Lead, error)
	ListByStatus(status string, limit, offset int) ([]*models.Lead, error)
	// UpdateStatusRemark writes {status, remark} as one atomic UPDATE and
	// returns the row as stored. Leads are never deleted.
	UpdateStatusRemark(id int, status, remark string) (*models.Lead, error)
	CountByStatus() (map[string]int, error)
}

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepository{db: db}
}

const leadColumns = `id, name, phone, city, vehicle, issue, date, time, source, remark, status, created_at`

func scanLead(row interface{ Scan(...any) error }) (*models.Lead, error) {
	l := &models.Lead{}
	var date, slot, remark sql.NullString
	if err := row.Scan(
		&l.ID, &l.Name, &l.Phone, &l.City, &l.Vehicle, &l.Issue,
		&date, &slot, &l.Source, &remark, &l.Status, &l.CreatedAt,
	); err != nil {
		return nil, err
	}
	if date.Valid {
		s := date.String
		l.Date = &s
	}
	if slot.Valid {
		s := slot.String
		l.Time = &s
	}
	if remark.Valid {
		s := remark.String
		l.Remark = &s
	}
	return l, nil
}

func (r *leadRepository) Create(lead *models.Lead) error {
	const q = `
		INSERT INTO leads (name, phone, city, vehicle, issue, date, time, source, remark, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`
	if err := r.db.QueryRow(q,
		lead.Name, lead.Phone, lead.City, lead.Vehicle, lead.Issue,
		lead.Date, lead.Time, lead.Source, lead.Remark, lead.Status, lead.CreatedAt,
	).Scan(&lead.ID); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (r *leadRepository) GetByID(id int) (*models.Lead, error) {
	q := `SELECT ` + leadColumns + ` FROM leads WHERE id=$1`
	l, err := scanLead(r.db.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (r *leadRepository) List(limit, offset int) ([]*models.Lead, error) {
	q := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *leadRepository) ListByStatus(status string, limit, offset int) ([]*models.Lead, error) {
	q := `SELECT ` + leadColumns + ` FROM leads WHERE status=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(q, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *leadRepository) UpdateStatusRemark(id int, status, remark string) (*models.Lead, error) {
	q := `
		UPDATE leads
		SET status=$1, remark=$2
		WHERE id=$3
		RETURNING ` + leadColumns
	l, err := scanLead(r.db.QueryRow(q, status, remark, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update lead status: %w", err)
	}
	return l, nil
}

func (r *leadRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status`)
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
