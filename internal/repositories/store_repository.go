package repositories

import (
	"database/sql"
	"fmt"

	"autocare/internal/models"
)

type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

const storeColumns = `id, name, type, city, address, latitude, longitude, manager_name, manager_number, created_at`

func scanStore(row interface{ Scan(...any) error }) (*models.Store, error) {
	s := &models.Store{}
	if err := row.Scan(
		&s.ID, &s.Name, &s.Type, &s.City, &s.Address,
		&s.Latitude, &s.Longitude, &s.ManagerName, &s.ManagerNumber, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateWithDetails writes the store, its task capacities and its hub tags
// in one transaction. The original flow did three sequential inserts and
// could leave a store without capacities on a mid-flight failure.
func (r *StoreRepository) CreateWithDetails(s *models.Store, capacities []*models.StoreTaskCapacity, hubIDs []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin create store: %w", err)
	}
	defer tx.Rollback()

	const sq = `
		INSERT INTO stores (name, type, city, address, latitude, longitude, manager_name, manager_number, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	if err := tx.QueryRow(sq,
		s.Name, s.Type, s.City, s.Address, s.Latitude, s.Longitude,
		s.ManagerName, s.ManagerNumber, s.CreatedAt,
	).Scan(&s.ID); err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	const cq = `INSERT INTO store_task_capacities (store_id, task_type_id, capacity) VALUES ($1,$2,$3)`
	for _, c := range capacities {
		c.StoreID = s.ID
		if _, err := tx.Exec(cq, c.StoreID, c.TaskTypeID, c.Capacity); err != nil {
			return fmt.Errorf("create store capacity: %w", err)
		}
	}

	const tq = `INSERT INTO garage_hub_tags (garage_id, hub_id) VALUES ($1,$2)`
	for _, hubID := range hubIDs {
		if _, err := tx.Exec(tq, s.ID, hubID); err != nil {
			return fmt.Errorf("tag garage to hub: %w", err)
		}
	}

	return tx.Commit()
}

func (r *StoreRepository) GetByID(id int) (*models.Store, error) {
	q := `SELECT ` + storeColumns + ` FROM stores WHERE id=$1`
	s, err := scanStore(r.db.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return s, nil
}

// List returns stores, optionally filtered by type ("hub" or "garage").
func (r *StoreRepository) List(storeType string) ([]*models.Store, error) {
	q := `SELECT ` + storeColumns + ` FROM stores`
	args := []interface{}{}
	if storeType != "" {
		q += ` WHERE type=$1`
		args = append(args, storeType)
	}
	q += ` ORDER BY name`

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StoreRepository) Update(s *models.Store) error {
	const q = `
		UPDATE stores
		SET name=$1, city=$2, address=$3, latitude=$4, longitude=$5, manager_name=$6, manager_number=$7
		WHERE id=$8
	`
	if _, err := r.db.Exec(q,
		s.Name, s.City, s.Address, s.Latitude, s.Longitude, s.ManagerName, s.ManagerNumber, s.ID,
	); err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

func (r *StoreRepository) ListCapacities(storeID int) ([]*models.StoreTaskCapacity, error) {
	const q = `
		SELECT c.store_id, c.task_type_id, t.name, t.slot_type, c.capacity
		FROM store_task_capacities c
		JOIN task_types t ON t.id = c.task_type_id
		WHERE c.store_id=$1
		ORDER BY t.name
	`
	rows, err := r.db.Query(q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StoreTaskCapacity
	for rows.Next() {
		c := &models.StoreTaskCapacity{}
		if err := rows.Scan(&c.StoreID, &c.TaskTypeID, &c.TaskName, &c.SlotType, &c.Capacity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *StoreRepository) UpsertCapacity(c *models.StoreTaskCapacity) error {
	const q = `
		INSERT INTO store_task_capacities (store_id, task_type_id, capacity)
		VALUES ($1,$2,$3)
		ON CONFLICT (store_id, task_type_id) DO UPDATE SET capacity = EXCLUDED.capacity
	`
	_, err := r.db.Exec(q, c.StoreID, c.TaskTypeID, c.Capacity)
	return err
}

func (r *StoreRepository) ListHubIDs(garageID int) ([]int, error) {
	rows, err := r.db.Query(`SELECT hub_id FROM garage_hub_tags WHERE garage_id=$1 ORDER BY hub_id`, garageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *StoreRepository) Count() (int, error) {
	var c int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM stores`).Scan(&c)
	return c, err
}
