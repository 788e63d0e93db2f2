package repositories

import (
	"database/sql"
	"fmt"

	"autocare/internal/models"
)

type TaskTypeRepository struct {
	db *sql.DB
}

func NewTaskTypeRepository(db *sql.DB) *TaskTypeRepository {
	return &TaskTypeRepository{db: db}
}

func (r *TaskTypeRepository) Create(t *models.TaskType) error {
	const q = `
		INSERT INTO task_types (name, slot_type, count, allowed_in_hub, allowed_in_garage)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	if err := r.db.QueryRow(q, t.Name, t.SlotType, t.Count, t.AllowedInHub, t.AllowedInGarage).Scan(&t.ID); err != nil {
		return fmt.Errorf("create task type: %w", err)
	}
	return nil
}

func (r *TaskTypeRepository) GetByID(id int) (*models.TaskType, error) {
	const q = `
		SELECT id, name, slot_type, COALESCE(count, 0), allowed_in_hub, allowed_in_garage
		FROM task_types
		WHERE id=$1
	`
	t := &models.TaskType{}
	err := r.db.QueryRow(q, id).Scan(&t.ID, &t.Name, &t.SlotType, &t.Count, &t.AllowedInHub, &t.AllowedInGarage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task type: %w", err)
	}
	return t, nil
}

func (r *TaskTypeRepository) List() ([]*models.TaskType, error) {
	const q = `
		SELECT id, name, slot_type, COALESCE(count, 0), allowed_in_hub, allowed_in_garage
		FROM task_types
		ORDER BY name
	`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.TaskType
	for rows.Next() {
		t := &models.TaskType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.SlotType, &t.Count, &t.AllowedInHub, &t.AllowedInGarage); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskTypeRepository) Update(t *models.TaskType) error {
	const q = `
		UPDATE task_types
		SET name=$1, slot_type=$2, count=$3, allowed_in_hub=$4, allowed_in_garage=$5
		WHERE id=$6
	`
	if _, err := r.db.Exec(q, t.Name, t.SlotType, t.Count, t.AllowedInHub, t.AllowedInGarage, t.ID); err != nil {
		return fmt.Errorf("update task type: %w", err)
	}
	return nil
}

func (r *TaskTypeRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM task_types WHERE id=$1`, id)
	return err
}
