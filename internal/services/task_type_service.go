package services

import (
	"autocare/internal/models"
	"autocare/internal/repositories"
)

type TaskTypeService struct {
	Repo *repositories.TaskTypeRepository
}

func NewTaskTypeService(repo *repositories.TaskTypeRepository) *TaskTypeService {
	return &TaskTypeService{Repo: repo}
}

func (s *TaskTypeService) Create(t *models.TaskType) error {
	if t.Name == "" {
		return ErrMissingFields
	}
	if t.SlotType != models.SlotTypePerHour && t.SlotType != models.SlotTypeMaxPerDay {
		return ErrBadSlotType
	}
	if t.Count < 0 {
		t.Count = 0
	}
	return s.Repo.Create(t)
}

func (s *TaskTypeService) List() ([]*models.TaskType, error) {
	return s.Repo.List()
}

func (s *TaskTypeService) GetByID(id int) (*models.TaskType, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

func (s *TaskTypeService) Update(id int, t *models.TaskType) (*models.TaskType, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTaskNotFound
	}
	if t.SlotType != models.SlotTypePerHour && t.SlotType != models.SlotTypeMaxPerDay {
		return nil, ErrBadSlotType
	}
	t.ID = id
	if t.Count < 0 {
		t.Count = 0
	}
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

func (s *TaskTypeService) Delete(id int) error {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	return s.Repo.Delete(id)
}
