package services

import (
	"strings"
	"time"

	"autocare/internal/models"
	"autocare/internal/repositories"
)

// Every store name carries the brand prefix; the form pre-fills it but the
// API enforces it.
const storeNamePrefix = "AutoCare24 - "

type StoreService struct {
	Repo      *repositories.StoreRepository
	TaskTypes *repositories.TaskTypeRepository
}

func NewStoreService(repo *repositories.StoreRepository, taskTypes *repositories.TaskTypeRepository) *StoreService {
	return &StoreService{Repo: repo, TaskTypes: taskTypes}
}

// Create builds the store with its per-task capacities and, for garages, its
// hub tags, in a single transactional write. Capacity overrides are only
// accepted for task types allowed at the store's type; every allowed task
// type gets a row, defaulting to the catalog count when no override came in.
func (s *StoreService) Create(store *models.Store, capacityOverrides map[int]int, hubIDs []int) (*models.Store, error) {
	if store.Name == "" || store.City == "" {
		return nil, ErrMissingFields
	}
	if store.Type != models.StoreTypeHub && store.Type != models.StoreTypeGarage {
		return nil, ErrBadStoreType
	}
	if len(hubIDs) > 0 && store.Type != models.StoreTypeGarage {
		return nil, ErrHubTagOnGarage
	}
	if !strings.HasPrefix(store.Name, storeNamePrefix) {
		store.Name = storeNamePrefix + store.Name
	}
	if store.CreatedAt.IsZero() {
		store.CreatedAt = time.Now()
	}

	taskTypes, err := s.TaskTypes.List()
	if err != nil {
		return nil, err
	}

	allowed := map[int]bool{}
	var capacities []*models.StoreTaskCapacity
	for _, t := range taskTypes {
		if store.Type == models.StoreTypeHub && !t.AllowedInHub {
			continue
		}
		if store.Type == models.StoreTypeGarage && !t.AllowedInGarage {
			continue
		}
		allowed[t.ID] = true
		capacity := t.Count
		if override, ok := capacityOverrides[t.ID]; ok {
			capacity = override
		}
		capacities = append(capacities, &models.StoreTaskCapacity{
			TaskTypeID: t.ID,
			Capacity:   capacity,
		})
	}
	for id := range capacityOverrides {
		if !allowed[id] {
			return nil, ErrTaskNotAllowed
		}
	}

	for _, hubID := range hubIDs {
		hub, err := s.Repo.GetByID(hubID)
		if err != nil {
			return nil, err
		}
		if hub == nil || hub.Type != models.StoreTypeHub {
			return nil, ErrStoreNotFound
		}
	}

	if err := s.Repo.CreateWithDetails(store, capacities, hubIDs); err != nil {
		return nil, err
	}
	store.Capacities = capacities
	store.HubIDs = hubIDs
	return store, nil
}

func (s *StoreService) GetByID(id int) (*models.Store, error) {
	store, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	capacities, err := s.Repo.ListCapacities(id)
	if err != nil {
		return nil, err
	}
	store.Capacities = capacities
	if store.Type == models.StoreTypeGarage {
		hubIDs, err := s.Repo.ListHubIDs(id)
		if err != nil {
			return nil, err
		}
		store.HubIDs = hubIDs
	}
	return store, nil
}

func (s *StoreService) List(storeType string) ([]*models.Store, error) {
	if storeType != "" && storeType != models.StoreTypeHub && storeType != models.StoreTypeGarage {
		return nil, ErrBadStoreType
	}
	return s.Repo.List(storeType)
}

// ListHubs backs the booking form's location selector.
func (s *StoreService) ListHubs() ([]*models.Store, error) {
	return s.Repo.List(models.StoreTypeHub)
}

func (s *StoreService) Update(id int, store *models.Store) (*models.Store, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrStoreNotFound
	}
	store.ID = id
	if store.Name != "" && !strings.HasPrefix(store.Name, storeNamePrefix) {
		store.Name = storeNamePrefix + store.Name
	}
	if err := s.Repo.Update(store); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// SetCapacity overrides one task capacity for a store.
func (s *StoreService) SetCapacity(storeID, taskTypeID, capacity int) error {
	store, err := s.Repo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrStoreNotFound
	}
	t, err := s.TaskTypes.GetByID(taskTypeID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	if store.Type == models.StoreTypeHub && !t.AllowedInHub {
		return ErrTaskNotAllowed
	}
	if store.Type == models.StoreTypeGarage && !t.AllowedInGarage {
		return ErrTaskNotAllowed
	}
	return s.Repo.UpsertCapacity(&models.StoreTaskCapacity{
		StoreID:    storeID,
		TaskTypeID: taskTypeID,
		Capacity:   capacity,
	})
}
