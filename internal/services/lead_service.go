package services

import (
	"log"
	"time"

	"autocare/internal/models"
	"autocare/internal/repositories"
)

type LeadService struct {
	Repo     repositories.LeadRepository
	Notifier LeadNotifier // optional, may be nil
}

// LeadNotifier posts an out-of-band notification about a freshly created
// lead. Failures are logged, never surfaced to the caller.
type LeadNotifier interface {
	NotifyNewLead(lead *models.Lead) error
}

func NewLeadService(repo repositories.LeadRepository, notifier LeadNotifier) *LeadService {
	return &LeadService{Repo: repo, Notifier: notifier}
}

// Create registers an inbound inquiry. Status is always forced to "new";
// city and source get the intake defaults when the form left them blank.
func (s *LeadService) Create(lead *models.Lead) error {
	if lead.Name == "" || lead.Phone == "" {
		return ErrMissingFields
	}
	if !isValidPhone(lead.Phone) {
		return ErrBadPhone
	}
	lead.Status = "new"
	if lead.City == "" {
		lead.City = "Bhopal"
	}
	if lead.Source == "" {
		lead.Source = "Website"
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	if err := s.Repo.Create(lead); err != nil {
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyNewLead(lead); err != nil {
			log.Printf("[leads][notify] warning: telegram notification failed for lead %d: %v", lead.ID, err)
		}
	}
	return nil
}

func (s *LeadService) GetByID(id int) (*models.Lead, error) {
	return s.Repo.GetByID(id)
}

func (s *LeadService) List(limit, offset int) ([]*models.Lead, error) {
	return s.Repo.List(limit, offset)
}

func (s *LeadService) ListByStatus(status string, limit, offset int) ([]*models.Lead, error) {
	if !IsLeadStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.ListByStatus(status, limit, offset)
}

// Transition moves a lead to a new pipeline stage together with its remark.
// The pair is written as a single update; the returned lead reflects the
// stored row, and nothing is reported as changed unless the write succeeded.
// The remark may be empty, but it is always the caller's explicit choice;
// the engine never invents one.
func (s *LeadService) Transition(id int, newStatus, remark string) (*models.Lead, error) {
	if !IsLeadStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	updated, err := s.Repo.UpdateStatusRemark(id, newStatus, remark)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrLeadNotFound
	}
	return updated, nil
}

// Move is the kanban drop path. The drag started from fromStatus; if the
// lead has moved on since (someone edited the card mid-drag), the drop is
// stale and must not apply.
func (s *LeadService) Move(id int, fromStatus, toStatus, remark string) (*models.Lead, error) {
	if !IsLeadStatus(fromStatus) || !IsLeadStatus(toStatus) {
		return nil, ErrInvalidStatus
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if lead.Status != fromStatus {
		return nil, ErrStaleMove
	}
	if fromStatus == toStatus {
		return lead, nil
	}

	updated, err := s.Repo.UpdateStatusRemark(id, toStatus, remark)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrLeadNotFound
	}
	return updated, nil
}
