package services

import (
	"log"
	"time"

	"autocare/internal/models"
	"autocare/internal/repositories"
)

var BookingStatusOrder = []string{"pending", "confirmed", "completed", "cancelled"}

func IsBookingStatus(s string) bool {
	for _, st := range BookingStatusOrder {
		if st == s {
			return true
		}
	}
	return false
}

// storeGetter is the slice of the store repository the booking flow needs.
type storeGetter interface {
	GetByID(id int) (*models.Store, error)
}

// BookingNotifier tells the customer their booking was confirmed. Failures
// are logged, never surfaced to the caller.
type BookingNotifier interface {
	NotifyConfirmed(b *models.Booking) error
}

type BookingService struct {
	Repo     repositories.BookingRepository
	Stores   storeGetter
	Notifier BookingNotifier // optional, may be nil

	// now is swappable so slot cutoffs can be tested at fixed times.
	now func() time.Time
}

func NewBookingService(repo repositories.BookingRepository, stores storeGetter, notifier BookingNotifier) *BookingService {
	return &BookingService{Repo: repo, Stores: stores, Notifier: notifier, now: time.Now}
}

// validate applies every input rule before anything is written: required
// fields, phone shape, priceable combination, known-and-future slot, and a
// hub location. The price is resolved here from the submitted fields; the
// client never dictates it.
func (s *BookingService) validate(b *models.Booking) error {
	if b.Name == "" || b.Phone == "" || b.VehicleType == "" || b.Package == "" ||
		b.Date == "" || b.Time == "" || b.StoreID == 0 {
		return ErrMissingFields
	}
	if !isValidPhone(b.Phone) {
		return ErrBadPhone
	}

	price, err := Price(b.VehicleType, b.Package, b.Express)
	if err != nil {
		return err
	}
	b.Price = price

	if err := ValidateSlot(b.Date, b.Time, s.now()); err != nil {
		return err
	}

	store, err := s.Stores.GetByID(b.StoreID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrStoreNotFound
	}
	if store.Type != models.StoreTypeHub {
		return ErrNotHub
	}
	return nil
}

func (s *BookingService) Create(b *models.Booking) error {
	if err := s.validate(b); err != nil {
		return err
	}
	b.Status = "pending"
	if b.LeadSource == "" {
		b.LeadSource = "Website"
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now()
	}
	return s.Repo.Create(b)
}

func (s *BookingService) GetByID(id int) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *BookingService) List(status string, limit, offset int) ([]*models.Booking, error) {
	if status != "" && !IsBookingStatus(status) {
		return nil, ErrBookingStatus
	}
	return s.Repo.List(status, limit, offset)
}

// Update edits a booking. The slot is re-validated and the price recomputed
// from the submitted vehicle/package/express fields on every edit, so a
// price can never go stale against the fields that define it.
func (s *BookingService) Update(id int, b *models.Booking) (*models.Booking, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrBookingNotFound
	}

	b.ID = id
	if b.Status == "" {
		b.Status = current.Status
	}
	if !IsBookingStatus(b.Status) {
		return nil, ErrBookingStatus
	}
	if err := s.validate(b); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

func (s *BookingService) UpdateStatus(id int, status string) (*models.Booking, error) {
	if !IsBookingStatus(status) {
		return nil, ErrBookingStatus
	}
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	b.Status = status

	if status == "confirmed" && s.Notifier != nil {
		if err := s.Notifier.NotifyConfirmed(b); err != nil {
			log.Printf("[bookings][notify] warning: confirmation SMS failed for booking %d: %v", b.ID, err)
		}
	}
	return b, nil
}

// AvailableSlots answers the booking form's date change: which slots can
// still be picked for this date right now.
func (s *BookingService) AvailableSlots(date string) ([]string, error) {
	return AvailableSlots(date, s.now())
}
