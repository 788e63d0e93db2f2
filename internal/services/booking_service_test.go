package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/models"
)

type fakeBookingRepo struct {
	bookings map[int]*models.Booking
	nextID   int
	creates  int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int]*models.Booking{}, nextID: 1}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.creates++
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id int) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) List(status string, limit, offset int) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id int, status string) error {
	r.bookings[id].Status = status
	return nil
}

func (r *fakeBookingRepo) CountByStatus() (map[string]int, error) {
	out := map[string]int{}
	for _, b := range r.bookings {
		out[b.Status]++
	}
	return out, nil
}

type fakeStores struct {
	stores map[int]*models.Store
}

func (f *fakeStores) GetByID(id int) (*models.Store, error) {
	return f.stores[id], nil
}

func bookingFixtureService(repo *fakeBookingRepo) *BookingService {
	stores := &fakeStores{stores: map[int]*models.Store{
		1: {ID: 1, Name: "AutoCare24 - MP Nagar", Type: models.StoreTypeHub},
		2: {ID: 2, Name: "AutoCare24 - Kolar Garage", Type: models.StoreTypeGarage},
	}}
	svc := NewBookingService(repo, stores, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func validBooking() *models.Booking {
	return &models.Booking{
		Name:        "Ravi",
		Phone:       "9876543210",
		VehicleType: "SUV",
		Package:     "Premium",
		Date:        "2026-09-01",
		Time:        "09:00 AM",
		StoreID:     1,
	}
}

func TestBookingCreate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)

	b := validBooking()
	require.NoError(t, svc.Create(b))

	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "Website", b.LeadSource)
	// price comes from the resolver, never from the client
	assert.Equal(t, 400, b.Price)
}

func TestBookingCreateExpressPrice(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)

	b := validBooking()
	b.Express = true
	b.Price = 1 // client-sent price is ignored
	require.NoError(t, svc.Create(b))
	assert.Equal(t, 599, b.Price)
}

func TestBookingCreateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Booking)
		want   error
	}{
		{"missing name", func(b *models.Booking) { b.Name = "" }, ErrMissingFields},
		{"missing store", func(b *models.Booking) { b.StoreID = 0 }, ErrMissingFields},
		{"bad phone", func(b *models.Booking) { b.Phone = "123" }, ErrBadPhone},
		{"unpriceable", func(b *models.Booking) { b.Package = "Gold" }, ErrUnpriceable},
		{"unknown slot", func(b *models.Booking) { b.Time = "08:00 AM" }, ErrUnknownSlot},
		{"past date", func(b *models.Booking) { b.Date = "2026-08-01" }, ErrPastDate},
		{"passed slot today", func(b *models.Booking) { b.Date = "2026-08-29"; b.Time = "09:00 AM" }, ErrSlotPassed},
		{"garage store", func(b *models.Booking) { b.StoreID = 2 }, ErrNotHub},
		{"unknown store", func(b *models.Booking) { b.StoreID = 99 }, ErrStoreNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			svc := bookingFixtureService(repo)
			b := validBooking()
			c.mutate(b)
			assert.ErrorIs(t, svc.Create(b), c.want)
			// rejected bookings never reach the store
			assert.Zero(t, repo.creates)
		})
	}
}

func TestBookingUpdateRecomputesPrice(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)

	b := validBooking()
	require.NoError(t, svc.Create(b))

	edit := validBooking()
	edit.VehicleType = "Hatchback"
	edit.Package = "Basic"
	updated, err := svc.Update(b.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, 200, updated.Price)
}

func TestBookingUpdateNotFound(t *testing.T) {
	svc := bookingFixtureService(newFakeBookingRepo())
	_, err := svc.Update(42, validBooking())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingUpdateStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)
	b := validBooking()
	require.NoError(t, svc.Create(b))

	updated, err := svc.UpdateStatus(b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	_, err = svc.UpdateStatus(b.ID, "done")
	assert.ErrorIs(t, err, ErrBookingStatus)
}

type countingBookingNotifier struct{ calls int }

func (n *countingBookingNotifier) NotifyConfirmed(*models.Booking) error {
	n.calls++
	return nil
}

func TestBookingConfirmationNotifies(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)
	notifier := &countingBookingNotifier{}
	svc.Notifier = notifier

	b := validBooking()
	require.NoError(t, svc.Create(b))

	_, err := svc.UpdateStatus(b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)

	// other transitions stay silent
	_, err = svc.UpdateStatus(b.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
}

func TestBookingAvailableSlots(t *testing.T) {
	svc := bookingFixtureService(newFakeBookingRepo())
	slots, err := svc.AvailableSlots("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "12:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM"}, slots)
}

func TestBookingList(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := bookingFixtureService(repo)
	require.NoError(t, svc.Create(validBooking()))

	_, err := svc.List("done", 10, 0)
	assert.ErrorIs(t, err, ErrBookingStatus)

	got, err := svc.List("pending", 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
