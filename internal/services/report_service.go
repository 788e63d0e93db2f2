package services

import "autocare/internal/repositories"

type ReportService struct {
	Leads     repositories.LeadRepository
	Bookings  repositories.BookingRepository
	Customers repositories.CustomerRepository
	Stores    *repositories.StoreRepository
}

func NewReportService(
	leads repositories.LeadRepository,
	bookings repositories.BookingRepository,
	customers repositories.CustomerRepository,
	stores *repositories.StoreRepository,
) *ReportService {
	return &ReportService{Leads: leads, Bookings: bookings, Customers: customers, Stores: stores}
}

type Summary struct {
	LeadsByStatus    map[string]int `json:"leads_by_status"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
	TotalLeads       int            `json:"total_leads"`
	TotalBookings    int            `json:"total_bookings"`
	TotalCustomers   int            `json:"total_customers"`
	TotalStores      int            `json:"total_stores"`
}

// GetSummary counts everything fresh from the store on each call; the
// dashboard never caches counts separately from the data they describe.
func (s *ReportService) GetSummary() (*Summary, error) {
	leadCounts, err := s.Leads.CountByStatus()
	if err != nil {
		return nil, err
	}
	bookingCounts, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, err
	}
	customers, err := s.Customers.Count()
	if err != nil {
		return nil, err
	}
	stores, err := s.Stores.Count()
	if err != nil {
		return nil, err
	}

	out := &Summary{
		LeadsByStatus:    map[string]int{},
		BookingsByStatus: map[string]int{},
		TotalCustomers:   customers,
		TotalStores:      stores,
	}
	// include zero rows so every pipeline stage always shows up
	for _, st := range LeadStatusOrder {
		out.LeadsByStatus[st] = leadCounts[st]
		out.TotalLeads += leadCounts[st]
	}
	for _, st := range BookingStatusOrder {
		out.BookingsByStatus[st] = bookingCounts[st]
		out.TotalBookings += bookingCounts[st]
	}
	return out, nil
}
