package services

import "errors"

// Validation errors block the write and carry a specific user-facing
// message; handlers map them to 400.
var (
	ErrUnpriceable    = errors.New("no price defined for this vehicle type and package")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrRemarkRequired = errors.New("remark must be provided with a status change")
	ErrUnknownSlot    = errors.New("time is not a bookable slot")
	ErrSlotPassed     = errors.New("cannot book for a time slot that has already passed")
	ErrNoSlotsLeft    = errors.New("no available slots left for today")
	ErrPastDate       = errors.New("date is in the past")
	ErrBadDate        = errors.New("date must be YYYY-MM-DD")
	ErrDuplicatePhone = errors.New("customer with this phone already exists")
	ErrBadPhone       = errors.New("phone must be a 10-digit number")
	ErrNotHub         = errors.New("bookings can only be placed at hub stores")
	ErrMissingFields  = errors.New("please fill all required fields")
	ErrNoVehicles     = errors.New("at least one vehicle is required")
	ErrBadStoreType   = errors.New("store type must be hub or garage")
	ErrBadSlotType    = errors.New("slot type must be per_hour or max_per_day")
	ErrTaskNotAllowed = errors.New("task type is not allowed for this store type")
	ErrHubTagOnGarage = errors.New("only garages can be tagged to hubs")
	ErrBadBalanceType = errors.New("balance type must be Cr or Dr")
	ErrBookingStatus  = errors.New("invalid booking status")
)

// Not-found errors render a distinct 404 state instead of a crash.
var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrTaskNotFound     = errors.New("task type not found")
)

// ErrStaleMove rejects a kanban drop whose source column no longer matches
// the lead's current status (the card was edited while being dragged).
var ErrStaleMove = errors.New("lead status changed since the drag started")
