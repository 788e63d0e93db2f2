package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/services"
)

// tolerant to the value type in context (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserAndRole(c *gin.Context) (userID, roleID int) {
	if id, ok := getIntFromCtx(c, "user_id"); ok {
		userID = id
	}
	if id, ok := getIntFromCtx(c, "role_id"); ok {
		roleID = id
	}
	return
}

var validationErrors = []error{
	services.ErrUnpriceable,
	services.ErrInvalidStatus,
	services.ErrRemarkRequired,
	services.ErrUnknownSlot,
	services.ErrSlotPassed,
	services.ErrNoSlotsLeft,
	services.ErrPastDate,
	services.ErrBadDate,
	services.ErrDuplicatePhone,
	services.ErrBadPhone,
	services.ErrNotHub,
	services.ErrMissingFields,
	services.ErrNoVehicles,
	services.ErrBadStoreType,
	services.ErrBadSlotType,
	services.ErrTaskNotAllowed,
	services.ErrHubTagOnGarage,
	services.ErrBadBalanceType,
	services.ErrBookingStatus,
}

var notFoundErrors = []error{
	services.ErrLeadNotFound,
	services.ErrBookingNotFound,
	services.ErrCustomerNotFound,
	services.ErrStoreNotFound,
	services.ErrTaskNotFound,
}

// respondServiceError maps the service error taxonomy onto status codes:
// validation 400, not found 404, stale kanban move 409, anything else 500.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrStaleMove) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	for _, e := range validationErrors {
		if errors.Is(err, e) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	for _, e := range notFoundErrors {
		if errors.Is(err, e) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
