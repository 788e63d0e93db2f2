package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/models"
	"autocare/internal/pdf"
	"autocare/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
	Stores  *services.StoreService
	PDF     pdf.Generator // optional, receipts disabled when nil
}

func NewBookingHandler(service *services.BookingService, stores *services.StoreService, gen pdf.Generator) *BookingHandler {
	return &BookingHandler{Service: service, Stores: stores, PDF: gen}
}

// @Summary      Create booking
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      models.Booking  true  "Booking"
// @Success      201      {object}  models.Booking
// @Failure      400      {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	if err := h.Service.Create(&b); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	b, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	offset := (page - 1) * size

	bookings, err := h.Service.List(c.Query("status"), size, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(id, &b)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Available slots
// @Description  Lists the slots still bookable for a date; today's list drops slots already past
// @Tags         Bookings
// @Produce      json
// @Param        date  query     string  true  "Date, YYYY-MM-DD"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /bookings/slots [get]
func (h *BookingHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	slots, err := h.Service.AvailableSlots(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"slots":     slots,
		"none_left": len(slots) == 0,
	})
}

// Options returns the pricing catalog the booking form renders: vehicle
// types, packages, and the express surcharge.
func (h *BookingHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"vehicle_types":     services.VehicleTypes(),
		"packages":          services.Packages(),
		"express_surcharge": services.ExpressSurcharge,
		"time_slots":        services.TimeSlots,
	})
}

// Receipt renders the booking receipt PDF and streams it back.
func (h *BookingHandler) Receipt(c *gin.Context) {
	if h.PDF == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "receipts are not configured"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	b, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	storeName := ""
	if store, err := h.Stores.GetByID(b.StoreID); err == nil && store != nil {
		storeName = store.Name
	}

	path, err := h.PDF.GenerateBookingReceipt(pdf.ReceiptData{
		BookingID:   b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		VehicleType: b.VehicleType,
		Package:     b.Package,
		Express:     b.Express,
		Date:        b.Date,
		Time:        b.Time,
		Price:       b.Price,
		StoreName:   storeName,
		CreatedAt:   b.CreatedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_booking_%d.pdf", b.ID))
	c.File(path)
}
