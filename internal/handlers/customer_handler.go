package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/models"
	"autocare/internal/services"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: service}
}

// CreateCustomerRequest bundles the customer with their vehicles; both go in
// as one transaction.
type CreateCustomerRequest struct {
	Customer models.Customer           `json:"customer"`
	Vehicles []*models.CustomerVehicle `json:"vehicles"`
}

// @Summary      Create customer with vehicles
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        customer  body      CreateCustomerRequest  true  "Customer and vehicles"
// @Success      201       {object}  models.Customer
// @Failure      400       {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	if err := h.Service.CreateWithVehicles(&req.Customer, req.Vehicles); err != nil {
		respondServiceError(c, err)
		return
	}
	req.Customer.Vehicles = req.Vehicles
	c.JSON(http.StatusCreated, req.Customer)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	customer, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	offset := (page - 1) * size

	customers, err := h.Service.List(size, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Update(c *gin.Context) {
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

	var body models.Customer
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(id, &body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) AddVehicle(c *gin.Context) {
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

	var v models.CustomerVehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.AddVehicle(id, &v); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *CustomerHandler) RemoveVehicle(c *gin.Context) {
	vehicleID, err := strconv.Atoi(c.Param("vehicleId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	if err := h.Service.RemoveVehicle(vehicleID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(204)
}
