package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/models"
	"autocare/internal/services"
)

type StoreHandler struct {
	Service *services.StoreService
}

func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{Service: service}
}

// CreateStoreRequest carries the store plus optional capacity overrides
// (task type id -> count) and, for garages, the hubs it serves.
type CreateStoreRequest struct {
	Store             models.Store `json:"store"`
	CapacityOverrides map[int]int  `json:"capacity_overrides"`
	HubIDs            []int        `json:"hub_ids"`
}

// @Summary      Create store
// @Description  Creates a hub or garage with its task capacities in one transaction
// @Tags         Stores
// @Accept       json
// @Produce      json
// @Param        store  body      CreateStoreRequest  true  "Store details"
// @Success      201    {object}  models.Store
// @Failure      400    {object}  map[string]string
// @Router       /stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	created, err := h.Service.Create(&req.Store, req.CapacityOverrides, req.HubIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *StoreHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	store, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, store)
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Service.List(c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

// ListHubs backs the booking form's location dropdown.
func (h *StoreHandler) ListHubs(c *gin.Context) {
	hubs, err := h.Service.ListHubs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hubs"})
		return
	}
	c.JSON(http.StatusOK, hubs)
}

func (h *StoreHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var body models.Store
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

func (h *StoreHandler) SetCapacity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req struct {
		TaskTypeID int `json:"task_type_id" binding:"required"`
		Capacity   int `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetCapacity(id, req.TaskTypeID, req.Capacity); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "capacity updated"})
}
