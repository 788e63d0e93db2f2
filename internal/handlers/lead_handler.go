package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/models"
	"autocare/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// @Summary      Create lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.Lead  true  "Lead"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, roleID := getUserAndRole(c)
	if authz.IsReadOnly(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "read-only role"})
		return
	}

	if err := h.Service.Create(&lead); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	lead, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if lead == nil {
		c.JSON(404, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(200, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	offset := (page - 1) * size

	status := c.Query("status")

	var (
		leads []*models.Lead
		err   error
	)
	if status != "" {
		leads, err = h.Service.ListByStatus(status, size, offset)
	} else {
		leads, err = h.Service.List(size, offset)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// TableView returns the list presentation: one row per lead with the status
// options and remark suggestions its inline editor needs.
func (h *LeadHandler) TableView(c *gin.Context) {
	page, size := pageParams(c)
	offset := (page - 1) * size

	leads, err := h.Service.List(size, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, services.TableView(leads))
}

// KanbanView returns one column per pipeline stage, counts derived from the
// cards actually returned.
func (h *LeadHandler) KanbanView(c *gin.Context) {
	page, size := pageParams(c)
	offset := (page - 1) * size

	leads, err := h.Service.List(size, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, services.KanbanView(leads))
}

// StatusChangeRequest carries a status transition. Remark is a pointer with
// binding:required so an absent field is rejected while an explicit empty
// string is accepted.
type StatusChangeRequest struct {
	Status string  `json:"status" binding:"required"`
	Remark *string `json:"remark" binding:"required"`
}

// @Summary      Change lead status
// @Description  Moves a lead to a new pipeline stage with an explicit remark
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Lead ID"
// @Param        change  body      StatusChangeRequest  true  "New status and remark"
// @Success      200     {object}  models.Lead
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /leads/{id}/status [post]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
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

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrRemarkRequired.Error()})
		return
	}

	updated, err := h.Service.Transition(id, req.Status, *req.Remark)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MoveRequest is the kanban drop payload; from_status is the column the drag
// started in.
type MoveRequest struct {
	FromStatus string  `json:"from_status" binding:"required"`
	ToStatus   string  `json:"to_status" binding:"required"`
	Remark     *string `json:"remark" binding:"required"`
}

// @Summary      Move lead between kanban columns
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Lead ID"
// @Param        move  body      MoveRequest  true  "Drop details"
// @Success      200   {object}  models.Lead
// @Failure      409   {object}  map[string]string
// @Router       /leads/{id}/move [post]
func (h *LeadHandler) Move(c *gin.Context) {
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

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Move(id, req.FromStatus, req.ToStatus, *req.Remark)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemarkSuggestions returns the remark catalog for one status, for clients
// that build their own selector.
func (h *LeadHandler) RemarkSuggestions(c *gin.Context) {
	status := c.Param("status")
	if !services.IsLeadStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidStatus.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"remarks": services.RemarksFor(status),
	})
}

func pageParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "100"))
	if err != nil || size < 1 {
		size = 100
	}
	return page, size
}
