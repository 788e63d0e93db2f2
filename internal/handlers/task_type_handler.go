package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autocare/internal/authz"
	"autocare/internal/models"
	"autocare/internal/services"
)

type TaskTypeHandler struct {
	Service *services.TaskTypeService
}

func NewTaskTypeHandler(service *services.TaskTypeService) *TaskTypeHandler {
	return &TaskTypeHandler{Service: service}
}

func (h *TaskTypeHandler) Create(c *gin.Context) {
	var t models.TaskType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, roleID := getUserAndRole(c)
	if !authz.IsElevated(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.Service.Create(&t); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TaskTypeHandler) List(c *gin.Context) {
	types, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list task types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *TaskTypeHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}
	t, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, t)
}

func (h *TaskTypeHandler) Update(c *gin.Context) {
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

	var body models.TaskType
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

func (h *TaskTypeHandler) Delete(c *gin.Context) {
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

	if err := h.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(204)
}
