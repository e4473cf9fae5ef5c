package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

type UnitHandler struct {
	Repo *repositories.InventoryRepository
}

func NewUnitHandler(repo *repositories.InventoryRepository) *UnitHandler {
	return &UnitHandler{Repo: repo}
}

// @Summary      List inventory units
// @Tags         Inventory
// @Produce      json
// @Success      200  {array}  models.Unit
// @Router       /units [get]
func (h *UnitHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "100"))
	if err != nil || size < 1 {
		size = 100
	}

	units, err := h.Repo.ListPaginated(c.Request.Context(), size, (page-1)*size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list units"})
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary      Add an inventory unit
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        unit  body      models.Unit  true  "Unit"
// @Success      201   {object}  models.Unit
// @Router       /units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.Create(c.Request.Context(), &unit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, unit)
}

type UnitAvailabilityRequest struct {
	Available bool `json:"available"`
}

// @Summary      Mark a unit available or sold
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "Unit ID"
// @Param        request  body      UnitAvailabilityRequest  true  "Availability"
// @Success      204      "No Content"
// @Router       /units/{id}/availability [post]
func (h *UnitHandler) SetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req UnitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Repo.SetAvailable(c.Request.Context(), id, req.Available); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
