package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/authz"
	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type ActionHandler struct {
	Service *services.ActionService
}

func NewActionHandler(service *services.ActionService) *ActionHandler {
	return &ActionHandler{Service: service}
}

// @Summary      List follow-up actions
// @Description  Sales see their own queue, elevated roles may filter by assignee
// @Tags         Actions
// @Produce      json
// @Param        lead_id  query    int     false  "Filter by lead"
// @Param        status   query    string  false  "Filter by status"
// @Param        type     query    string  false  "Filter by action type"
// @Success      200      {array}  models.Action
// @Router       /actions [get]
func (h *ActionHandler) List(c *gin.Context) {
	userID, roleID := getUserAndRole(c)

	var filter models.ActionFilter
	if !authz.CanSeeAllLeads(roleID) {
		filter.AssigneeID = &userID
	} else if raw := c.Query("assignee_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.AssigneeID = &id
		}
	}
	if raw := c.Query("lead_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.LeadID = &id
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := models.ActionStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		t := models.ActionType(raw)
		filter.Type = &t
	}

	actions, err := h.Service.GetAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list actions"})
		return
	}
	c.JSON(http.StatusOK, actions)
}

// @Summary      List overdue actions
// @Description  Pending actions whose due time has already passed
// @Tags         Actions
// @Produce      json
// @Param        limit  query    int  false  "Max results"
// @Success      200    {array}  models.Action
// @Router       /actions/due [get]
func (h *ActionHandler) ListDue(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	actions, err := h.Service.ListDue(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list due actions"})
		return
	}
	c.JSON(http.StatusOK, actions)
}

func (h *ActionHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	action, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "action not found"})
		return
	}

	userID, roleID := getUserAndRole(c)
	if action.AssigneeID != userID && !authz.CanSeeAllLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, action)
}

type UpdateActionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"done"`
}

// @Summary      Complete or cancel an action
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Action ID"
// @Param        request  body      UpdateActionStatusRequest  true  "New status"
// @Success      200      {object}  models.Action
// @Router       /actions/{id}/status [post]
func (h *ActionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateActionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := models.ActionStatus(req.Status)
	switch status {
	case models.ActionPending, models.ActionDone, models.ActionCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	action, err := h.Service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		switch err.Error() {
		case "action not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
