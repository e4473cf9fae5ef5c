package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/authz"
	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// @Summary      Create a lead
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

	userID, _ := getUserAndRole(c)
	// Owner always comes from the token, the incoming owner_id is ignored.
	lead.OwnerID = userID

	if err := h.Service.Create(c.Request.Context(), &lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, roleID := getUserAndRole(c)
	current, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil || current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if current.OwnerID != userID && !authz.CanSeeAllLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var body models.Lead
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.ID = id
	body.Stage = current.Stage
	if !authz.CanReassignLeads(roleID) {
		body.OwnerID = current.OwnerID
	}

	if err := h.Service.Update(c.Request.Context(), &body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	updated, _ := h.Service.GetByID(c.Request.Context(), id)
	c.JSON(http.StatusOK, updated)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, roleID := getUserAndRole(c)
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if lead.OwnerID != userID && !authz.CanSeeAllLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, roleID := getUserAndRole(c)
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if lead.OwnerID != userID && !authz.CanReassignLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      List leads
// @Description  Elevated roles see the whole pipeline, sales see their own leads
// @Tags         Leads
// @Produce      json
// @Param        page      query  int     false  "Page"
// @Param        size      query  int     false  "Page size"
// @Param        stage     query  string  false  "Filter by stage"
// @Param        owner_id  query  int     false  "Filter by owner (elevated roles only)"
// @Success      200       {array}  models.Lead
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "100"))
	if err != nil || size < 1 {
		size = 100
	}
	offset := (page - 1) * size

	userID, roleID := getUserAndRole(c)

	stage := models.Stage(c.Query("stage"))
	var ownerFilter int64
	if raw := c.Query("owner_id"); raw != "" && authz.CanSeeAllLeads(roleID) {
		ownerFilter, _ = strconv.ParseInt(raw, 10, 64)
	}
	if !authz.CanSeeAllLeads(roleID) {
		ownerFilter = userID
	}

	var leads []*models.Lead
	switch {
	case stage != "" || (authz.CanSeeAllLeads(roleID) && ownerFilter > 0):
		leads, err = h.Service.Filter(c.Request.Context(), stage, ownerFilter, size, offset)
	case !authz.CanSeeAllLeads(roleID):
		leads, err = h.Service.ListMy(c.Request.Context(), userID, size, offset)
	default:
		leads, err = h.Service.ListPaginated(c.Request.Context(), size, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

type ChangeStageRequest struct {
	Stage string           `json:"stage" binding:"required" example:"Potential"`
	Data  models.StageData `json:"data"`
}

// @Summary      Move a lead to another stage
// @Description  Validates stage requirements, persists the change and fires follow-up actions
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Lead ID"
// @Param        request  body      ChangeStageRequest  true  "Target stage and supporting data"
// @Success      200      {object}  pipeline.TransitionResult
// @Failure      400      {object}  pipeline.TransitionResult
// @Failure      404      {object}  map[string]string
// @Router       /leads/{id}/stage [post]
func (h *LeadHandler) ChangeStage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, roleID := getUserAndRole(c)
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if lead.OwnerID != userID && !authz.CanSeeAllLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req ChangeStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.ChangeStage(c.Request.Context(), id, models.Stage(req.Stage), req.Data, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		if strings.HasPrefix(result.ErrorReason, "failed to persist") {
			c.JSON(http.StatusInternalServerError, result)
			return
		}
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

type BulkStageRequest struct {
	LeadIDs []int64          `json:"lead_ids" binding:"required"`
	Stage   string           `json:"stage" binding:"required" example:"Non Potential"`
	Data    models.StageData `json:"data"`
}

// @Summary      Move several leads to one stage
// @Description  Applies the same transition to every lead, failures do not abort the batch
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        request  body      BulkStageRequest  true  "Lead IDs, target stage and supporting data"
// @Success      200      {object}  pipeline.BulkResult
// @Router       /leads/stage/bulk [post]
func (h *LeadHandler) ChangeStageBulk(c *gin.Context) {
	var req BulkStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.LeadIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lead_ids must not be empty"})
		return
	}

	userID, _ := getUserAndRole(c)
	result := h.Service.ChangeStageBulk(c.Request.Context(), req.LeadIDs, models.Stage(req.Stage), req.Data, userID)
	c.JSON(http.StatusOK, result)
}

type AssignRequest struct {
	AssigneeID int64  `json:"assignee_id" binding:"required"`
	Reason     string `json:"reason"`
}

// @Summary      Reassign a lead to another agent
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Lead ID"
// @Param        request  body      AssignRequest  true  "New owner"
// @Success      200      {object}  models.Lead
// @Router       /leads/{id}/assign [post]
func (h *LeadHandler) Assign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.AssignOwner(c.Request.Context(), id, req.AssigneeID, req.Reason); err != nil {
		switch err.Error() {
		case "lead not found", "assignee not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	updated, _ := h.Service.GetByID(c.Request.Context(), id)
	c.JSON(http.StatusOK, updated)
}

// @Summary      Stage history of a lead
// @Tags         Leads
// @Produce      json
// @Param        id   path     int  true  "Lead ID"
// @Success      200  {array}  models.StageHistory
// @Router       /leads/{id}/history [get]
func (h *LeadHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, roleID := getUserAndRole(c)
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil || lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if lead.OwnerID != userID && !authz.CanSeeAllLeads(roleID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	history, err := h.Service.StageHistory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
