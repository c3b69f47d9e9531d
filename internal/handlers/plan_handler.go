package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"traites/internal/models"
	"traites/internal/services"
)

type PlanHandler struct {
	Service *services.PlanService
}

func NewPlanHandler(service *services.PlanService) *PlanHandler {
	return &PlanHandler{Service: service}
}

type statusRequest struct {
	Status models.InstallmentStatus `json:"status"`
}

// @Summary      Create an installment plan
// @Description  Splits the total into traites and stores the plan
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        plan  body      models.CreatePlanRequest  true  "Plan"
// @Success      201   {object}  models.PlanView
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Security     Bearer
// @Router       /plans [post]
func (h *PlanHandler) Create(c *gin.Context) {
	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[plans][create] bind json failed: %v", err)
		writeBindError(c, err)
		return
	}
	userID, _ := getUserAndRole(c)

	plan, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, "[plans][create]", err)
		return
	}
	log.Printf("[plans][create] user=%d plan=%s", userID, plan.ID)
	c.JSON(http.StatusCreated, services.ToView(plan, h.Service.Now()))
}

// @Summary      Preview a schedule
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        plan  body      models.CreatePlanRequest  true  "Plan"
// @Success      200   {array}   models.InstallmentView
// @Failure      400   {object}  map[string]interface{}
// @Security     Bearer
// @Router       /plans/preview [post]
func (h *PlanHandler) Preview(c *gin.Context) {
	var req models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	installments, err := h.Service.Preview(req)
	if err != nil {
		writeError(c, "[plans][preview]", err)
		return
	}
	view := services.ToView(&models.InstallmentPlan{Installments: installments}, h.Service.Now())
	c.JSON(http.StatusOK, view.Installments)
}

// @Summary      List plans
// @Tags         Plans
// @Produce      json
// @Param        kind    query  string  false  "client | supplier"
// @Param        status  query  string  false  "unpaid | partially_paid | paid | overdue"
// @Param        limit   query  int     false  "page size"
// @Param        offset  query  int     false  "offset"
// @Success      200     {array}   models.PlanView
// @Security     Bearer
// @Router       /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	f := models.PlanFilter{
		PartyKind: models.PartyKind(c.Query("kind")),
		Status:    models.PlanStatus(c.Query("status")),
	}
	if f.PartyKind != "" && !f.PartyKind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}
	switch f.Status {
	case "", models.PlanUnpaid, models.PlanPartiallyPaid, models.PlanPaid, models.PlanOverdue:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	var err error
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if f.Offset, err = queryInt(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	plans, err := h.Service.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "[plans][list]", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a plan
// @Tags         Plans
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  models.PlanView
// @Failure      404  {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "[plans][get]", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Delete a plan and its traites
// @Tags         Plans
// @Param        id   path  string  true  "Plan ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "[plans][delete]", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Mark one traite paid or unpaid
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Plan ID"
// @Param        iid     path      string         true  "Installment ID"
// @Param        status  body      statusRequest  true  "paid | unpaid"
// @Success      200     {object}  models.PlanView
// @Failure      400     {object}  map[string]interface{}
// @Failure      404     {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/installments/{iid}/status [put]
func (h *PlanHandler) SetInstallmentStatus(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	installmentID, ok := uuidParam(c, "iid")
	if !ok {
		return
	}
	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Service.SetInstallmentStatus(c.Request.Context(), planID, installmentID, body.Status)
	if err != nil {
		writeError(c, "[plans][status]", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Mark every traite of a plan
// @Description  Updates are sent concurrently; a partial failure answers 207 with the per-traite result
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Plan ID"
// @Param        status  body      statusRequest  true  "paid | unpaid"
// @Success      200     {object}  services.BulkResult
// @Success      207     {object}  services.BulkResult
// @Failure      404     {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/status [put]
func (h *PlanHandler) MarkAll(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Service.MarkAll(c.Request.Context(), planID, body.Status)
	if errors.Is(err, services.ErrPartialUpdate) {
		c.JSON(http.StatusMultiStatus, res)
		return
	}
	if err != nil {
		writeError(c, "[plans][mark-all]", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}
