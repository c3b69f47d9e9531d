package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"traites/internal/services"
)

type PrintHandler struct {
	Service *services.PrintService
}

func NewPrintHandler(service *services.PrintService) *PrintHandler {
	return &PrintHandler{Service: service}
}

type mailRequest struct {
	To string `json:"to"`
}

// @Summary      Field placements of one traite
// @Tags         Print
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Param        iid  path      string  true  "Installment ID"
// @Success      200  {array}   layout.FieldPlacement
// @Failure      404  {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/installments/{iid}/layout [get]
func (h *PrintHandler) Layout(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	installmentID, ok := uuidParam(c, "iid")
	if !ok {
		return
	}
	fields, err := h.Service.Layout(c.Request.Context(), planID, installmentID)
	if err != nil {
		writeError(c, "[print][layout]", err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// @Summary      Print one traite
// @Tags         Print
// @Produce      application/pdf
// @Param        id   path  string  true  "Plan ID"
// @Param        iid  path  string  true  "Installment ID"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/installments/{iid}/print [get]
func (h *PrintHandler) PrintInstallment(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	installmentID, ok := uuidParam(c, "iid")
	if !ok {
		return
	}
	var buf bytes.Buffer
	name, err := h.Service.PrintInstallment(c.Request.Context(), planID, installmentID, &buf)
	if err != nil {
		writeError(c, "[print][one]", err)
		return
	}
	attachment(c, name, "application/pdf", buf.Bytes())
}

// @Summary      Print every traite of a plan as a zip
// @Tags         Print
// @Produce      application/zip
// @Param        id   path  string  true  "Plan ID"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/print [get]
func (h *PrintHandler) PrintBatch(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var buf bytes.Buffer
	name, err := h.Service.PrintBatch(c.Request.Context(), planID, &buf)
	if err != nil {
		writeError(c, "[print][batch]", err)
		return
	}
	attachment(c, name, "application/zip", buf.Bytes())
}

// @Summary      Email every traite of a plan
// @Tags         Print
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Plan ID"
// @Param        body  body  mailRequest  true  "Recipient"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Security     Bearer
// @Router       /plans/{id}/mail [post]
func (h *PrintHandler) MailDrafts(c *gin.Context) {
	planID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var body mailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.Service.MailDrafts(c.Request.Context(), planID, body.To)
	if err != nil {
		writeError(c, "[print][mail]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": n, "to": strings.TrimSpace(body.To)})
}

func attachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, data)
}
