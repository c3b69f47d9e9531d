package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"traites/internal/models"
	"traites/internal/pdf"
	"traites/internal/services"
)

// tolerant to the claim types the JWT decoder may produce
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserAndRole(c *gin.Context) (userID, roleID int) {
	if id, ok := getIntFromCtx(c, "user_id"); ok {
		userID = id
	}
	if id, ok := getIntFromCtx(c, "role_id"); ok {
		roleID = id
	}
	return
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeBindError reports a payload that could not be decoded. Field errors
// raised while decoding keep the validation shape.
func writeBindError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		writeError(c, "[bind]", err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, tag string, err error) {
	var verrs models.ValidationErrors
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verrs):
		fields := make([]fieldError, 0, len(verrs))
		for _, v := range verrs {
			fields = append(fields, fieldError{Field: v.Field, Message: v.Message})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": []fieldError{{Field: verr.Field, Message: verr.Message}}})
	case errors.Is(err, models.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
	case errors.Is(err, models.ErrInstallmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "installment not found"})
	case errors.Is(err, models.ErrDuplicatePlan):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoRecipient):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pdf.ErrTemplateMissing), errors.Is(err, pdf.ErrFontMissing):
		log.Printf("%s print failed: %v", tag, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "print failed: " + err.Error()})
	default:
		log.Printf("%s failed: %v", tag, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
