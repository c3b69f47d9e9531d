package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traites/internal/utils"
	"traites/internal/words"
)

// @Summary      Amount in French words
// @Tags         Amounts
// @Produce      json
// @Param        amount  query  string  true  "e.g. 1 234,500"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Security     Bearer
// @Router       /amounts/words [get]
func AmountInWords(c *gin.Context) {
	amount, err := utils.ParseAmount(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"amount": utils.FormatAmount(amount),
		"words":  words.ToWords(amount),
	})
}
